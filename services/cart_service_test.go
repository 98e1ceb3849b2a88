package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"shopmart/models"
)

// memCartStore is an in-memory CartStore. Get and Upsert copy the document so
// callers never share state with the store, matching repository behavior.
type memCartStore struct {
	mu        sync.Mutex
	carts     map[string]models.Cart
	upsertErr error
	getErr    error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]models.Cart{}}
}

func (s *memCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	cart, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := cart
	cp.Items = append([]models.CartItem{}, cart.Items...)
	return &cp, nil
}

func (s *memCartStore) Upsert(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upsertErr != nil {
		return s.upsertErr
	}
	cp := *cart
	cp.Items = append([]models.CartItem{}, cart.Items...)
	s.carts[cart.UserID] = cp
	return nil
}

// staticPrices is an in-memory PriceSource backed by a plain price map.
type staticPrices struct {
	mu     sync.Mutex
	prices map[string]float64
	err    error
}

func (p *staticPrices) PricesByIDs(_ context.Context, ids []string) (map[string]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		if price, ok := p.prices[id]; ok {
			out[id] = price
		}
	}
	return out, nil
}

func (p *staticPrices) set(id string, price float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prices[id] = price
}

func (p *staticPrices) remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.prices, id)
}

func newFixture() (*CartService, *memCartStore, *staticPrices) {
	store := newMemCartStore()
	prices := &staticPrices{prices: map[string]float64{}}
	return NewCartService(store, prices, false), store, prices
}

func TestAddCreatesCartWithSingleLine(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	cart, err := svc.Add(context.Background(), user, product, 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != product || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", cart.Items)
	}
	if cart.TotalCost != 20 {
		t.Fatalf("total = %v, want 20", cart.TotalCost)
	}
}

func TestAddMergesIntoExistingLine(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	if _, err := svc.Add(context.Background(), user, product, 2); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	cart, err := svc.Add(context.Background(), user, product, 3)
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("want one merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if cart.TotalCost != 50 {
		t.Fatalf("total = %v, want 50", cart.TotalCost)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, prices := newFixture()
	product := uuid.NewString()
	prices.set(product, 10)

	for _, qty := range []int{0, -1} {
		if _, err := svc.Add(context.Background(), uuid.NewString(), product, qty); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Add qty=%d: err = %v, want ErrInvalidArgument", qty, err)
		}
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, store, _ := newFixture()
	user := uuid.NewString()

	_, err := svc.Add(context.Background(), user, uuid.NewString(), 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
	if _, ok := store.carts[user]; ok {
		t.Fatal("cart should not be created for a failed Add")
	}
}

func TestAddUsesDiscountedPrice(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()

	// Effective price already resolved by the price source; the discounted
	// price wins over the original when present.
	discounted := 80.0
	p := models.Product{ID: product, PriceOriginal: 100, PriceDiscounted: &discounted}
	prices.set(product, p.EffectivePrice())

	cart, err := svc.Add(context.Background(), user, product, 1)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if cart.TotalCost != 80 {
		t.Fatalf("total = %v, want 80", cart.TotalCost)
	}
}

func TestReduceQuantityRemovesDepletedLine(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	if _, err := svc.Add(context.Background(), user, product, 5); err != nil {
		t.Fatalf("Add: %v", err)
	}
	cart, err := svc.ReduceQuantity(context.Background(), user, product, 5)
	if err != nil {
		t.Fatalf("ReduceQuantity: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("items = %+v, want empty", cart.Items)
	}
	if cart.TotalCost != 0 {
		t.Fatalf("total = %v, want 0", cart.TotalCost)
	}
}

func TestReduceQuantityPartial(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	if _, err := svc.Add(context.Background(), user, product, 5); err != nil {
		t.Fatalf("Add: %v", err)
	}
	cart, err := svc.ReduceQuantity(context.Background(), user, product, 2)
	if err != nil {
		t.Fatalf("ReduceQuantity: %v", err)
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
	if cart.TotalCost != 30 {
		t.Fatalf("total = %v, want 30", cart.TotalCost)
	}
}

func TestReduceQuantityMissingLineFailsAndLeavesCartUnchanged(t *testing.T) {
	svc, store, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	if _, err := svc.Add(context.Background(), user, product, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := store.carts[user]

	_, err := svc.ReduceQuantity(context.Background(), user, uuid.NewString(), 1)
	if !errors.Is(err, ErrItemNotInCart) {
		t.Fatalf("err = %v, want ErrItemNotInCart", err)
	}

	after := store.carts[user]
	if after.TotalCost != before.TotalCost || len(after.Items) != len(before.Items) {
		t.Fatalf("cart mutated by failed reduce: before %+v after %+v", before, after)
	}
}

func TestReduceQuantityMissingCart(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.ReduceQuantity(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}
}

func TestReduceQuantityValidatesIDs(t *testing.T) {
	svc, _, _ := newFixture()

	cases := []struct{ user, product string }{
		{"not-a-uuid", uuid.NewString()},
		{uuid.NewString(), "not-a-uuid"},
	}
	for _, tc := range cases {
		if _, err := svc.ReduceQuantity(context.Background(), tc.user, tc.product, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ReduceQuantity(%q, %q): err = %v, want ErrInvalidArgument", tc.user, tc.product, err)
		}
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 100)

	if _, err := svc.Add(context.Background(), user, product, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	first, err := svc.Remove(context.Background(), user, product)
	if err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	second, err := svc.Remove(context.Background(), user, product)
	if err != nil {
		t.Fatalf("second Remove: %v", err)
	}

	if len(first.Items) != 0 || len(second.Items) != 0 {
		t.Fatalf("items not empty: first %+v second %+v", first.Items, second.Items)
	}
	if first.TotalCost != 0 || second.TotalCost != 0 {
		t.Fatalf("totals differ from 0: first %v second %v", first.TotalCost, second.TotalCost)
	}
}

func TestRemoveMissingCart(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Remove(context.Background(), uuid.NewString(), uuid.NewString())
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}
}

func TestGetMissingCart(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Get(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("err = %v, want ErrCartNotFound", err)
	}
}

func TestTotalUsesCurrentPrices(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	a := uuid.NewString()
	b := uuid.NewString()
	prices.set(a, 10)
	prices.set(b, 5)

	if _, err := svc.Add(context.Background(), user, a, 2); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if _, err := svc.Add(context.Background(), user, b, 1); err != nil {
		t.Fatalf("Add b: %v", err)
	}

	// Catalog price changes between mutations; the next recompute must pick
	// up the new price for the whole line, not patch the delta.
	prices.set(a, 20)

	cart, err := svc.Add(context.Background(), user, b, 1)
	if err != nil {
		t.Fatalf("Add b again: %v", err)
	}
	if want := 2*20.0 + 2*5.0; cart.TotalCost != want {
		t.Fatalf("total = %v, want %v", cart.TotalCost, want)
	}
}

func TestDeletedProductPricesAsZero(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	kept := uuid.NewString()
	deleted := uuid.NewString()
	prices.set(kept, 10)
	prices.set(deleted, 40)

	if _, err := svc.Add(context.Background(), user, kept, 1); err != nil {
		t.Fatalf("Add kept: %v", err)
	}
	if _, err := svc.Add(context.Background(), user, deleted, 1); err != nil {
		t.Fatalf("Add deleted: %v", err)
	}

	prices.remove(deleted)

	cart, err := svc.Remove(context.Background(), user, uuid.NewString())
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("stale line dropped without eviction enabled: %+v", cart.Items)
	}
	if cart.TotalCost != 10 {
		t.Fatalf("total = %v, want 10 (stale line contributes 0)", cart.TotalCost)
	}
}

func TestEvictMissingDropsStaleLines(t *testing.T) {
	store := newMemCartStore()
	prices := &staticPrices{prices: map[string]float64{}}
	svc := NewCartService(store, prices, true)

	user := uuid.NewString()
	kept := uuid.NewString()
	stale := uuid.NewString()
	prices.set(kept, 10)
	prices.set(stale, 40)

	if _, err := svc.Add(context.Background(), user, kept, 1); err != nil {
		t.Fatalf("Add kept: %v", err)
	}
	if _, err := svc.Add(context.Background(), user, stale, 1); err != nil {
		t.Fatalf("Add stale: %v", err)
	}

	prices.remove(stale)

	cart, err := svc.Remove(context.Background(), user, uuid.NewString())
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != kept {
		t.Fatalf("items = %+v, want only the kept line", cart.Items)
	}
	if cart.TotalCost != 10 {
		t.Fatalf("total = %v, want 10", cart.TotalCost)
	}
}

func TestFailedUpsertPersistsNothing(t *testing.T) {
	svc, store, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 10)

	if _, err := svc.Add(context.Background(), user, product, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := store.carts[user]

	store.upsertErr = errors.New("connection reset")
	if _, err := svc.Add(context.Background(), user, product, 5); err == nil {
		t.Fatal("Add should propagate the store error")
	}
	store.upsertErr = nil

	after := store.carts[user]
	if after.Items[0].Quantity != before.Items[0].Quantity || after.TotalCost != before.TotalCost {
		t.Fatalf("failed write mutated stored cart: before %+v after %+v", before, after)
	}
}

func TestConcurrentAddsConverge(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()
	product := uuid.NewString()
	prices.set(product, 3)

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.Add(context.Background(), user, product, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Add: %v", err)
	}

	cart, err := svc.Get(context.Background(), user)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("want one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != n {
		t.Fatalf("quantity = %d, want %d (dropped increments)", cart.Items[0].Quantity, n)
	}
	if cart.TotalCost != float64(n)*3 {
		t.Fatalf("total = %v, want %v", cart.TotalCost, float64(n)*3)
	}
}

func TestConcurrentDistinctProductsStayDistinct(t *testing.T) {
	svc, _, prices := newFixture()
	user := uuid.NewString()

	const n = 20
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
		prices.set(ids[i], 1)
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := svc.Add(context.Background(), user, id, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Add: %v", err)
	}

	cart, err := svc.Get(context.Background(), user)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != n {
		t.Fatalf("lines = %d, want %d", len(cart.Items), n)
	}

	seen := map[string]bool{}
	for _, item := range cart.Items {
		if seen[item.ProductID] {
			t.Fatalf("duplicate line for product %s", item.ProductID)
		}
		seen[item.ProductID] = true
		if item.Quantity < 1 {
			t.Fatalf("persisted quantity %d < 1 for %s", item.Quantity, item.ProductID)
		}
	}
}
