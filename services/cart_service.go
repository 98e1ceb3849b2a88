package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"shopmart/models"
)

// CartStore is the persistence contract for cart documents. Get reports an
// absent cart as (nil, nil). Upsert must write the whole document atomically.
type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Upsert(ctx context.Context, cart *models.Cart) error
}

// PriceSource resolves effective prices for a batch of product IDs in a single
// lookup. IDs with no matching product are absent from the result.
type PriceSource interface {
	PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error)
}

// CartService implements the cart mutations. Every mutation is a read-modify-
// write over the owner's cart document, serialized per owner so concurrent
// requests from the same user cannot drop each other's updates. The cached
// total is recomputed from current catalog prices on every mutation; patching
// it incrementally would drift when prices change between operations.
type CartService struct {
	carts    CartStore
	products PriceSource

	// evictMissing drops line items whose product no longer exists during
	// recompute. When false, such lines stay and price as zero.
	evictMissing bool

	locks sync.Map // userID -> *sync.Mutex, lazily created, never removed
}

func NewCartService(carts CartStore, products PriceSource, evictMissing bool) *CartService {
	return &CartService{carts: carts, products: products, evictMissing: evictMissing}
}

func (s *CartService) lockFor(userID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Add appends quantity of productID to the user's cart, creating the cart on
// first use and merging into an existing line for the same product.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidArgument)
	}

	prices, err := s.products.PricesByIDs(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	if _, ok := prices[productID]; !ok {
		return nil, ErrProductNotFound
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.recomputeAndSave(ctx, cart)
}

// ReduceQuantity decrements the line for productID, removing the line entirely
// when the remaining quantity would be zero or negative. Reducing a product
// that is not in the cart is a caller error.
func (s *CartService) ReduceQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if uuid.Validate(userID) != nil || uuid.Validate(productID) != nil {
		return nil, fmt.Errorf("%w: invalid user or product id", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidArgument)
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	i := cart.Find(productID)
	if i < 0 {
		return nil, ErrItemNotInCart
	}

	cart.Items[i].Quantity -= quantity
	if cart.Items[i].Quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	return s.recomputeAndSave(ctx, cart)
}

// Remove deletes the line for productID. Removing a product that is not in
// the cart succeeds with the cart unchanged apart from the total recompute.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*models.Cart, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	return s.recomputeAndSave(ctx, cart)
}

// Get returns the user's cart without mutating it.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// recomputeAndSave recomputes the cached total from scratch with one batched
// price lookup, then persists the whole document. Nothing is persisted when
// either step fails, so a stored cart is never partially updated.
func (s *CartService) recomputeAndSave(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	ids := make([]string, len(cart.Items))
	for i, item := range cart.Items {
		ids[i] = item.ProductID
	}

	prices, err := s.products.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if s.evictMissing {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if _, ok := prices[item.ProductID]; ok {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
	}

	var total float64
	for _, item := range cart.Items {
		total += float64(item.Quantity) * prices[item.ProductID]
	}
	cart.TotalCost = total

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
