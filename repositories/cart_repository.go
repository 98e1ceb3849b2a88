package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shopmart/models"
)

// CartRepository persists one cart document per user. The whole document
// (items + total_cost) is written in a single statement so a cart can never
// be observed with mutated items and a stale total.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// Get returns the user's cart, or nil when the user has no cart yet.
func (r *CartRepository) Get(ctx context.Context, userID string) (*models.Cart, error) {
	query := `SELECT user_id, items, total_cost, created_at, updated_at FROM carts WHERE user_id = $1`

	cart := &models.Cart{}
	var rawItems []byte
	err := models.DB.QueryRow(ctx, query, userID).Scan(
		&cart.UserID,
		&rawItems,
		&cart.TotalCost,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(rawItems, &cart.Items); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// Upsert writes the full cart document, creating it on first use.
func (r *CartRepository) Upsert(ctx context.Context, cart *models.Cart) error {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (user_id, items, total_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET items = EXCLUDED.items, total_cost = EXCLUDED.total_cost, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query, cart.UserID, rawItems, cart.TotalCost, now).
		Scan(&cart.CreatedAt, &cart.UpdatedAt)
}
