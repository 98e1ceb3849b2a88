package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shopmart/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, images, categories, rating, stock,
	seller_id, seller_name, seller_contact, details, specifications,
	technical_information, price_original, price_discounted, size_or_type,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Images, &p.Categories, &p.Rating, &p.Stock,
		&p.SellerID, &p.SellerName, &p.SellerContact, &p.Details, &p.Specifications,
		&p.TechnicalInfo, &p.PriceOriginal, &p.PriceDiscounted, &p.SizeOrType,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, images, categories, rating, stock,
			seller_id, seller_name, seller_contact, details, specifications,
			technical_information, price_original, price_discounted, size_or_type,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$17)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Images, p.Categories, p.Rating, p.Stock,
		p.SellerID, p.SellerName, p.SellerContact, p.Details, p.Specifications,
		p.TechnicalInfo, p.PriceOriginal, p.PriceDiscounted, p.SizeOrType, now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(models.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) FindBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, sellerID)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE $1 = ANY(categories) ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, category)
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT unnest(categories) FROM products ORDER BY 1`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET name = $1, description = $2, images = $3, categories = $4,
			rating = $5, stock = $6, details = $7, specifications = $8,
			technical_information = $9, price_original = $10, price_discounted = $11,
			size_or_type = $12, updated_at = $13
		WHERE id = $14
	`
	_, err := models.DB.Exec(ctx, query,
		p.Name, p.Description, p.Images, p.Categories, p.Rating, p.Stock,
		p.Details, p.Specifications, p.TechnicalInfo, p.PriceOriginal,
		p.PriceDiscounted, p.SizeOrType, time.Now(), p.ID,
	)
	return err
}

// DeleteBySeller removes a product only when it belongs to sellerID. Returns
// false when no matching row exists.
func (r *ProductRepository) DeleteBySeller(ctx context.Context, id, sellerID string) (bool, error) {
	result, err := models.DB.Exec(ctx, `DELETE FROM products WHERE id = $1 AND seller_id = $2`, id, sellerID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// PricesByIDs resolves the effective price for every requested product in one
// query. IDs with no matching product are absent from the result; callers
// treat absence as price 0 because carts can outlive product deletion.
func (r *ProductRepository) PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	query := `SELECT id, price_original, price_discounted FROM products WHERE id = ANY($1)`
	rows, err := models.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.PriceOriginal, &p.PriceDiscounted); err != nil {
			return nil, err
		}
		prices[p.ID] = p.EffectivePrice()
	}
	return prices, rows.Err()
}
