package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shopmart/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, user_name, review_text, rating, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		review.ID, review.ProductID, review.UserID, review.UserName,
		review.Text, review.Rating, now,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	query := `SELECT id, product_id, user_id, user_name, review_text, rating, created_at, updated_at
		FROM reviews WHERE id = $1`

	review := &models.Review{}
	err := models.DB.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.ProductID, &review.UserID, &review.UserName,
		&review.Text, &review.Rating, &review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) FindByUser(ctx context.Context, userID string) ([]models.Review, error) {
	query := `SELECT id, product_id, user_id, user_name, review_text, rating, created_at, updated_at
		FROM reviews WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := models.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID, &review.ProductID, &review.UserID, &review.UserName,
			&review.Text, &review.Rating, &review.CreatedAt, &review.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	query := `UPDATE reviews SET review_text = $1, rating = $2, updated_at = $3 WHERE id = $4`
	_, err := models.DB.Exec(ctx, query, review.Text, review.Rating, time.Now(), review.ID)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := models.DB.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}
