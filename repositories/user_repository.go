package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shopmart/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, name, email, password, role, phone, avatar_url, provider,
	google_id, is_verified, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Phone, &user.AvatarURL, &user.Provider, &user.GoogleID,
		&user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role, phone, avatar_url,
			provider, google_id, is_verified, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Role, user.Phone,
		user.AvatarURL, user.Provider, user.GoogleID, user.IsVerified, now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(models.DB.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(models.DB.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := models.DB.Exec(ctx, query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) MarkVerified(ctx context.Context, userID string) error {
	query := `UPDATE users SET is_verified = true, updated_at = $1 WHERE id = $2`
	_, err := models.DB.Exec(ctx, query, time.Now(), userID)
	return err
}

func (r *UserRepository) LinkGoogleAccount(ctx context.Context, userID, googleID string) error {
	query := `UPDATE users SET google_id = $1, provider = 'google', is_verified = true, updated_at = $2 WHERE id = $3`
	_, err := models.DB.Exec(ctx, query, googleID, time.Now(), userID)
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = $1, phone = $2, avatar_url = $3, updated_at = $4 WHERE id = $5`
	_, err := models.DB.Exec(ctx, query, user.Name, user.Phone, user.AvatarURL, time.Now(), user.ID)
	return err
}

func (r *UserRepository) CreateAddress(ctx context.Context, addr *models.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, title, line1, line2, city, state, zip_code, country, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		addr.ID, addr.UserID, addr.Title, addr.Line1, addr.Line2,
		addr.City, addr.State, addr.ZipCode, addr.Country, now,
	).Scan(&addr.CreatedAt, &addr.UpdatedAt)
}

func (r *UserRepository) FindAddress(ctx context.Context, id string) (*models.Address, error) {
	query := `SELECT id, user_id, title, line1, line2, city, state, zip_code, country, created_at, updated_at
		FROM addresses WHERE id = $1`

	addr := &models.Address{}
	err := models.DB.QueryRow(ctx, query, id).Scan(
		&addr.ID, &addr.UserID, &addr.Title, &addr.Line1, &addr.Line2,
		&addr.City, &addr.State, &addr.ZipCode, &addr.Country,
		&addr.CreatedAt, &addr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return addr, nil
}

func (r *UserRepository) FindAddressesByUser(ctx context.Context, userID string) ([]models.Address, error) {
	query := `SELECT id, user_id, title, line1, line2, city, state, zip_code, country, created_at, updated_at
		FROM addresses WHERE user_id = $1 ORDER BY created_at`

	rows, err := models.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var addr models.Address
		err := rows.Scan(
			&addr.ID, &addr.UserID, &addr.Title, &addr.Line1, &addr.Line2,
			&addr.City, &addr.State, &addr.ZipCode, &addr.Country,
			&addr.CreatedAt, &addr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, rows.Err()
}

func (r *UserRepository) UpdateAddress(ctx context.Context, addr *models.Address) error {
	query := `UPDATE addresses SET title = $1, line1 = $2, line2 = $3, city = $4,
		state = $5, zip_code = $6, country = $7, updated_at = $8 WHERE id = $9`
	_, err := models.DB.Exec(ctx, query,
		addr.Title, addr.Line1, addr.Line2, addr.City, addr.State,
		addr.ZipCode, addr.Country, time.Now(), addr.ID,
	)
	return err
}

func (r *UserRepository) DeleteAddress(ctx context.Context, id string) error {
	_, err := models.DB.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}
