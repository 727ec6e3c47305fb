package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/lib/pq"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return fmt.Errorf("%w: %s", domain.ErrConcurrencyConflict, pqErr.Message)
		case sqlStateUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Message)
		}
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// EnsureSchema creates the tables the engine reads and writes when they are missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(12, 2) NOT NULL CHECK (price > 0),
			image TEXT,
			category_id INT REFERENCES categories(id),
			tags TEXT[] NOT NULL DEFAULT '{}',
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			total_orders INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE,
			full_name TEXT,
			lifetime_spend NUMERIC(14, 2) NOT NULL DEFAULT 0,
			membership_tier TEXT NOT NULL DEFAULT 'BRONZE',
			member_since TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			user_id INT NOT NULL REFERENCES users(id),
			total_amount NUMERIC(14, 2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			payment_method TEXT NOT NULL,
			payment_status TEXT NOT NULL DEFAULT 'PENDING',
			delivery_address TEXT NOT NULL,
			notes TEXT,
			delivery_time TIMESTAMPTZ,
			order_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INT NOT NULL REFERENCES dishes(id),
			quantity INT NOT NULL CHECK (quantity >= 1),
			price NUMERIC(12, 2) NOT NULL,
			special_requests TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id),
			dish_id INT NOT NULL REFERENCES dishes(id),
			order_id INT NOT NULL REFERENCES orders(id),
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, dish_id, order_id)
		)`,
		`CREATE TABLE IF NOT EXISTS recommendation_history (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			dish_id INT NOT NULL,
			recommendation_type TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			clicked BOOLEAN NOT NULL DEFAULT FALSE,
			ordered BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS aggregated_orders (
			order_id INT PRIMARY KEY,
			aggregated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_dishes_tags ON dishes USING GIN (tags)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_time ON orders (user_id, order_time DESC)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO recommendation_history (user_id, dish_id, recommendation_type, confidence, clicked, ordered)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		fb.UserID, fb.DishID, fb.RecommendationType, fb.Confidence, fb.Clicked, fb.Ordered)
	return err
}
