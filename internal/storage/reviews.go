package storage

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
)

func (r *PostgresRepository) HasDeliveredPurchase(ctx context.Context, userID, dishID, orderID int) (bool, error) {
	var ok bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.id = $3 AND o.user_id = $1 AND o.status = 'DELIVERED' AND oi.dish_id = $2
		)`, userID, dishID, orderID).Scan(&ok)
	return ok, err
}

// DeliveredOrderIDs lists the user's delivered orders containing the dish, newest first.
func (r *PostgresRepository) DeliveredOrderIDs(ctx context.Context, userID, dishID int) ([]int, error) {
	return r.queryIDs(ctx, `
		SELECT o.id
		FROM orders o
		WHERE o.user_id = $1 AND o.status = 'DELIVERED'
		  AND EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.dish_id = $2)
		ORDER BY o.order_time DESC, o.id DESC`, userID, dishID)
}

func (r *PostgresRepository) ReviewedOrderIDs(ctx context.Context, userID, dishID int) ([]int, error) {
	return r.queryIDs(ctx, `SELECT order_id FROM reviews WHERE user_id = $1 AND dish_id = $2`, userID, dishID)
}

func (r *PostgresRepository) queryIDs(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// InsertReview stores the review and recomputes the dish rating in the same
// transaction, returning the new average.
func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) (float64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO reviews (user_id, dish_id, order_id, rating, comment)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`,
		review.UserID, review.DishID, review.OrderID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt); err != nil {
		return 0, mapError(err)
	}

	var avg float64
	if err := tx.QueryRowContext(ctx, `
		UPDATE dishes
		SET rating = COALESCE((SELECT AVG(rating)::float8 FROM reviews WHERE dish_id = $1), 0)
		WHERE id = $1
		RETURNING rating`, review.DishID).Scan(&avg); err != nil {
		return 0, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, mapError(err)
	}
	return avg, nil
}

func (r *PostgresRepository) ListDishReviews(ctx context.Context, dishID, limit, offset int) ([]domain.Review, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews WHERE dish_id = $1", dishID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, dish_id, order_id, rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE dish_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, dishID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.DishID, &rv.OrderID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, total, rows.Err()
}

// DishRatingSummary reads the stored rating and review count of a dish.
func (r *PostgresRepository) DishRatingSummary(ctx context.Context, dishID int) (float64, int, error) {
	var (
		avg   float64
		count int
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT d.rating, (SELECT COUNT(*) FROM reviews WHERE dish_id = d.id)
		FROM dishes d
		WHERE d.id = $1`, dishID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, mapError(err)
	}
	return avg, count, nil
}

// IncrementTotalOrders adds each line's quantity to its dish counter once per
// order. A redelivered order_created event finds its order id already claimed
// and changes nothing.
func (r *PostgresRepository) IncrementTotalOrders(ctx context.Context, orderID int, lines []domain.EventLine) error {
	if len(lines) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO aggregated_orders (order_id) VALUES ($1) ON CONFLICT (order_id) DO NOTHING", orderID)
	if err != nil {
		return err
	}
	if claimed, err := res.RowsAffected(); err != nil {
		return err
	} else if claimed == 0 {
		return nil
	}

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx,
			"UPDATE dishes SET total_orders = total_orders + $1 WHERE id = $2", l.Quantity, l.DishID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
