package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const orderColumns = `o.id, o.order_number, o.user_id, o.total_amount, o.status, o.payment_method,
	o.payment_status, o.delivery_address, COALESCE(o.notes, ''), o.delivery_time, o.order_time`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o            domain.Order
		deliveryTime sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentMethod,
		&o.PaymentStatus, &o.DeliveryAddress, &o.Notes, &deliveryTime, &o.OrderTime); err != nil {
		return nil, err
	}
	if deliveryTime.Valid {
		t := deliveryTime.Time
		o.DeliveryTime = &t
	}
	return &o, nil
}

// RecentOrders loads the user's latest non-cancelled orders with their lines.
func (r *PostgresRepository) RecentOrders(ctx context.Context, userID, limit int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+orderColumns+` FROM orders o
		WHERE o.user_id = $1 AND o.status <> 'CANCELLED'
		ORDER BY o.order_time DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CoPurchasedDishIDs ranks dishes bought by other users who share at least one
// seed dish with the caller.
func (r *PostgresRepository) CoPurchasedDishIDs(ctx context.Context, userID int, seedDishIDs, excludeIDs []int, limit int) ([]int, error) {
	if len(seedDishIDs) == 0 {
		return nil, nil
	}
	if excludeIDs == nil {
		excludeIDs = []int{}
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.dish_id, COUNT(*) AS cnt
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> 'CANCELLED'
		  AND o.user_id <> $1
		  AND o.user_id IN (
			SELECT o2.user_id
			FROM orders o2
			JOIN order_items oi2 ON oi2.order_id = o2.id
			WHERE o2.status <> 'CANCELLED' AND o2.user_id <> $1 AND oi2.dish_id = ANY($2)
		  )
		  AND NOT (oi.dish_id = ANY($3))
		GROUP BY oi.dish_id
		ORDER BY cnt DESC, oi.dish_id
		LIMIT $4`, userID, pq.Array(seedDishIDs), pq.Array(excludeIDs), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id, count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()
	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// attachLines fills Lines for every order with one query. OriginalPrice is the
// dish's current catalog price.
func (r *PostgresRepository) attachLines(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int, 0, len(orders))
	index := make(map[int]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.order_id, oi.id, oi.dish_id, COALESCE(d.name, ''), COALESCE(d.image, ''),
			COALESCE(d.category_id, 0), oi.quantity, oi.price, COALESCE(d.price, oi.price),
			COALESCE(oi.special_requests, '')
		FROM order_items oi
		LEFT JOIN dishes d ON d.id = oi.dish_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int
			line    domain.OrderLine
		)
		if err := rows.Scan(&orderID, &line.ID, &line.DishID, &line.DishName, &line.DishImage, &line.CategoryID,
			&line.Quantity, &line.UnitPrice, &line.OriginalPrice, &line.SpecialRequests); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Lines = append(orders[i].Lines, line)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders o WHERE o.id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err)
	}
	orders := []domain.Order{*o}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID int, status domain.OrderStatus, limit, offset int) ([]domain.Order, int, error) {
	filter := "WHERE o.user_id = $1"
	args := []any{userID}
	if status != "" {
		filter += " AND o.status = $2"
		args = append(args, string(status))
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders o "+filter, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM orders o %s ORDER BY o.order_time DESC LIMIT $%d OFFSET $%d",
		orderColumns, filter, len(args)+1, len(args)+2)
	rows, err := r.DB.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, mapError(err)
	}
	return qrCode, nil
}

// InTx runs fn in one transaction, committing only when fn succeeds.
// Serialization failures surface as domain.ErrConcurrencyConflict.
func (r *PostgresRepository) InTx(ctx context.Context, fn func(tx service.OrderTx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	if err := fn(&orderTx{tx: tx}); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

type orderTx struct {
	tx *sql.Tx
}

func (t *orderTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	var deliveryTime any
	if order.DeliveryTime != nil {
		deliveryTime = *order.DeliveryTime
	}
	if err := t.tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, user_id, total_amount, status, payment_method, payment_status,
			delivery_address, notes, delivery_time, order_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		order.OrderNumber, order.UserID, order.TotalAmount, string(order.Status), string(order.PaymentMethod),
		string(order.PaymentStatus), order.DeliveryAddress, order.Notes, deliveryTime, order.OrderTime,
	).Scan(&order.ID); err != nil {
		return err
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		if err := t.tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, quantity, price, special_requests)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, line.DishID, line.Quantity, line.UnitPrice, line.SpecialRequests,
		).Scan(&line.ID); err != nil {
			return err
		}
	}
	return nil
}

func (t *orderTx) LockOrder(ctx context.Context, id int) (*domain.Order, error) {
	row := t.tx.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders o WHERE o.id = $1 FOR UPDATE", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (t *orderTx) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	_, err := t.tx.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", string(status), id)
	return err
}

func (t *orderTx) MarkOrderPaid(ctx context.Context, id int) error {
	_, err := t.tx.ExecContext(ctx, "UPDATE orders SET payment_status = 'PAID' WHERE id = $1", id)
	return err
}

// AddLifetimeSpend increments the spend atomically and returns the row after the update.
func (t *orderTx) AddLifetimeSpend(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Membership, error) {
	var (
		m           domain.Membership
		memberSince sql.NullTime
	)
	err := t.tx.QueryRowContext(ctx, `
		UPDATE users
		SET lifetime_spend = COALESCE(lifetime_spend, 0) + $2
		WHERE id = $1
		RETURNING id, lifetime_spend, COALESCE(membership_tier, 'BRONZE'), member_since`,
		userID, amount,
	).Scan(&m.UserID, &m.LifetimeSpend, &m.Tier, &memberSince)
	if err != nil {
		return nil, mapError(err)
	}
	if memberSince.Valid {
		since := memberSince.Time
		m.MemberSince = &since
	}
	return &m, nil
}

func (t *orderTx) UpdateTier(ctx context.Context, userID int, tier domain.Tier, memberSince time.Time) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE users
		SET membership_tier = $2, member_since = COALESCE(member_since, $3)
		WHERE id = $1`, userID, string(tier), memberSince)
	return err
}

// TopOrderedOn ranks dishes by units ordered on day.
func (r *PostgresRepository) TopOrderedOn(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT d.id, d.name, SUM(oi.quantity)::float8 AS score
		FROM dishes d
		JOIN order_items oi ON d.id = oi.dish_id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.order_time::date = $1::date AND o.status <> 'CANCELLED'
		GROUP BY d.id, d.name
		ORDER BY score DESC, d.id
		LIMIT $2`, day.Format(time.DateOnly), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.DishAnalytics
	for rows.Next() {
		var d domain.DishAnalytics
		if err := rows.Scan(&d.DishID, &d.DishName, &d.Score); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) DishNames(ctx context.Context, ids []int) (map[int]string, error) {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM dishes WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
