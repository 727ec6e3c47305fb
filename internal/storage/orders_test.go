package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{"id", "order_number", "user_id", "total_amount", "status", "payment_method",
	"payment_status", "delivery_address", "notes", "delivery_time", "order_time"}

var lineRowColumns = []string{"order_id", "id", "dish_id", "name", "image", "category_id", "quantity", "price",
	"original_price", "special_requests"}

func TestPostgresRepository_InTxCommitsInsertedOrder(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	order := &domain.Order{
		OrderNumber:     "SF1717243200000ABCD",
		UserID:          7,
		TotalAmount:     decimal.NewFromInt(105_000),
		Status:          domain.StatusPending,
		PaymentMethod:   domain.PaymentCard,
		PaymentStatus:   domain.PaymentPaid,
		DeliveryAddress: "12 Lý Thường Kiệt, Hà Nội",
		OrderTime:       now,
		Lines: []domain.OrderLine{
			{DishID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(50_000)},
			{DishID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(5_000), SpecialRequests: "ít đá"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.OrderNumber, 7, sqlmock.AnyArg(), "PENDING", "CARD", "PAID", order.DeliveryAddress, "", nil, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 1, 2, sqlmock.AnyArg(), "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 2, 1, sqlmock.AnyArg(), "ít đá").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectQuery("UPDATE users SET lifetime_spend").
		WithArgs(7, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lifetime_spend", "membership_tier", "member_since"}).
			AddRow(7, "4800000.00", "SILVER", now.AddDate(-1, 0, 0)))
	mock.ExpectCommit()

	var membership *domain.Membership
	err := repo.InTx(ctx, func(tx service.OrderTx) error {
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		m, err := tx.AddLifetimeSpend(ctx, 7, order.TotalAmount)
		membership = m
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 100, order.Lines[0].ID)
	assert.Equal(t, 101, order.Lines[1].ID)
	require.NotNil(t, membership)
	assert.Equal(t, domain.TierSilver, membership.Tier)
	assert.True(t, membership.LifetimeSpend.Equal(decimal.NewFromInt(4_800_000)))
	require.NotNil(t, membership.MemberSince)
}

func TestPostgresRepository_InTxRollsBackOnError(t *testing.T) {
	repo, mock := newMockRepository(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.InTx(context.Background(), func(service.OrderTx) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestPostgresRepository_InTxSurfacesSerializationFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").WithArgs("DELIVERED", 5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	err := repo.InTx(context.Background(), func(tx service.OrderTx) error {
		return tx.UpdateOrderStatus(context.Background(), 5, domain.StatusDelivered)
	})
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestPostgresRepository_LockOrderAndTierUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE o.id = \$1 FOR UPDATE`).WithArgs(5).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(5, "SF1", 7, "3000000.00", "READY", "CARD", "PENDING", "12 Lý Thường Kiệt", "", nil, now))
	mock.ExpectExec("UPDATE orders SET payment_status = 'PAID'").WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET membership_tier").WithArgs(7, "GOLD", now).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InTx(ctx, func(tx service.OrderTx) error {
		o, err := tx.LockOrder(ctx, 5)
		if err != nil {
			return err
		}
		assert.Equal(t, domain.StatusReady, o.Status)
		assert.Nil(t, o.DeliveryTime)
		if err := tx.MarkOrderPaid(ctx, 5); err != nil {
			return err
		}
		return tx.UpdateTier(ctx, 7, domain.TierGold, now)
	})
	require.NoError(t, err)
}

func TestPostgresRepository_RecentOrdersAttachesLines(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`o.status <> 'CANCELLED' ORDER BY o.order_time DESC LIMIT \$2`).WithArgs(7, 50).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(11, "SF11", 7, "105000.00", "DELIVERED", "CARD", "PAID", "12 Lý Thường Kiệt", "", now, now).
			AddRow(10, "SF10", 7, "50000.00", "PENDING", "CASH", "PENDING", "12 Lý Thường Kiệt", "gọi trước", nil, now.Add(-time.Hour)))
	mock.ExpectQuery(`WHERE oi.order_id = ANY\(\$1\)`).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(lineRowColumns).
			AddRow(10, 1, 4, "Bún chả", "", 3, 1, "50000.00", "50000.00", "").
			AddRow(11, 2, 1, "Cơm tấm", "", 1, 2, "45000.00", "50000.00", "").
			AddRow(11, 3, 2, "Trà đá", "", 5, 1, "5000.00", "5000.00", "ít đá"))

	orders, err := repo.RecentOrders(context.Background(), 7, 50)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Lines, 2)
	assert.Len(t, orders[1].Lines, 1)
	assert.Equal(t, 1, orders[0].Lines[0].CategoryID)
	assert.True(t, orders[0].Lines[0].OriginalPrice.Equal(decimal.NewFromInt(50_000)))
	require.NotNil(t, orders[0].DeliveryTime)
	assert.Equal(t, "gọi trước", orders[1].Notes)
}

func TestPostgresRepository_ListUserOrdersWithStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders o WHERE o.user_id = \$1 AND o.status = \$2`).
		WithArgs(7, "DELIVERED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY o.order_time DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(7, "DELIVERED", 10, 0).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	orders, total, err := repo.ListUserOrders(context.Background(), 7, domain.StatusDelivered, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, orders)
}

func TestPostgresRepository_GetOrderNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`FROM orders o WHERE o.id = \$1`).WithArgs(99).WillReturnRows(sqlmock.NewRows(orderRowColumns))

	_, err := repo.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresRepository_QRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("save", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE orders SET qr_code").WithArgs([]byte("png"), 5).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.SaveQRCode(ctx, 5, []byte("png")))
	})

	t.Run("load", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT qr_code FROM orders").WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow([]byte("png")))

		qr, err := repo.GetQRCode(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), qr)
	})

	t.Run("missing_order", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT qr_code FROM orders").WithArgs(5).WillReturnRows(sqlmock.NewRows([]string{"qr_code"}))

		_, err := repo.GetQRCode(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresRepository_CoPurchasedDishIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("no_seeds", func(t *testing.T) {
		repo, _ := newMockRepository(t)
		ids, err := repo.CoPurchasedDishIDs(ctx, 7, nil, nil, 5)
		require.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("ranked", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`GROUP BY oi.dish_id ORDER BY cnt DESC, oi.dish_id LIMIT \$4`).
			WithArgs(7, sqlmock.AnyArg(), sqlmock.AnyArg(), 5).
			WillReturnRows(sqlmock.NewRows([]string{"dish_id", "cnt"}).AddRow(4, 9).AddRow(8, 3))

		ids, err := repo.CoPurchasedDishIDs(ctx, 7, []int{1, 2}, []int{1, 2}, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 8}, ids)
	})
}

func TestPostgresRepository_TopOrderedOnAndDishNames(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE o.order_time::date = \$1::date`).WithArgs("2024-06-01", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "score"}).AddRow(3, "Phở bò", 12.0))
	mock.ExpectQuery(`SELECT id, name FROM dishes WHERE id = ANY\(\$1\)`).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Phở bò"))

	top, err := repo.TopOrderedOn(ctx, day, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishAnalytics{{DishID: 3, DishName: "Phở bò", Score: 12}}, top)

	names, err := repo.DishNames(ctx, []int{3})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{3: "Phở bò"}, names)
}
