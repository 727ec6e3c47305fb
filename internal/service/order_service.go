package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/cenkalti/backoff/v5"
	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RetryPolicy struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialInterval: 50 * time.Millisecond, MaxInterval: time.Second}
}

type OrderLineView struct {
	domain.OrderLine
	ItemDiscount decimal.Decimal `json:"item_discount"`
}

// OrderView is an order with price transparency against the catalog price.
type OrderView struct {
	domain.Order
	Items         []OrderLineView `json:"items"`
	BaseTotal     decimal.Decimal `json:"order_base_total"`
	DiscountTotal decimal.Decimal `json:"order_discount_total"`
	FinalTotal    decimal.Decimal `json:"order_final_total"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type OrderPage struct {
	Orders     []OrderView `json:"orders"`
	Pagination Pagination  `json:"pagination"`
}

type OrderService struct {
	catalog   CatalogRepository
	store     OrderStore
	publisher EventPublisher
	qr        QRGenerator
	pricing   PricingPolicy
	tiers     TierPolicy
	retry     RetryPolicy
	logger    *zap.Logger
	now       func() time.Time
}

type OrderServiceDeps struct {
	Catalog   CatalogRepository
	Store     OrderStore
	Publisher EventPublisher
	QR        QRGenerator
	Pricing   PricingPolicy
	Tiers     TierPolicy
	Retry     RetryPolicy
	Logger    *zap.Logger
}

func NewOrderService(deps OrderServiceDeps) *OrderService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		catalog:   deps.Catalog,
		store:     deps.Store,
		publisher: deps.Publisher,
		qr:        deps.QR,
		pricing:   deps.Pricing,
		tiers:     deps.Tiers,
		retry:     deps.Retry,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("SF%d%s", now.UnixMilli(), strings.ToUpper(cuid.Slug()))
}

// Create prices the order from the catalog, stores it and, for non-cash
// payments, accrues membership spend in the same transaction.
func (s *OrderService) Create(ctx context.Context, userID int, req domain.CreateOrderRequest) (*domain.CreateOrderResult, error) {
	details, err := s.pricing.ValidateCheckout(req)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.DishID)
	}
	dishes, err := s.catalog.DishesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load order dishes: %w", err)
	}
	byID := make(map[int]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	lines, total, err := s.pricing.PriceLines(req.Items, byID)
	if err != nil {
		return nil, err
	}
	if err := s.pricing.CheckTotal(total); err != nil {
		return nil, err
	}

	now := s.now()
	paid := details.PaymentMethod != domain.PaymentCash
	order := &domain.Order{
		OrderNumber:     newOrderNumber(now),
		UserID:          userID,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		PaymentMethod:   details.PaymentMethod,
		PaymentStatus:   domain.PaymentPending,
		DeliveryAddress: details.DeliveryAddress,
		Notes:           details.Notes,
		DeliveryTime:    details.DeliveryTime,
		OrderTime:       now,
		Lines:           lines,
	}
	if paid {
		order.PaymentStatus = domain.PaymentPaid
	}

	var change *domain.MembershipChange
	err = s.inTx(ctx, func(tx OrderTx) error {
		change = nil
		if err := tx.InsertOrder(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if !paid {
			return nil
		}
		accrued, err := s.tiers.Accrue(ctx, tx, userID, total, now)
		if err != nil {
			return err
		}
		change = accrued
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.attachQRCode(ctx, order)
	s.publishOrder(ctx, domain.EventOrderCreated, order)

	return &domain.CreateOrderResult{
		Order:             order,
		MembershipUpdated: paid,
		Membership:        change,
	}, nil
}

// UpdateStatus moves an order to status. Reaching DELIVERED for the first time
// accrues membership spend; non-cash orders are marked paid.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.StatusUpdateResult, error) {
	status = domain.OrderStatus(strings.ToUpper(string(status)))
	if !status.Valid() {
		return nil, domain.Invalid("status", "invalid status")
	}

	var (
		result    *domain.StatusUpdateResult
		delivered bool
	)
	err := s.inTx(ctx, func(tx OrderTx) error {
		result = &domain.StatusUpdateResult{}
		delivered = false
		existing, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, orderID, status); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		if existing.PaymentMethod != domain.PaymentCash && existing.PaymentStatus != domain.PaymentPaid {
			if err := tx.MarkOrderPaid(ctx, orderID); err != nil {
				return fmt.Errorf("mark order paid: %w", err)
			}
			existing.PaymentStatus = domain.PaymentPaid
		}
		previous := existing.Status
		existing.Status = status
		result.Order = existing

		if status != domain.StatusDelivered || previous == domain.StatusDelivered {
			return nil
		}
		delivered = true
		change, err := s.tiers.Accrue(ctx, tx, existing.UserID, existing.TotalAmount, s.now())
		if err != nil {
			return err
		}
		if change.TierChanged {
			tier := change.After.Tier
			result.MembershipTierUpdated = true
			result.NewTier = &tier
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if delivered {
		s.publishOrder(ctx, domain.EventOrderDelivered, result.Order)
	}
	return result, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID int) (*OrderView, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	view := NewOrderView(*order)
	return &view, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID int, status domain.OrderStatus, page, pageSize int) (*OrderPage, error) {
	if status != "" {
		status = domain.OrderStatus(strings.ToUpper(string(status)))
		if !status.Valid() {
			return nil, domain.Invalid("status", "invalid status")
		}
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}
	orders, total, err := s.store.ListUserOrders(ctx, userID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &OrderPage{
		Orders: views,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *OrderService) QRCode(ctx context.Context, userID, orderID int) ([]byte, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	qr, err := s.store.GetQRCode(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if len(qr) > 0 || s.qr == nil {
		return qr, nil
	}
	regenerated, err := s.qr.Generate(order.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	if err := s.store.SaveQRCode(ctx, orderID, regenerated); err != nil {
		s.logger.Warn("failed to cache qr code", zap.Int("order_id", orderID), zap.Error(err))
	}
	return regenerated, nil
}

// NewOrderView compares every line with its catalog price.
func NewOrderView(o domain.Order) OrderView {
	view := OrderView{Order: o, Items: make([]OrderLineView, 0, len(o.Lines)), FinalTotal: o.TotalAmount}
	base := decimal.Zero
	for _, line := range o.Lines {
		original := line.OriginalPrice
		if original.IsZero() {
			original = line.UnitPrice
			line.OriginalPrice = original
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		base = base.Add(original.Mul(qty))
		view.Items = append(view.Items, OrderLineView{
			OrderLine:    line,
			ItemDiscount: original.Sub(line.UnitPrice).Mul(qty),
		})
	}
	view.BaseTotal = base
	view.DiscountTotal = base.Sub(o.TotalAmount)
	return view
}

// inTx retries fn in a fresh transaction when the database reports a
// serialization conflict.
func (s *OrderService) inTx(ctx context.Context, fn func(tx OrderTx) error) error {
	attempts := s.retry.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	b := backoff.NewExponentialBackOff()
	if s.retry.InitialInterval > 0 {
		b.InitialInterval = s.retry.InitialInterval
	}
	if s.retry.MaxInterval > 0 {
		b.MaxInterval = s.retry.MaxInterval
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := s.store.InTx(ctx, fn)
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, domain.ErrConcurrencyConflict):
			s.logger.Warn("order transaction conflict, retrying", zap.Error(err))
			return struct{}{}, err
		default:
			return struct{}{}, backoff.Permanent(err)
		}
	}, backoff.WithBackOff(b), backoff.WithMaxTries(attempts))
	return err
}

func (s *OrderService) attachQRCode(ctx context.Context, order *domain.Order) {
	if s.qr == nil {
		return
	}
	qr, err := s.qr.Generate(order.OrderNumber)
	if err != nil {
		s.logger.Warn("failed to generate qr code", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}
	if err := s.store.SaveQRCode(ctx, order.ID, qr); err != nil {
		s.logger.Warn("failed to save qr code", zap.Int("order_id", order.ID), zap.Error(err))
	}
}

func (s *OrderService) publishOrder(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil || order == nil {
		return
	}
	lines := make([]domain.EventLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, domain.EventLine{DishID: l.DishID, Quantity: l.Quantity})
	}
	msg := domain.KafkaMessage{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Lines:       lines,
		Timestamp:   s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		s.logger.Error("failed to publish order event", zap.String("type", eventType), zap.Int("order_id", order.ID), zap.Error(err))
	}
}
