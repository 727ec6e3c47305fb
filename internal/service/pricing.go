package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
)

type PricingPolicy struct {
	MinPriceRatio    decimal.Decimal
	MinTotal         decimal.Decimal
	MaxTotal         decimal.Decimal
	MinAddressLength int
	MaxNotesLength   int
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		MinPriceRatio:    decimal.RequireFromString("0.3"),
		MinTotal:         decimal.NewFromInt(10_000),
		MaxTotal:         decimal.NewFromInt(5_000_000),
		MinAddressLength: 10,
		MaxNotesLength:   500,
	}
}

// ClampUnitPrice accepts a client price only when it is a plausible discount of
// the catalog price: a whole currency amount, positive, not above the price and
// not below the floor.
func (p PricingPolicy) ClampUnitPrice(price decimal.Decimal, candidate *decimal.Decimal) decimal.Decimal {
	if candidate == nil {
		return price
	}
	c := *candidate
	if !c.Equal(c.Truncate(0)) {
		return price
	}
	minAllowed := price.Mul(p.MinPriceRatio)
	if c.IsPositive() && c.LessThanOrEqual(price) && c.GreaterThanOrEqual(minAllowed) {
		return c
	}
	return price
}

func NormalizePaymentMethod(raw string) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cod":
		method = domain.PaymentCash
	case "card", "momo":
		method = domain.PaymentCard
	case "bank":
		method = domain.PaymentBankTransfer
	default:
		method = domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	}
	switch method {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentBankTransfer:
		return method, nil
	}
	return "", domain.Invalid("payment_method", "must be CASH, CARD or BANK_TRANSFER")
}

// CheckoutDetails is the validated, normalised non-line part of an order request.
type CheckoutDetails struct {
	DeliveryAddress string
	Notes           string
	PaymentMethod   domain.PaymentMethod
	DeliveryTime    *time.Time
}

func (p PricingPolicy) ValidateCheckout(req domain.CreateOrderRequest) (*CheckoutDetails, error) {
	if len(req.Items) == 0 {
		return nil, domain.Invalid("items", "order must contain at least one item")
	}
	address := strings.TrimSpace(req.DeliveryAddress)
	if utf8.RuneCountInString(address) < p.MinAddressLength {
		return nil, domain.Invalid("delivery_address", fmt.Sprintf("must be at least %d characters", p.MinAddressLength))
	}
	if utf8.RuneCountInString(req.Notes) > p.MaxNotesLength {
		return nil, domain.Invalid("notes", fmt.Sprintf("must be at most %d characters", p.MaxNotesLength))
	}
	method, err := NormalizePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	details := &CheckoutDetails{
		DeliveryAddress: address,
		Notes:           req.Notes,
		PaymentMethod:   method,
	}
	if req.DeliveryTime != "" {
		at, err := time.Parse(time.RFC3339, req.DeliveryTime)
		if err != nil {
			return nil, domain.Invalid("delivery_time", "must be an RFC3339 timestamp")
		}
		details.DeliveryTime = &at
	}
	return details, nil
}

// PriceLines resolves every submitted line against the catalog and returns the
// lines at their charged prices together with the order total.
func (p PricingPolicy) PriceLines(items []domain.OrderItemInput, dishes map[int]domain.Dish) ([]domain.OrderLine, decimal.Decimal, error) {
	lines := make([]domain.OrderLine, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		dish, ok := dishes[item.DishID]
		if !ok || !dish.IsAvailable {
			return nil, decimal.Zero, fmt.Errorf("dish %d unavailable: %w", item.DishID, domain.ErrNotFound)
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		line := domain.OrderLine{
			DishID:          dish.ID,
			DishName:        dish.Name,
			DishImage:       dish.Image,
			CategoryID:      dish.CategoryID,
			Quantity:        qty,
			UnitPrice:       p.ClampUnitPrice(dish.Price, item.Price),
			OriginalPrice:   dish.Price,
			SpecialRequests: item.SpecialRequests,
		}
		total = total.Add(line.Subtotal())
		lines = append(lines, line)
	}
	return lines, total, nil
}

func (p PricingPolicy) CheckTotal(total decimal.Decimal) error {
	if total.LessThan(p.MinTotal) || total.GreaterThan(p.MaxTotal) {
		return domain.Invalid("total_amount", fmt.Sprintf("must be between %s and %s", p.MinTotal, p.MaxTotal))
	}
	return nil
}
