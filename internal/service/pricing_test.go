package service_test

import (
	"testing"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func decStrPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestPricingPolicy_ClampUnitPrice(t *testing.T) {
	policy := service.DefaultPricingPolicy()
	price := decimal.NewFromInt(50_000)

	tests := []struct {
		name      string
		candidate *decimal.Decimal
		expected  int64
	}{
		{name: "missing_candidate", candidate: nil, expected: 50_000},
		{name: "below_floor", candidate: decPtr(10_000), expected: 50_000},
		{name: "exactly_floor", candidate: decPtr(15_000), expected: 15_000},
		{name: "plausible_discount", candidate: decPtr(42_000), expected: 42_000},
		{name: "equal_to_price", candidate: decPtr(50_000), expected: 50_000},
		{name: "above_price", candidate: decPtr(60_000), expected: 50_000},
		{name: "zero", candidate: decPtr(0), expected: 50_000},
		{name: "negative", candidate: decPtr(-5_000), expected: 50_000},
		{name: "fractional_unit", candidate: decStrPtr("15000.005"), expected: 50_000},
		{name: "fractional_in_band", candidate: decStrPtr("42000.5"), expected: 50_000},
		{name: "whole_with_scale", candidate: decStrPtr("42000.00"), expected: 42_000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := policy.ClampUnitPrice(price, testCase.candidate)
			assert.True(t, got.Equal(decimal.NewFromInt(testCase.expected)), "got %s", got)
		})
	}
}

func TestPricingPolicy_ClampUnitPriceBounds(t *testing.T) {
	policy := service.DefaultPricingPolicy()
	for _, p := range []int64{1_000, 15_000, 33_333, 50_000, 1_250_000} {
		price := decimal.NewFromInt(p)
		floor := price.Mul(decimal.RequireFromString("0.3"))
		for c := int64(-1_000); c <= p+2_000; c += 997 {
			candidate := decimal.NewFromInt(c)
			got := policy.ClampUnitPrice(price, &candidate)
			inBand := candidate.IsPositive() && candidate.LessThanOrEqual(price) && candidate.GreaterThanOrEqual(floor)
			if inBand {
				assert.True(t, got.Equal(candidate), "price %d candidate %d", p, c)
			} else {
				assert.True(t, got.Equal(price), "price %d candidate %d", p, c)
			}
		}
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		raw       string
		expected  domain.PaymentMethod
		expectErr bool
	}{
		{raw: "cod", expected: domain.PaymentCash},
		{raw: "COD", expected: domain.PaymentCash},
		{raw: "card", expected: domain.PaymentCard},
		{raw: "momo", expected: domain.PaymentCard},
		{raw: "bank", expected: domain.PaymentBankTransfer},
		{raw: "cash", expected: domain.PaymentCash},
		{raw: " bank_transfer ", expected: domain.PaymentBankTransfer},
		{raw: "bitcoin", expectErr: true},
		{raw: "", expectErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			method, err := service.NormalizePaymentMethod(testCase.raw)
			if testCase.expectErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, method)
		})
	}
}

func TestPricingPolicy_ValidateCheckout(t *testing.T) {
	policy := service.DefaultPricingPolicy()
	items := []domain.OrderItemInput{{DishID: 1, Quantity: 1}}
	longNotes := make([]rune, 501)
	for i := range longNotes {
		longNotes[i] = 'ă'
	}

	tests := []struct {
		name          string
		req           domain.CreateOrderRequest
		expectedField string
	}{
		{
			name:          "no_items",
			req:           domain.CreateOrderRequest{DeliveryAddress: "12 Lý Thường Kiệt, Hà Nội", PaymentMethod: "cod"},
			expectedField: "items",
		},
		{
			name:          "short_address",
			req:           domain.CreateOrderRequest{Items: items, DeliveryAddress: "  Hà Nội  ", PaymentMethod: "cod"},
			expectedField: "delivery_address",
		},
		{
			name:          "long_notes",
			req:           domain.CreateOrderRequest{Items: items, DeliveryAddress: "12 Lý Thường Kiệt, Hà Nội", PaymentMethod: "cod", Notes: string(longNotes)},
			expectedField: "notes",
		},
		{
			name:          "bad_payment",
			req:           domain.CreateOrderRequest{Items: items, DeliveryAddress: "12 Lý Thường Kiệt, Hà Nội", PaymentMethod: "iou"},
			expectedField: "payment_method",
		},
		{
			name:          "bad_delivery_time",
			req:           domain.CreateOrderRequest{Items: items, DeliveryAddress: "12 Lý Thường Kiệt, Hà Nội", PaymentMethod: "cod", DeliveryTime: "tomorrow"},
			expectedField: "delivery_time",
		},
		{
			name: "valid",
			req: domain.CreateOrderRequest{Items: items, DeliveryAddress: " 12 Lý Thường Kiệt, Hà Nội ", PaymentMethod: "momo",
				DeliveryTime: "2024-06-01T18:30:00+07:00"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			details, err := policy.ValidateCheckout(testCase.req)
			if testCase.expectedField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, testCase.expectedField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "12 Lý Thường Kiệt, Hà Nội", details.DeliveryAddress)
			assert.Equal(t, domain.PaymentCard, details.PaymentMethod)
			require.NotNil(t, details.DeliveryTime)
			assert.Equal(t, 11, details.DeliveryTime.UTC().Hour())
		})
	}
}

func TestPricingPolicy_PriceLines(t *testing.T) {
	policy := service.DefaultPricingPolicy()
	sold := dish(2, "Hết", 30_000)
	sold.IsAvailable = false
	dishes := map[int]domain.Dish{
		1: dish(1, "Bún bò", 50_000),
		2: sold,
		3: dish(3, "Trà đá", 5_000),
	}

	t.Run("tampered_price_replaced", func(t *testing.T) {
		lines, total, err := policy.PriceLines([]domain.OrderItemInput{
			{DishID: 1, Quantity: 1, Price: decPtr(10_000)},
			{DishID: 3, Quantity: 0},
		}, dishes)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(50_000)))
		assert.True(t, lines[0].OriginalPrice.Equal(decimal.NewFromInt(50_000)))
		assert.Equal(t, 1, lines[1].Quantity)
		assert.True(t, total.Equal(decimal.NewFromInt(55_000)), "total %s", total)
	})

	t.Run("accepted_discount", func(t *testing.T) {
		_, total, err := policy.PriceLines([]domain.OrderItemInput{{DishID: 1, Quantity: 2, Price: decPtr(40_000)}}, dishes)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(80_000)))
	})

	t.Run("fractional_price_keeps_total_whole", func(t *testing.T) {
		lines, total, err := policy.PriceLines([]domain.OrderItemInput{{DishID: 1, Quantity: 3, Price: decStrPtr("15000.005")}}, dishes)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(50_000)), "unit %s", lines[0].UnitPrice)
		assert.True(t, total.Equal(decimal.NewFromInt(150_000)), "total %s", total)
		assert.True(t, total.Equal(total.Truncate(0)))
	})

	t.Run("unavailable_dish", func(t *testing.T) {
		_, _, err := policy.PriceLines([]domain.OrderItemInput{{DishID: 2, Quantity: 1}}, dishes)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown_dish", func(t *testing.T) {
		_, _, err := policy.PriceLines([]domain.OrderItemInput{{DishID: 99, Quantity: 1}}, dishes)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPricingPolicy_CheckTotal(t *testing.T) {
	policy := service.DefaultPricingPolicy()

	assert.ErrorIs(t, policy.CheckTotal(decimal.NewFromInt(9_999)), domain.ErrValidation)
	assert.NoError(t, policy.CheckTotal(decimal.NewFromInt(10_000)))
	assert.NoError(t, policy.CheckTotal(decimal.NewFromInt(5_000_000)))
	assert.ErrorIs(t, policy.CheckTotal(decimal.NewFromInt(5_000_001)), domain.ErrValidation)
}
