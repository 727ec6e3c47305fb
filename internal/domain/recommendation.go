package domain

import "github.com/shopspring/decimal"

// Source identifies the strategy that produced a recommendation.
type Source string

const (
	SourcePersonal Source = "personal"
	SourceTime     Source = "time"
	SourceWeather  Source = "weather"
)

type Recommendation struct {
	Dish
	Reason string  `json:"reason"`
	Source Source  `json:"-"`
	Score  float64 `json:"-"`
}

type ComboKind string

const (
	ComboRegular ComboKind = "combo"
	ComboSuper   ComboKind = "super"
)

type ComboItem struct {
	DishID        int             `json:"id"`
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Price         decimal.Decimal `json:"price"`
}

type ComboBundle struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Kind          ComboKind       `json:"kind"`
	Price         decimal.Decimal `json:"price"`
	OriginalTotal decimal.Decimal `json:"originalTotal"`
	DiscountRate  decimal.Decimal `json:"discount_rate"`
	SubItems      []ComboItem     `json:"subItems"`
}

// Savings is how much the bundle saves against buying the items separately.
func (b *ComboBundle) Savings() decimal.Decimal {
	return b.OriginalTotal.Sub(b.Price)
}
