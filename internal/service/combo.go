package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	suggestionPoolSize = 12
	suggestedCombos    = 4
	suggestedSupers    = 2
)

type ComboPolicy struct {
	ComboRate decimal.Decimal
	SuperRate decimal.Decimal
}

func DefaultComboPolicy() ComboPolicy {
	return ComboPolicy{
		ComboRate: decimal.RequireFromString("0.07"),
		SuperRate: decimal.RequireFromString("0.10"),
	}
}

func (p ComboPolicy) Rate(kind domain.ComboKind) decimal.Decimal {
	if kind == domain.ComboSuper {
		return p.SuperRate
	}
	return p.ComboRate
}

// BuildCombo discounts items by rate and spreads the bundle price over them.
// The bundle never costs less than its most expensive item, and the last item
// absorbs the rounding remainder so the shares always sum to the bundle price.
func BuildCombo(kind domain.ComboKind, rate decimal.Decimal, items []domain.Dish) (*domain.ComboBundle, error) {
	if len(items) == 0 {
		return nil, domain.Invalid("items", "combo needs at least one item")
	}
	keep := decimal.NewFromInt(1).Sub(rate)

	sum := decimal.Zero
	maxSingle := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
		if it.Price.GreaterThan(maxSingle) {
			maxSingle = it.Price
		}
	}
	target := decimal.Max(sum.Mul(keep).Round(0), maxSingle)

	subItems := make([]domain.ComboItem, 0, len(items))
	acc := decimal.Zero
	for i, it := range items {
		share := it.Price.Mul(keep).Round(0)
		if i == len(items)-1 {
			share = target.Sub(acc)
			if share.LessThan(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("%w: last share %s of target %s", domain.ErrComboIntegrity, share, target)
			}
		}
		acc = acc.Add(share)
		subItems = append(subItems, domain.ComboItem{
			DishID:        it.ID,
			Name:          it.Name,
			Image:         it.Image,
			OriginalPrice: it.Price,
			Price:         share,
		})
	}
	if !acc.Equal(target) {
		return nil, fmt.Errorf("%w: shares %s, target %s", domain.ErrComboIntegrity, acc, target)
	}

	main := items[0]
	name := "Combo: " + main.Name
	if kind == domain.ComboSuper {
		name = "Super Combo: " + main.Name
	}
	third := "na"
	if kind == domain.ComboSuper && len(items) > 2 {
		third = strconv.Itoa(items[2].ID)
	}
	drinkID := 0
	if len(items) > 1 {
		drinkID = items[1].ID
	}
	return &domain.ComboBundle{
		ID:            fmt.Sprintf("combo-sugg-%d-%d-%s", main.ID, drinkID, third),
		Name:          name,
		Kind:          kind,
		Price:         target,
		OriginalTotal: sum,
		DiscountRate:  rate,
		SubItems:      subItems,
	}, nil
}

type ComboRequest struct {
	MainID    int              `json:"main_id"`
	DrinkID   int              `json:"drink_id"`
	DessertID int              `json:"dessert_id,omitempty"`
	Kind      domain.ComboKind `json:"kind"`
}

type ComboSuggestions struct {
	Combos      []domain.ComboBundle `json:"combos"`
	SuperCombos []domain.ComboBundle `json:"superCombos"`
}

type ComboService struct {
	catalog CatalogRepository
	policy  ComboPolicy
	logger  *zap.Logger
}

func NewComboService(catalog CatalogRepository, policy ComboPolicy, logger *zap.Logger) *ComboService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComboService{catalog: catalog, policy: policy, logger: logger}
}

// Quote prices a combo from catalog prices; client-side prices are never trusted.
func (s *ComboService) Quote(ctx context.Context, req ComboRequest) (*domain.ComboBundle, error) {
	if req.Kind == "" {
		req.Kind = domain.ComboRegular
	}
	if req.Kind != domain.ComboRegular && req.Kind != domain.ComboSuper {
		return nil, domain.Invalid("kind", "must be combo or super")
	}
	if req.MainID <= 0 {
		return nil, domain.Invalid("main_id", "is required")
	}
	if req.DrinkID <= 0 {
		return nil, domain.Invalid("drink_id", "a drink is required")
	}
	ids := []int{req.MainID, req.DrinkID}
	if req.Kind == domain.ComboSuper {
		if req.DessertID <= 0 {
			return nil, domain.Invalid("dessert_id", "a dessert is required for a super combo")
		}
		ids = append(ids, req.DessertID)
	}

	dishes, err := s.catalog.DishesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load combo dishes: %w", err)
	}
	byID := make(map[int]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	items := make([]domain.Dish, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok || !d.IsAvailable {
			return nil, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
		}
		items = append(items, d)
	}
	return BuildCombo(req.Kind, s.policy.Rate(req.Kind), items)
}

// Suggestions assembles storefront combos from the popular, drink and dessert pools.
func (s *ComboService) Suggestions(ctx context.Context) (*ComboSuggestions, error) {
	var mains, drinks, desserts []domain.Dish
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mains, _, err = s.catalog.ListDishes(gctx, domain.DishQuery{Sort: "popular", Limit: suggestionPoolSize})
		return err
	})
	g.Go(func() error {
		var err error
		drinks, _, err = s.catalog.ListDishes(gctx, domain.DishQuery{Tags: []string{"drink"}, Limit: suggestionPoolSize})
		return err
	})
	g.Go(func() error {
		var err error
		desserts, _, err = s.catalog.ListDishes(gctx, domain.DishQuery{Tags: []string{"dessert"}, Limit: suggestionPoolSize})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load combo pools: %w", err)
	}

	classifier := NewClassifier()
	if filtered := excludeGroups(classifier, mains, GroupDrink, GroupDessert); len(filtered) > 0 {
		mains = filtered
	}

	out := &ComboSuggestions{Combos: []domain.ComboBundle{}, SuperCombos: []domain.ComboBundle{}}
	if len(mains) == 0 || len(drinks) == 0 {
		return out, nil
	}
	for i := 0; i < suggestedCombos; i++ {
		items := []domain.Dish{mains[i%len(mains)], drinks[(i+1)%len(drinks)]}
		combo, err := BuildCombo(domain.ComboRegular, s.policy.ComboRate, items)
		if err != nil {
			return nil, err
		}
		out.Combos = append(out.Combos, *combo)
	}
	for i := 0; i < suggestedSupers; i++ {
		third := mains[(i+5)%len(mains)]
		if len(desserts) > 0 {
			third = desserts[(i+4)%len(desserts)]
		}
		items := []domain.Dish{mains[(i+2)%len(mains)], drinks[(i+3)%len(drinks)], third}
		combo, err := BuildCombo(domain.ComboSuper, s.policy.SuperRate, items)
		if err != nil {
			s.logger.Error("super combo does not reconcile", zap.String("name", items[0].Name), zap.Error(err))
			return nil, err
		}
		out.SuperCombos = append(out.SuperCombos, *combo)
	}
	return out, nil
}

func excludeGroups(c *Classifier, dishes []domain.Dish, groups ...DishGroup) []domain.Dish {
	out := make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		g := c.Group(d)
		skip := false
		for _, ex := range groups {
			if g == ex {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, d)
		}
	}
	return out
}
