package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultListLimit = 20
	maxListLimit     = 100
)

var dishSorts = map[string]struct{}{
	"popular": {}, "rating": {}, "newest": {}, "price_low": {}, "price_high": {},
}

type CatalogService struct {
	repo       CatalogRepository
	popularity PopularityCache
	fallback   PopularityRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewCatalogService(repo CatalogRepository, popularity PopularityCache, fallback PopularityRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, popularity: popularity, fallback: fallback, logger: logger, now: time.Now}
}

func (s *CatalogService) List(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error) {
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if q.Sort == "" {
		q.Sort = "popular"
	}
	if _, ok := dishSorts[q.Sort]; !ok {
		return nil, 0, domain.Invalid("sort", "unknown sort order")
	}
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return s.repo.ListDishes(ctx, q)
}

func (s *CatalogService) Get(ctx context.Context, id int) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, id)
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// TrendingToday reads today's popularity ranking from the cache and falls back
// to counting today's order lines in the database.
func (s *CatalogService) TrendingToday(ctx context.Context, limit int) ([]domain.DishAnalytics, error) {
	if limit <= 0 {
		limit = 10
	}
	day := s.now()
	if s.popularity != nil {
		top, err := s.popularity.TopToday(ctx, day, limit)
		if err == nil && len(top) > 0 {
			return top, nil
		}
		if err != nil {
			s.logger.Warn("popularity cache unavailable", zap.Error(err))
		}
	}
	top, err := s.fallback.TopOrderedOn(ctx, day, limit)
	if err != nil {
		return nil, fmt.Errorf("top ordered dishes: %w", err)
	}
	if top == nil {
		top = []domain.DishAnalytics{}
	}
	return top, nil
}
