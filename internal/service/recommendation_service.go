package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	reasonPopular       = "Popular dishes"
	reasonFavorite      = "Your frequent orders"
	reasonExplore       = "Similar to your favorites"
	reasonCollaborative = "Popular among similar users"
	feedbackConfidence  = 0.8
)

type RecommendationConfig struct {
	HistoryWindow    int
	DecayDays        float64
	TopCategories    int
	FavoritePool     int
	SmartSourceLimit int
	Weights          MergeWeights
}

func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		HistoryWindow:    50,
		DecayDays:        defaultDecayDays,
		TopCategories:    5,
		FavoritePool:     20,
		SmartSourceLimit: 5,
		Weights:          DefaultMergeWeights(),
	}
}

type TimeBasedResult struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Type            string                  `json:"type"`
	TimeCategory    string                  `json:"time_category"`
	Hour            int                     `json:"hour"`
}

type PersonalResult struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Type            string                  `json:"type"`
}

type WeatherResult struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Type            string                  `json:"type"`
	Weather         domain.Weather          `json:"weather"`
}

type SourceCounts struct {
	Personal     int `json:"personal"`
	TimeBased    int `json:"time_based"`
	WeatherBased int `json:"weather_based"`
}

type SmartResult struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Type            string                  `json:"type"`
	Sources         SourceCounts            `json:"sources"`
}

type RecommendationService struct {
	catalog  CatalogRepository
	history  HistoryRepository
	feedback FeedbackRepository
	weather  WeatherProvider
	cfg      RecommendationConfig
	scorer   PreferenceScorer
	logger   *zap.Logger
	now      func() time.Time
}

// NewRecommendationService wires the strategies. weather may be nil when no provider is configured.
func NewRecommendationService(catalog CatalogRepository, history HistoryRepository, feedback FeedbackRepository,
	weather WeatherProvider, cfg RecommendationConfig, logger *zap.Logger) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		catalog:  catalog,
		history:  history,
		feedback: feedback,
		weather:  weather,
		cfg:      cfg,
		scorer:   PreferenceScorer{DecayDays: cfg.DecayDays},
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *RecommendationService) WithClock(now func() time.Time) *RecommendationService {
	s.now = now
	return s
}

func (s *RecommendationService) TimeBased(ctx context.Context, limit int, at HourRequest) (*TimeBasedResult, error) {
	hour, err := ResolveHour(at, s.now())
	if err != nil {
		return nil, err
	}
	bucket := BucketForHour(hour)
	recs, err := s.timeProducer(bucket, limit)(ctx)
	if err != nil {
		return nil, err
	}
	return &TimeBasedResult{
		Recommendations: nonNil(recs),
		Type:            "time-based",
		TimeCategory:    bucket.Label,
		Hour:            hour,
	}, nil
}

func (s *RecommendationService) timeProducer(bucket TimeBucket, limit int) Producer {
	return func(ctx context.Context) ([]domain.Recommendation, error) {
		dishes, err := s.catalog.DishesByTags(ctx, bucket.Tags, limit)
		if err != nil {
			return nil, fmt.Errorf("time-based dishes: %w", err)
		}
		return annotate(dishes, domain.SourceTime, timeReason(bucket.Label)), nil
	}
}

func (s *RecommendationService) Personal(ctx context.Context, userID, limit int) (*PersonalResult, error) {
	orders, err := s.history.RecentOrders(ctx, userID, s.cfg.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}
	prefs := s.scorer.Score(orders, s.now())
	if prefs.Empty() {
		recs, err := s.popularProducer(limit)(ctx)
		if err != nil {
			return nil, err
		}
		return &PersonalResult{Recommendations: nonNil(recs), Type: "popular"}, nil
	}
	recs, err := s.personalProducer(prefs, userID, limit)(ctx)
	if err != nil {
		return nil, err
	}
	return &PersonalResult{Recommendations: nonNil(recs), Type: "personal"}, nil
}

func (s *RecommendationService) popularProducer(limit int) Producer {
	return func(ctx context.Context) ([]domain.Recommendation, error) {
		dishes, err := s.catalog.PopularDishes(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("popular dishes: %w", err)
		}
		return annotate(dishes, domain.SourcePersonal, reasonPopular), nil
	}
}

func (s *RecommendationService) topRatedProducer(limit int, reason string) Producer {
	return func(ctx context.Context) ([]domain.Recommendation, error) {
		dishes, err := s.catalog.TopRatedDishes(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("top rated dishes: %w", err)
		}
		return annotate(dishes, domain.SourcePersonal, reason), nil
	}
}

// personalProducer builds favorites, explore and collaborative lists in that priority order.
func (s *RecommendationService) personalProducer(prefs *Preferences, userID, limit int) Producer {
	return WithFallback(func(ctx context.Context) ([]domain.Recommendation, error) {
		ranked := prefs.RankedDishes()
		seeds := ranked
		if len(seeds) > s.cfg.FavoritePool {
			seeds = seeds[:s.cfg.FavoritePool]
		}
		purchased := prefs.PurchasedIDs()

		favorites, err := s.favorites(ctx, seeds)
		if err != nil {
			return nil, err
		}

		explore := WithFallback(func(ctx context.Context) ([]domain.Recommendation, error) {
			dishes, err := s.catalog.DishesInCategories(ctx, prefs.TopCategories(s.cfg.TopCategories), purchased, limit)
			if err != nil {
				return nil, fmt.Errorf("explore dishes: %w", err)
			}
			return annotate(dishes, domain.SourcePersonal, reasonExplore), nil
		}, s.topRatedProducer(limit, reasonExplore))
		exploreRecs, err := explore(ctx)
		if err != nil {
			return nil, err
		}

		collaborative, err := s.collaborative(ctx, userID, seeds, purchased, limit)
		if err != nil {
			return nil, err
		}

		merged := Dedupe(favorites, exploreRecs, collaborative)
		if len(merged) > limit {
			merged = merged[:limit]
		}
		return merged, nil
	}, s.popularProducer(limit))
}

func (s *RecommendationService) favorites(ctx context.Context, seeds []int) ([]domain.Recommendation, error) {
	dishes, err := s.catalog.DishesByIDs(ctx, seeds)
	if err != nil {
		return nil, fmt.Errorf("favorite dishes: %w", err)
	}
	byID := make(map[int]domain.Dish, len(dishes))
	for _, d := range dishes {
		if d.IsAvailable {
			byID[d.ID] = d
		}
	}
	ordered := make([]domain.Dish, 0, len(byID))
	for _, id := range seeds {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return annotate(ordered, domain.SourcePersonal, reasonFavorite), nil
}

func (s *RecommendationService) collaborative(ctx context.Context, userID int, seeds, purchased []int, limit int) ([]domain.Recommendation, error) {
	ids, err := s.history.CoPurchasedDishIDs(ctx, userID, seeds, purchased, limit)
	if err != nil {
		return nil, fmt.Errorf("co-purchased dishes: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	dishes, err := s.catalog.DishesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("collaborative dishes: %w", err)
	}
	byID := make(map[int]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	ordered := make([]domain.Dish, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok && d.IsAvailable {
			ordered = append(ordered, d)
		}
	}
	return annotate(ordered, domain.SourcePersonal, reasonCollaborative), nil
}

func (s *RecommendationService) WeatherBased(ctx context.Context, limit int) (*WeatherResult, error) {
	if s.weather == nil {
		return nil, domain.ErrWeatherUnavailable
	}
	current, err := s.weather.Current(ctx)
	if err != nil {
		return nil, err
	}
	bucket := BucketForWeather(*current)
	dishes, err := s.catalog.DishesByTags(ctx, bucket.Tags, limit)
	if err != nil {
		return nil, fmt.Errorf("weather-based dishes: %w", err)
	}
	return &WeatherResult{
		Recommendations: nonNil(annotate(dishes, domain.SourceWeather, bucket.Reason)),
		Type:            "weather-based",
		Weather:         *current,
	}, nil
}

// Smart runs the three strategies concurrently and merges them into one diversified feed.
func (s *RecommendationService) Smart(ctx context.Context, userID, limit int, at HourRequest) (*SmartResult, error) {
	hour, err := ResolveHour(at, s.now())
	if err != nil {
		return nil, err
	}
	sourceLimit := s.cfg.SmartSourceLimit

	var personal, timed, weather []domain.Recommendation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.Personal(gctx, userID, sourceLimit)
		if err != nil {
			return err
		}
		personal = res.Recommendations
		return nil
	})
	g.Go(func() error {
		recs, _ := Degrade(s.timeProducer(BucketForHour(hour), sourceLimit), "time-based", s.logger)(gctx)
		timed = recs
		return nil
	})
	g.Go(func() error {
		recs, _ := Degrade(func(ctx context.Context) ([]domain.Recommendation, error) {
			res, err := s.WeatherBased(ctx, sourceLimit)
			if err != nil {
				return nil, err
			}
			return res.Recommendations, nil
		}, "weather-based", s.logger)(gctx)
		weather = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	selected := Merge(s.cfg.Weights, limit, personal, timed, weather)
	return &SmartResult{
		Recommendations: nonNil(selected),
		Type:            "smart",
		Sources: SourceCounts{
			Personal:     len(personal),
			TimeBased:    len(timed),
			WeatherBased: len(weather),
		},
	}, nil
}

func (s *RecommendationService) RecordFeedback(ctx context.Context, fb domain.Feedback) error {
	if fb.DishID <= 0 {
		return domain.Invalid("dish_id", "is required")
	}
	if fb.RecommendationType == "" {
		return domain.Invalid("recommendation_type", "is required")
	}
	fb.Confidence = feedbackConfidence
	if err := s.feedback.SaveFeedback(ctx, fb); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

func nonNil(recs []domain.Recommendation) []domain.Recommendation {
	if recs == nil {
		return []domain.Recommendation{}
	}
	return recs
}
