package service

import (
	"context"
	"errors"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.uber.org/zap"
)

// Producer yields recommendation candidates for one request.
type Producer func(ctx context.Context) ([]domain.Recommendation, error)

// WithFallback runs primary and switches to fallback when primary yields nothing
// or reports its upstream unavailable. Other errors propagate.
func WithFallback(primary, fallback Producer) Producer {
	return func(ctx context.Context) ([]domain.Recommendation, error) {
		recs, err := primary(ctx)
		if err != nil && !errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		if err == nil && len(recs) > 0 {
			return recs, nil
		}
		if fallback == nil {
			return nil, nil
		}
		return fallback(ctx)
	}
}

// Degrade swallows any failure of p, logging it, so one strategy cannot sink the merged feed.
func Degrade(p Producer, name string, logger *zap.Logger) Producer {
	return func(ctx context.Context) ([]domain.Recommendation, error) {
		recs, err := p(ctx)
		if err != nil {
			logger.Warn("recommendation strategy unavailable", zap.String("strategy", name), zap.Error(err))
			return nil, nil
		}
		return recs, nil
	}
}

func annotate(dishes []domain.Dish, source domain.Source, reason string) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(dishes))
	for _, d := range dishes {
		recs = append(recs, domain.Recommendation{Dish: d, Reason: reason, Source: source})
	}
	return recs
}
