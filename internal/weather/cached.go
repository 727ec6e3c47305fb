package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.uber.org/zap"
)

const cacheKey = "weather:current"

type Provider interface {
	Current(ctx context.Context) (*domain.Weather, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string) ([]byte, bool, error)
	SetJSON(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// CachedProvider keeps the last reading in redis for ttl so every request
// does not hit the upstream API.
type CachedProvider struct {
	next   Provider
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProvider(next Provider, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (p *CachedProvider) Current(ctx context.Context) (*domain.Weather, error) {
	if raw, ok, err := p.cache.GetJSON(ctx, cacheKey); err != nil {
		p.logger.Warn("weather cache read failed", zap.Error(err))
	} else if ok {
		var w domain.Weather
		if err := json.Unmarshal(raw, &w); err == nil {
			return &w, nil
		}
	}

	w, err := p.next.Current(ctx)
	if err != nil {
		return nil, err
	}
	if p.ttl > 0 {
		if payload, err := json.Marshal(w); err == nil {
			if err := p.cache.SetJSON(ctx, cacheKey, payload, p.ttl); err != nil {
				p.logger.Warn("weather cache write failed", zap.Error(err))
			}
		}
	}
	return w, nil
}
