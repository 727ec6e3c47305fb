package weather_test

import (
	"context"
	"testing"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/mocks"
	"github.com/hoaithan123/du-an-smart-food/internal/storage"
	"github.com/hoaithan123/du-an-smart-food/internal/weather"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, time.Hour, nil), mr
}

func TestCachedProvider_ReadsThrough(t *testing.T) {
	cache, mr := newRedisCache(t)
	upstream := mocks.NewWeatherProvider(t)
	provider := weather.NewCachedProvider(upstream, cache, 10*time.Minute, nil)
	ctx := context.Background()

	reading := &domain.Weather{Temperature: 16, Condition: "rain", City: "Hanoi"}
	upstream.On("Current", mock.Anything).Return(reading, nil).Once()

	first, err := provider.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, reading, first)

	second, err := provider.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, reading, second)

	mr.FastForward(11 * time.Minute)
	upstream.On("Current", mock.Anything).Return(&domain.Weather{Temperature: 35, Condition: "clear", City: "Hanoi"}, nil).Once()

	third, err := provider.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 35.0, third.Temperature)
}

func TestCachedProvider_UpstreamFailureIsNotCached(t *testing.T) {
	cache, mr := newRedisCache(t)
	upstream := mocks.NewWeatherProvider(t)
	provider := weather.NewCachedProvider(upstream, cache, 10*time.Minute, nil)

	upstream.On("Current", mock.Anything).Return(nil, domain.ErrUpstreamUnavailable).Once()

	_, err := provider.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.False(t, mr.Exists("weather:current"))
}

func TestCachedProvider_CacheDownFallsThrough(t *testing.T) {
	cache, mr := newRedisCache(t)
	mr.Close()
	upstream := mocks.NewWeatherProvider(t)
	provider := weather.NewCachedProvider(upstream, cache, 10*time.Minute, nil)

	upstream.On("Current", mock.Anything).Return(&domain.Weather{Temperature: 25, City: "Hanoi"}, nil).Once()

	got, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Temperature)
}
