package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	popularityTTL   = 7 * 24 * time.Hour
	dishSnapshotTTL = 24 * time.Hour
)

// DishNamer resolves dish names for ranking entries cached by id.
type DishNamer interface {
	DishNames(ctx context.Context, ids []int) (map[int]string, error)
}

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
	Names  DishNamer
}

func NewRedisCache(client *redis.Client, ttl time.Duration, names DishNamer) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl, Names: names}
}

func (c *RedisCache) ReviewMarkerKey(userID, dishID, orderID int) string {
	return fmt.Sprintf("review:%d:%d:%d", userID, dishID, orderID)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func PopularityKey(day time.Time) string {
	return "popularity:daily:" + day.Format(time.DateOnly)
}

func DishSnapshotKey(dishID int) string {
	return "dish:" + strconv.Itoa(dishID)
}

func popularityOrdersKey(day time.Time) string {
	return PopularityKey(day) + ":orders"
}

// recordOrderScript bumps the ranking only when the order id is new to the
// day's seen set, so replays of the same event are no-ops.
// KEYS: ranking, seen set. ARGV: order id, ttl seconds, then dish id/quantity pairs.
var recordOrderScript = redis.NewScript(`
if redis.call('SADD', KEYS[2], ARGV[1]) == 0 then
	return 0
end
for i = 3, #ARGV, 2 do
	redis.call('ZINCRBY', KEYS[1], ARGV[i + 1], ARGV[i])
end
redis.call('EXPIRE', KEYS[1], ARGV[2])
redis.call('EXPIRE', KEYS[2], ARGV[2])
return 1
`)

// RecordOrderLines bumps the daily popularity sorted set by the units ordered,
// once per order.
func (c *RedisCache) RecordOrderLines(ctx context.Context, orderID int, day time.Time, lines []domain.EventLine) error {
	if len(lines) == 0 {
		return nil
	}
	args := make([]any, 0, 2+2*len(lines))
	args = append(args, orderID, int64(popularityTTL/time.Second))
	for _, l := range lines {
		args = append(args, strconv.Itoa(l.DishID), l.Quantity)
	}
	keys := []string{PopularityKey(day), popularityOrdersKey(day)}
	return recordOrderScript.Run(ctx, c.Client, keys, args...).Err()
}

func (c *RedisCache) SetDishSnapshot(ctx context.Context, dishID int, avgRating float64, reviewCount int, at time.Time) error {
	key := DishSnapshotKey(dishID)
	if err := c.Client.HSet(ctx, key, map[string]any{
		"avg_rating":   avgRating,
		"review_count": reviewCount,
		"last_updated": at.Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, dishSnapshotTTL).Err()
}

func (c *RedisCache) TopToday(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error) {
	result, err := c.Client.ZRevRangeWithScores(ctx, PopularityKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}

	top := make([]domain.DishAnalytics, 0, len(result))
	ids := make([]int, 0, len(result))
	for _, member := range result {
		raw, _ := member.Member.(string)
		dishID, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		ids = append(ids, dishID)
		top = append(top, domain.DishAnalytics{DishID: dishID, Score: member.Score})
	}
	if c.Names != nil {
		names, err := c.Names.DishNames(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range top {
			top[i].DishName = names[top[i].DishID]
		}
	}
	return top, nil
}

// GetJSON and SetJSON back small read-through caches such as the current weather.
func (c *RedisCache) GetJSON(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, payload, ttl).Err()
}
