package service

import (
	"strings"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
)

type WeatherBucket struct {
	Tags   []string
	Reason string
}

// BucketForWeather maps current conditions to comfort-food tags.
func BucketForWeather(w domain.Weather) WeatherBucket {
	condition := strings.ToLower(w.Condition)
	switch {
	case w.Temperature < 20 || strings.Contains(condition, "rain"):
		return WeatherBucket{Tags: []string{"hot", "soup", "noodle", "hotpot"}, Reason: "Perfect for cold weather"}
	case w.Temperature > 30:
		return WeatherBucket{Tags: []string{"cold", "drink", "salad", "ice"}, Reason: "Refreshing for hot weather"}
	default:
		return WeatherBucket{Tags: []string{"main", "popular"}, Reason: "Great for current weather"}
	}
}
