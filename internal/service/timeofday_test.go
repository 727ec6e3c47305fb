package service_test

import (
	"testing"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBucketForHour(t *testing.T) {
	tests := []struct {
		hour  int
		label string
		tags  []string
	}{
		{hour: 5, label: "sang", tags: []string{"breakfast", "coffee", "bread", "banh_mi", "xoi"}},
		{hour: 9, label: "sang"},
		{hour: 10, label: "late_morning"},
		{hour: 12, label: "trua"},
		{hour: 13, label: "trua", tags: []string{"main", "rice", "noodle", "soup"}},
		{hour: 14, label: "chieu"},
		{hour: 17, label: "xe_chieu"},
		{hour: 18, label: "toi"},
		{hour: 21, label: "toi"},
		{hour: 22, label: "khuya"},
		{hour: 0, label: "khuya"},
		{hour: 4, label: "khuya", tags: []string{"late-night", "noodle", "soup", "fastfood", "porridge"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.label, func(t *testing.T) {
			bucket := service.BucketForHour(testCase.hour)
			assert.Equal(t, testCase.label, bucket.Label, "hour %d", testCase.hour)
			if testCase.tags != nil {
				assert.Equal(t, testCase.tags, bucket.Tags)
			}
		})
	}
}

func TestResolveHour(t *testing.T) {
	now := time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       service.HourRequest
		expected  int
		expectErr bool
	}{
		{name: "explicit_hour", req: service.HourRequest{Hour: intPtr(13)}, expected: 13},
		{name: "explicit_hour_wins_over_offset", req: service.HourRequest{Hour: intPtr(20), TZOffset: intPtr(420)}, expected: 20},
		{name: "offset_applied_to_utc", req: service.HourRequest{TZOffset: intPtr(420)}, expected: 13},
		{name: "negative_offset", req: service.HourRequest{TZOffset: intPtr(-420)}, expected: 23},
		{name: "hour_out_of_range", req: service.HourRequest{Hour: intPtr(24)}, expectErr: true},
		{name: "negative_hour", req: service.HourRequest{Hour: intPtr(-1)}, expectErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			hour, err := service.ResolveHour(testCase.req, now)
			if testCase.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, hour)
		})
	}
}

func TestResolveHour_FallsBackToServerClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)
	hour, err := service.ResolveHour(service.HourRequest{}, now)
	require.NoError(t, err)
	assert.Equal(t, now.Local().Hour(), hour)
}

func TestBucketForWeather(t *testing.T) {
	tests := []struct {
		name    string
		weather domain.Weather
		tags    []string
		reason  string
	}{
		{name: "cold", weather: domain.Weather{Temperature: 15, Condition: "clear"}, tags: []string{"hot", "soup", "noodle", "hotpot"}, reason: "Perfect for cold weather"},
		{name: "rain", weather: domain.Weather{Temperature: 27, Condition: "Rain"}, tags: []string{"hot", "soup", "noodle", "hotpot"}, reason: "Perfect for cold weather"},
		{name: "hot", weather: domain.Weather{Temperature: 35, Condition: "clear"}, tags: []string{"cold", "drink", "salad", "ice"}, reason: "Refreshing for hot weather"},
		{name: "mild", weather: domain.Weather{Temperature: 25, Condition: "clouds"}, tags: []string{"main", "popular"}, reason: "Great for current weather"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			bucket := service.BucketForWeather(testCase.weather)
			assert.Equal(t, testCase.tags, bucket.Tags)
			assert.Equal(t, testCase.reason, bucket.Reason)
		})
	}
}
