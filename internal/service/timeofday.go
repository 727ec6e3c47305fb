package service

import (
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
)

// TimeBucket maps a range of hours to the tags worth surfacing then.
type TimeBucket struct {
	Label string
	From  int
	To    int
	Tags  []string
}

var timeBuckets = []TimeBucket{
	{Label: "sang", From: 5, To: 10, Tags: []string{"breakfast", "coffee", "bread", "banh_mi", "xoi"}},
	{Label: "late_morning", From: 10, To: 12, Tags: []string{"light_meal", "salad", "drink"}},
	{Label: "trua", From: 12, To: 14, Tags: []string{"main", "rice", "noodle", "soup"}},
	{Label: "chieu", From: 14, To: 16, Tags: []string{"snack", "drink", "dessert", "fruit"}},
	{Label: "xe_chieu", From: 16, To: 18, Tags: []string{"snack", "streetfood", "milk_tea", "coffee"}},
	{Label: "toi", From: 18, To: 22, Tags: []string{"main", "hotpot", "grill", "rice", "noodle"}},
}

var lateNightBucket = TimeBucket{Label: "khuya", From: 22, To: 5, Tags: []string{"late-night", "noodle", "soup", "fastfood", "porridge"}}

// BucketForHour returns the bucket containing hour; hours outside every daytime bucket are late night.
func BucketForHour(hour int) TimeBucket {
	for _, b := range timeBuckets {
		if hour >= b.From && hour < b.To {
			return b
		}
	}
	return lateNightBucket
}

func timeReason(label string) string {
	return "Phù hợp buổi " + label
}

// HourRequest carries the caller's notion of "now". Hour wins over TZOffset (minutes east of UTC).
type HourRequest struct {
	Hour     *int
	TZOffset *int
}

// ResolveHour picks the local hour for the request, falling back to the server's local hour.
func ResolveHour(req HourRequest, now time.Time) (int, error) {
	if req.Hour != nil {
		if *req.Hour < 0 || *req.Hour > 23 {
			return 0, domain.Invalid("hour", "must be between 0 and 23")
		}
		return *req.Hour, nil
	}
	if req.TZOffset != nil {
		return now.UTC().Add(time.Duration(*req.TZOffset) * time.Minute).Hour(), nil
	}
	return now.Local().Hour(), nil
}
