package service

import (
	"github.com/hoaithan123/du-an-smart-food/internal/domain"
)

type MergeWeights struct {
	Personal         float64
	Time             float64
	Weather          float64
	Popularity       float64
	Rating           float64
	DiversityPenalty float64
}

func DefaultMergeWeights() MergeWeights {
	return MergeWeights{
		Personal:         1.0,
		Time:             0.6,
		Weather:          0.3,
		Popularity:       0.01,
		Rating:           3,
		DiversityPenalty: 10,
	}
}

func (w MergeWeights) sourceWeight(s domain.Source) float64 {
	switch s {
	case domain.SourcePersonal:
		return w.Personal
	case domain.SourceTime:
		return w.Time
	default:
		return w.Weather
	}
}

// BaseScore is the diversity-free score of one candidate.
func (w MergeWeights) BaseScore(r domain.Recommendation) float64 {
	return w.sourceWeight(r.Source)*100 + float64(r.TotalOrders)*w.Popularity + r.Rating*w.Rating
}

// Dedupe keeps the first occurrence of every dish id, preserving order.
func Dedupe(lists ...[]domain.Recommendation) []domain.Recommendation {
	seen := make(map[int]struct{})
	var out []domain.Recommendation
	for _, list := range lists {
		for _, r := range list {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// Merge de-duplicates candidates in priority order and greedily selects k of them,
// penalising categories that are already represented.
func Merge(w MergeWeights, k int, personal, timed, weather []domain.Recommendation) []domain.Recommendation {
	pool := Dedupe(personal, timed, weather)
	for i := range pool {
		pool[i].Score = w.BaseScore(pool[i])
	}

	selected := make([]domain.Recommendation, 0, k)
	usedCategories := make(map[string]struct{})
	for len(pool) > 0 && len(selected) < k {
		best := 0
		bestScore := 0.0
		for i, cand := range pool {
			s := cand.Score
			if _, used := usedCategories[cand.CategoryName]; used {
				s -= w.DiversityPenalty
			}
			if i == 0 || s > bestScore {
				best, bestScore = i, s
			}
		}
		chosen := pool[best]
		pool = append(pool[:best], pool[best+1:]...)
		selected = append(selected, chosen)
		if chosen.CategoryName != "" {
			usedCategories[chosen.CategoryName] = struct{}{}
		}
	}
	return selected
}
