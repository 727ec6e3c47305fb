package service

import (
	"math"
	"sort"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
)

const defaultDecayDays = 30.0

// Preferences is the recency-weighted affinity of one user, derived from order history.
type Preferences struct {
	DishScore     map[int]float64
	CategoryScore map[int]float64
	Purchased     map[int]struct{}
}

func (p *Preferences) Empty() bool {
	return p == nil || len(p.Purchased) == 0
}

// RankedDishes returns purchased dish ids by score descending, ties by id.
func (p *Preferences) RankedDishes() []int {
	ids := make([]int, 0, len(p.Purchased))
	for id := range p.Purchased {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := p.DishScore[ids[i]], p.DishScore[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// TopCategories returns up to n category ids by score descending.
func (p *Preferences) TopCategories(n int) []int {
	ids := make([]int, 0, len(p.CategoryScore))
	for id := range p.CategoryScore {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := p.CategoryScore[ids[i]], p.CategoryScore[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})
	if n >= 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids
}

func (p *Preferences) PurchasedIDs() []int {
	ids := make([]int, 0, len(p.Purchased))
	for id := range p.Purchased {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type PreferenceScorer struct {
	DecayDays float64
}

// Decay is the weight of an order placed at orderTime as seen from now.
func (s PreferenceScorer) Decay(now, orderTime time.Time) float64 {
	days := s.DecayDays
	if days <= 0 {
		days = defaultDecayDays
	}
	ageDays := math.Max(0, now.Sub(orderTime).Hours()/24)
	return math.Exp(-ageDays / days)
}

// Score folds cancelled-free order history into dish and category affinities.
// Lines must carry CategoryID; a zero category is not propagated.
func (s PreferenceScorer) Score(orders []domain.Order, now time.Time) *Preferences {
	prefs := &Preferences{
		DishScore:     make(map[int]float64),
		CategoryScore: make(map[int]float64),
		Purchased:     make(map[int]struct{}),
	}
	for _, order := range orders {
		if order.Status == domain.StatusCancelled {
			continue
		}
		decay := s.Decay(now, order.OrderTime)
		for _, line := range order.Lines {
			qty := line.Quantity
			if qty < 1 {
				qty = 1
			}
			contribution := float64(qty) * decay
			prefs.DishScore[line.DishID] += contribution
			prefs.Purchased[line.DishID] = struct{}{}
			if line.CategoryID != 0 {
				prefs.CategoryScore[line.CategoryID] += contribution
			}
		}
	}
	return prefs
}
