package service_test

import (
	"testing"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int, category string, rating float64, source domain.Source, reason string) domain.Recommendation {
	return domain.Recommendation{
		Dish:   domain.Dish{ID: id, Name: "dish", CategoryName: category, Rating: rating, IsAvailable: true},
		Source: source,
		Reason: reason,
	}
}

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	personal := []domain.Recommendation{rec(1, "Cơm", 4, domain.SourcePersonal, "Your frequent orders")}
	timed := []domain.Recommendation{
		rec(1, "Cơm", 4, domain.SourceTime, "Phù hợp buổi trua"),
		rec(2, "Phở", 4, domain.SourceTime, "Phù hợp buổi trua"),
	}

	out := service.Dedupe(personal, timed)
	require.Len(t, out, 2)
	assert.Equal(t, "Your frequent orders", out[0].Reason)
	assert.Equal(t, 2, out[1].ID)
}

func TestMerge_PersonalReasonWinsOnDuplicates(t *testing.T) {
	personal := []domain.Recommendation{
		rec(1, "Cơm", 4, domain.SourcePersonal, "Your frequent orders"),
		rec(2, "Phở", 4, domain.SourcePersonal, "Similar to your favorites"),
	}
	timed := []domain.Recommendation{
		rec(2, "Phở", 4, domain.SourceTime, "Phù hợp buổi trua"),
		rec(3, "Bún", 4, domain.SourceTime, "Phù hợp buổi trua"),
	}
	weather := []domain.Recommendation{
		rec(1, "Cơm", 4, domain.SourceWeather, "Perfect for cold weather"),
		rec(4, "Lẩu", 4, domain.SourceWeather, "Perfect for cold weather"),
	}

	out := service.Merge(service.DefaultMergeWeights(), 10, personal, timed, weather)

	require.Len(t, out, 4)
	seen := map[int]string{}
	for _, r := range out {
		_, dup := seen[r.ID]
		assert.False(t, dup, "dish %d selected twice", r.ID)
		seen[r.ID] = r.Reason
	}
	assert.Equal(t, "Your frequent orders", seen[1])
	assert.Equal(t, "Similar to your favorites", seen[2])
}

func TestMerge_SourcePriorityOrdersResult(t *testing.T) {
	personal := []domain.Recommendation{rec(1, "A", 1, domain.SourcePersonal, "p")}
	timed := []domain.Recommendation{rec(2, "B", 5, domain.SourceTime, "t")}
	weather := []domain.Recommendation{rec(3, "C", 5, domain.SourceWeather, "w")}

	out := service.Merge(service.DefaultMergeWeights(), 3, personal, timed, weather)

	require.Len(t, out, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].ID, out[1].ID, out[2].ID})
}

func TestMerge_SpreadsCategories(t *testing.T) {
	w := service.DefaultMergeWeights()
	var timed []domain.Recommendation
	for i := 1; i <= 6; i++ {
		timed = append(timed, rec(i, "Cơm", 5, domain.SourceTime, "t"))
	}
	for i := 7; i <= 12; i++ {
		timed = append(timed, rec(i, "Đồ uống", 2, domain.SourceTime, "t"))
	}

	for k := 2; k <= 10; k++ {
		out := service.Merge(w, k, nil, timed, nil)
		require.Len(t, out, k)

		perCategory := map[string]int{}
		for _, r := range out {
			perCategory[r.CategoryName]++
		}
		assert.Len(t, perCategory, 2, "k=%d", k)
		assert.Equal(t, "Đồ uống", out[1].CategoryName, "k=%d", k)
		if k <= 4 {
			assert.LessOrEqual(t, perCategory["Cơm"], (k+1)/2+1, "k=%d", k)
		}
	}
}

func TestMerge_RespectsLimit(t *testing.T) {
	out := service.Merge(service.DefaultMergeWeights(), 2,
		[]domain.Recommendation{rec(1, "A", 4, domain.SourcePersonal, "p"), rec(2, "B", 4, domain.SourcePersonal, "p")},
		[]domain.Recommendation{rec(3, "C", 4, domain.SourceTime, "t")},
		nil)
	assert.Len(t, out, 2)

	assert.Empty(t, service.Merge(service.DefaultMergeWeights(), 5, nil, nil, nil))
}
