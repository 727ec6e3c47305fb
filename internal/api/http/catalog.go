package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"
)

type dishListResponse struct {
	Dishes []domain.Dish `json:"dishes"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type reviewListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	OrderID *int   `json:"order_id"`
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	categoryID, err := queryInt(r, "category", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := domain.DishQuery{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(query.Get("search")),
		Tags:       splitTags(query.Get("tags")),
		Sort:       query.Get("sort"),
		Limit:      limit,
		Offset:     offset,
	}
	dishes, total, err := h.Catalog.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	switch {
	case limit <= 0:
		limit = service.DefaultListLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	writeJSON(w, http.StatusOK, dishListResponse{Dishes: dishes, Total: total, Limit: limit, Offset: offset})
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dish, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) trendingDishes(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	trending, err := h.Catalog.TrendingToday(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dishes": trending})
}

func (h *Handler) getDishReviews(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	reviews, total, err := h.Reviews.ListDishReviews(r.Context(), dishID, limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews, Total: total})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, _ := IdentityFrom(r.Context())
	review := &domain.Review{
		UserID:  user.UserID,
		DishID:  dishID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if req.OrderID != nil {
		review.OrderID = *req.OrderID
	}
	if err := h.Reviews.Create(r.Context(), review, req.OrderID != nil); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
