package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxLimit = 100

type Handler struct {
	Recommendations service.RecommendationServiceInterface
	Orders          service.OrderServiceInterface
	Combos          service.ComboServiceInterface
	Catalog         service.CatalogServiceInterface
	Reviews         service.ReviewServiceInterface
	DefaultLimit    int
	Logger          *zap.Logger
}

func NewHandler(recSvc service.RecommendationServiceInterface, orderSvc service.OrderServiceInterface,
	comboSvc service.ComboServiceInterface, catalogSvc service.CatalogServiceInterface,
	reviewSvc service.ReviewServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Recommendations: recSvc,
		Orders:          orderSvc,
		Combos:          comboSvc,
		Catalog:         catalogSvc,
		Reviews:         reviewSvc,
		DefaultLimit:    10,
		Logger:          logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/recommendations/time-based", h.timeBased).Methods("GET")
	api.HandleFunc("/recommendations/personal", RequireUser(h.personal)).Methods("GET")
	api.HandleFunc("/recommendations/weather-based", h.weatherBased).Methods("GET")
	api.HandleFunc("/recommendations/smart", RequireUser(h.smart)).Methods("GET")
	api.HandleFunc("/recommendations/feedback", RequireUser(h.feedback)).Methods("POST")

	api.HandleFunc("/orders", RequireUser(h.createOrder)).Methods("POST")
	api.HandleFunc("/orders/my", RequireUser(h.myOrders)).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}", RequireUser(h.getOrder)).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/qrcode", RequireUser(h.getOrderQRCode)).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/status", RequireAdmin(h.updateOrderStatus)).Methods("PUT")

	api.HandleFunc("/categories", h.getCategories).Methods("GET")
	api.HandleFunc("/dishes", h.getDishes).Methods("GET")
	api.HandleFunc("/dishes/trending", h.trendingDishes).Methods("GET")
	api.HandleFunc("/dishes/{id:[0-9]+}", h.getDish).Methods("GET")
	api.HandleFunc("/dishes/{id:[0-9]+}/reviews", h.getDishReviews).Methods("GET")
	api.HandleFunc("/dishes/{id:[0-9]+}/reviews", RequireUser(h.createReview)).Methods("POST")

	api.HandleFunc("/combos/quote", h.quoteCombo).Methods("POST")
	api.HandleFunc("/combos/suggestions", h.comboSuggestions).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "smartfood",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps service errors onto status codes. Unexpected errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeMessage(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrWeatherUnavailable):
		writeMessage(w, http.StatusBadRequest, "Weather API not configured")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, domain.Invalid("id", "must be an integer")
	}
	return id, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalid(name, "must be an integer")
	}
	return v, nil
}

func queryOptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.Invalid(name, "must be an integer")
	}
	return &v, nil
}

func (h *Handler) limit(r *http.Request) (int, error) {
	limit, err := queryInt(r, "limit", h.DefaultLimit)
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		limit = h.DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}
