package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"
)

func hourRequest(r *http.Request) (service.HourRequest, error) {
	hour, err := queryOptionalInt(r, "hour")
	if err != nil {
		return service.HourRequest{}, err
	}
	offset, err := queryOptionalInt(r, "tzOffset")
	if err != nil {
		return service.HourRequest{}, err
	}
	return service.HourRequest{Hour: hour, TZOffset: offset}, nil
}

func (h *Handler) timeBased(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	at, err := hourRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.Recommendations.TimeBased(r.Context(), limit, at)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) personal(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, _ := IdentityFrom(r.Context())
	result, err := h.Recommendations.Personal(r.Context(), user.UserID, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) weatherBased(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.Recommendations.WeatherBased(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) smart(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	at, err := hourRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, _ := IdentityFrom(r.Context())
	result, err := h.Recommendations.Smart(r.Context(), user.UserID, limit, at)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) feedback(w http.ResponseWriter, r *http.Request) {
	var fb domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, _ := IdentityFrom(r.Context())
	fb.UserID = user.UserID
	if err := h.Recommendations.RecordFeedback(r.Context(), fb); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Feedback recorded successfully")
}
