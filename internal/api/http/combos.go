package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hoaithan123/du-an-smart-food/internal/service"
)

func (h *Handler) quoteCombo(w http.ResponseWriter, r *http.Request) {
	var req service.ComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	bundle, err := h.Combos.Quote(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (h *Handler) comboSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.Combos.Suggestions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
