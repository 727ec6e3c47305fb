package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
)

type orderSummary struct {
	ID          int                `json:"id"`
	OrderNumber string             `json:"order_number"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      domain.OrderStatus `json:"status"`
}

type createOrderResponse struct {
	Message           string       `json:"message"`
	Order             orderSummary `json:"order"`
	MembershipUpdated bool         `json:"membershipUpdated"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type statusUpdateResponse struct {
	Message               string       `json:"message"`
	MembershipTierUpdated bool         `json:"membershipTierUpdated"`
	NewTier               *domain.Tier `json:"newTier"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, _ := IdentityFrom(r.Context())
	result, err := h.Orders.Create(r.Context(), user.UserID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createOrderResponse{
		Message: "Order created successfully",
		Order: orderSummary{
			ID:          result.Order.ID,
			OrderNumber: result.Order.OrderNumber,
			TotalAmount: result.Order.TotalAmount,
			Status:      result.Order.Status,
		},
		MembershipUpdated: result.MembershipUpdated,
	})
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pageSize, err := queryInt(r, "pageSize", 10)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if pageSize > maxLimit {
		pageSize = maxLimit
	}
	user, _ := IdentityFrom(r.Context())
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	result, err := h.Orders.ListMine(r.Context(), user.UserID, status, page, pageSize)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, _ := IdentityFrom(r.Context())
	order, err := h.Orders.Get(r.Context(), user.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, _ := IdentityFrom(r.Context())
	qr, err := h.Orders.QRCode(r.Context(), user.UserID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(qr) == 0 {
		writeMessage(w, http.StatusNotFound, "QR code not available")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.Orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusUpdateResponse{
		Message:               "Order status updated successfully",
		MembershipTierUpdated: result.MembershipTierUpdated,
		NewTier:               result.NewTier,
	})
}
