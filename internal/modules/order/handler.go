package order

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"github.com/tmasupe/kitchenware-backend/internal/platform/web"
	"go.uber.org/zap"
)

// Handler exposes the order HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		web.RespondError(w, h.log, apperr.Validation("invalid order payload: %v", err))
		return
	}
	o, err := h.service.CreateOrder(r.Context(), input)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"id":      o.ID,
	})
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var input OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		web.RespondError(w, h.log, apperr.Validation("invalid order payload: %v", err))
		return
	}
	if _, err := h.service.UpdateOrder(r.Context(), chi.URLParam(r, "id"), input); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Order updated successfully"})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
