package customer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"github.com/tmasupe/kitchenware-backend/internal/platform/web"
	"go.uber.org/zap"
)

// Handler exposes the customer HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/{id}", h.getCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		web.RespondError(w, h.log, apperr.Validation("invalid customer payload: %v", err))
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), input)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusCreated, c)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var input CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		web.RespondError(w, h.log, apperr.Validation("invalid customer payload: %v", err))
		return
	}
	c, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
