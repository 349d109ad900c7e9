package reference

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"github.com/tmasupe/kitchenware-backend/internal/platform/web"
	"go.uber.org/zap"
)

// Handler exposes the reference-data endpoints the product forms are
// populated from.
type Handler struct {
	repo Repository
	log  *zap.Logger
}

func NewHandler(repo Repository, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/categories", h.lookup(h.repo.ListCategories))
	r.Get("/types", h.lookup(h.repo.ListTypes))
	r.Get("/colors", h.lookup(h.repo.ListColors))
	r.Get("/warehouses", h.lookup(h.repo.ListWarehouses))
	r.Get("/mo-numbers", h.moNumbers)
}

func (h *Handler) lookup(list func(context.Context) ([]*Lookup, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lookups, err := list(r.Context())
		if err != nil {
			web.RespondError(w, h.log, apperr.Internal("failed to fetch reference data", err))
			return
		}
		if lookups == nil {
			lookups = []*Lookup{}
		}
		web.Respond(w, http.StatusOK, lookups)
	}
}

func (h *Handler) moNumbers(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.repo.ListMONumbers(r.Context())
	if err != nil {
		web.RespondError(w, h.log, apperr.Internal("failed to fetch reference data", err))
		return
	}
	if numbers == nil {
		numbers = []string{}
	}
	web.Respond(w, http.StatusOK, numbers)
}
