package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"github.com/tmasupe/kitchenware-backend/internal/platform/web"
	"go.uber.org/zap"
)

const maxPhotoFiles = 4

// Handler exposes the product HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := ListRequest{
		Page:     queryInt(r, "_page", 1),
		Limit:    queryInt(r, "_limit", 5),
		NameLike: r.URL.Query().Get("product_name_like"),
		TypeID:   r.URL.Query().Get("type_id"),
		ColorID:  r.URL.Query().Get("color_id"),
	}

	result, err := h.service.ListProducts(r.Context(), req)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	w.Header().Set("x-total-count", strconv.Itoa(result.TotalCount))
	web.Respond(w, http.StatusOK, result)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	input, photos, closeFiles, err := parseProductForm(r)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	defer closeFiles()

	if _, err := h.service.CreateProduct(r.Context(), input, photos); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusCreated, map[string]string{"message": "Product created successfully"})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	input, photos, closeFiles, err := parseProductForm(r)
	if err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	defer closeFiles()

	if err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), input, photos); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.RespondError(w, h.log, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ── form parsing ─────────────────────────────────────────────────────────────

// parseProductForm reads the multipart product payload: scalar fields plus up
// to four files under the "photos" field. The returned closer releases the
// opened file handles.
func parseProductForm(r *http.Request) (ProductInput, []Upload, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return ProductInput{}, nil, noop, apperr.Validation("invalid multipart form: %v", err)
	}

	input := ProductInput{
		ProductName:   r.FormValue("product_name"),
		TypeID:        r.FormValue("type_id"),
		ColorID:       r.FormValue("color_id"),
		CategoryID:    r.FormValue("category_id"),
		Size:          r.FormValue("size"),
		MONumber:      r.FormValue("mo_number"),
		MicrowaveSafe: formBool(r, "microwave_safe"),
		Description:   r.FormValue("description"),
		IsActive:      formBool(r, "is_active"),
		Price:         r.FormValue("price"),
		WarehouseID:   r.FormValue("warehouse_id"),
	}

	var err error
	if input.Quantity, err = formInt(r, "quantity"); err != nil {
		return ProductInput{}, nil, noop, err
	}
	if input.ReorderLevel, err = formInt(r, "reorder_level"); err != nil {
		return ProductInput{}, nil, noop, err
	}

	headers := r.MultipartForm.File["photos"]
	if len(headers) > maxPhotoFiles {
		return ProductInput{}, nil, noop, apperr.Validation("at most %d photos allowed", maxPhotoFiles)
	}

	var photos []Upload
	var opened []interface{ Close() error }
	closeFiles := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeFiles()
			return ProductInput{}, nil, noop, apperr.Validation("unreadable photo %q", fh.Filename)
		}
		opened = append(opened, f)
		photos = append(photos, Upload{Filename: fh.Filename, File: f})
	}
	return input, photos, closeFiles, nil
}

// formBool accepts the "1"/"true" flags form clients send.
func formBool(r *http.Request, key string) bool {
	v := r.FormValue(key)
	return v == "1" || v == "true"
}

func formInt(r *http.Request, key string) (int, error) {
	v := r.FormValue(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Validation("invalid %s %q", key, v)
	}
	return n, nil
}

// queryInt parses a query parameter, falling back on absence or garbage.
// Out-of-range values are not clamped here; the service rejects them.
func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
