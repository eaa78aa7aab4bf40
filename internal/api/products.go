package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/onnuri/inventory/internal/export"
	"github.com/onnuri/inventory/internal/imaging"
	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
)

// ProductsHandler handles product endpoints.
type ProductsHandler struct {
	Ledger *ledger.Engine
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.Ledger.Products()
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.Ledger.AddProduct(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, product)
}

// Get handles GET /api/products/{id}. The response carries the product and
// its movement history, newest first.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	product := h.Ledger.GetProduct(id)
	if product == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	history := h.Ledger.MovementsFor(id)
	if history == nil {
		history = []model.Movement{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"product":        product,
		"history":        history,
		"days_to_expiry": model.DaysToExpiry(product.Expiry, time.Now()),
	})
}

// UploadThumbnail handles PUT /api/products/{id}/thumbnail. The request body
// is the raw image; the stored reference is a compact JPEG data URL.
func (h *ProductsHandler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	thumb, err := imaging.Thumbnail(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.Ledger.SetThumbnail(r.Context(), id, thumb)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// ExportCSV handles GET /api/products/export.
func (h *ProductsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="products-%s.csv"`, now.Format("2006-01-02")))
	if err := export.ProductsCSV(w, h.Ledger.Products(), now); err != nil {
		// Headers are already sent; logging is all that's left.
		slog.Error("writing product export", "error", err)
	}
}
