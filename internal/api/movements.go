package api

import (
	"net/http"

	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
)

// MovementsHandler handles stock movement endpoints.
type MovementsHandler struct {
	Ledger *ledger.Engine
}

type recordMovementRequest struct {
	ProductID string `json:"product_id"`
	Kind      string `json:"kind"`
	Amount    int64  `json:"amount"`
	Memo      string `json:"memo,omitempty"`
}

// Create handles POST /api/movements.
func (h *MovementsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordMovementRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProductID == "" {
		jsonError(w, http.StatusBadRequest, "product_id required")
		return
	}

	movement, err := h.Ledger.RecordMovement(r.Context(), req.ProductID, req.Kind, req.Amount, req.Memo)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, movement)
}

// List handles GET /api/movements, optionally filtered by ?product_id=.
func (h *MovementsHandler) List(w http.ResponseWriter, r *http.Request) {
	var movements []model.Movement
	if productID := r.URL.Query().Get("product_id"); productID != "" {
		movements = h.Ledger.MovementsFor(productID)
	} else {
		movements = h.Ledger.Movements()
	}
	if movements == nil {
		movements = []model.Movement{}
	}
	jsonResponse(w, http.StatusOK, movements)
}
