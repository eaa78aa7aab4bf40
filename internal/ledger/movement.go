package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/store"
)

// RecordMovement applies a stock-affecting operation to a product.
//
// The signed delta is derived from the kind: inbound adds amount, outbound
// subtracts it, and adjustment treats amount as the new absolute target
// quantity (diff = amount − current). Negative deltas are expressed via the
// kind, never via a negative amount.
//
// The movement is written before the updated product: the store offers no
// cross-collection atomicity, and a product is always re-derivable from the
// full movement history while a lost movement is not. A crash between the two
// writes is detectable afterwards with Reconcile.
func (e *Engine) RecordMovement(ctx context.Context, productID, kind string, amount int64, memo string) (*model.Movement, error) {
	if !model.ValidKind(kind) {
		return nil, errs.Validation("unknown movement kind %q", kind)
	}
	if amount < 0 {
		return nil, errs.Validation("amount must not be negative")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var product *model.Product
	idx := -1
	for i := range e.products {
		if e.products[i].ID == productID {
			p := e.products[i]
			product = &p
			idx = i
			break
		}
	}
	if product == nil {
		return nil, errs.NotFound("product %s", productID)
	}

	var diff int64
	switch kind {
	case model.KindInbound:
		diff = amount
	case model.KindOutbound:
		diff = -amount
	case model.KindAdjustment:
		diff = amount - product.Quantity
	}

	// Every kind is checked, even adjustment, whose formula cannot go
	// negative once negative amounts are rejected above.
	if product.Quantity+diff < 0 {
		return nil, errs.Validation("insufficient stock: %d %s would leave %d",
			amount, kind, product.Quantity+diff)
	}

	now := time.Now()
	movement := &model.Movement{
		ID:        uuid.NewString(),
		ProductID: productID,
		Kind:      kind,
		Diff:      diff,
		Memo:      memo,
		CreatedAt: now,
	}

	updated := *product
	updated.Quantity += diff
	updated.UpdatedAt = now

	// Movement first, then product (see ordering note above).
	if err := store.PutMovement(ctx, e.db, movement); err != nil {
		return nil, err
	}
	if err := store.PutProduct(ctx, e.db, &updated); err != nil {
		return nil, err
	}

	// Republish: movement prepended, product list re-sorted by update time.
	movements := make([]model.Movement, 0, len(e.movements)+1)
	movements = append(movements, *movement)
	movements = append(movements, e.movements...)
	e.movements = movements

	products := make([]model.Product, len(e.products))
	copy(products, e.products)
	products[idx] = updated
	sortProducts(products)
	e.products = products

	return movement, nil
}
