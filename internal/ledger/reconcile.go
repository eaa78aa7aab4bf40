package ledger

import (
	"context"
	"strings"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/store"
)

// Drift describes a product whose stored quantity disagrees with the
// quantity replayed from its movement history.
type Drift struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stored    int64  `json:"stored"`
	Replayed  int64  `json:"replayed"`
}

// Reconcile recomputes every product's quantity as its initial recorded
// quantity plus the sum of its movement diffs, reading straight from storage
// rather than the projections, and reports any mismatch. It never mutates:
// a crash between the movement and product writes leaves drift behind, and
// flagging it beats silently trusting the stored value.
func (e *Engine) Reconcile(ctx context.Context) ([]Drift, error) {
	products, err := store.ListProducts(ctx, e.db)
	if err != nil {
		return nil, err
	}
	movements, err := store.ListMovements(ctx, e.db)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int64, len(products))
	for _, m := range movements {
		sums[m.ProductID] += m.Diff
	}

	var drifts []Drift
	for _, p := range products {
		replayed := p.InitialQuantity + sums[p.ID]
		if replayed != p.Quantity {
			drifts = append(drifts, Drift{
				ProductID: p.ID,
				Name:      p.Name,
				Stored:    p.Quantity,
				Replayed:  replayed,
			})
		}
	}
	return drifts, nil
}

// CheckConsistency runs Reconcile and converts a non-empty drift report into
// an error wrapping errs.ErrInconsistent.
func (e *Engine) CheckConsistency(ctx context.Context) error {
	drifts, err := e.Reconcile(ctx)
	if err != nil {
		return err
	}
	if len(drifts) == 0 {
		return nil
	}
	ids := make([]string, len(drifts))
	for i, d := range drifts {
		ids[i] = d.ProductID
	}
	return errs.Inconsistent("%d product(s) drifted from movement history: %s",
		len(drifts), strings.Join(ids, ", "))
}
