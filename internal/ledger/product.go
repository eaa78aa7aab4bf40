package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/store"
)

// AddProduct registers a new product with its initial quantity.
// The initial quantity is recorded on the product itself so that the stored
// quantity can later be verified against the replayed movement history.
func (e *Engine) AddProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Manufacturer:    in.Manufacturer,
		Quantity:        in.Quantity,
		InitialQuantity: in.Quantity,
		Unit:            in.Unit,
		Spec:            in.Spec,
		Expiry:          in.Expiry,
		Zone:            in.Zone,
		Thumb:           in.Thumb,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := store.PutProduct(ctx, e.db, product); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(e.products)+1)
	products = append(products, *product)
	products = append(products, e.products...)
	e.products = products

	return product, nil
}

// SetThumbnail attaches a thumbnail reference to a product.
func (e *Engine) SetThumbnail(ctx context.Context, productID, thumb string) (*model.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i := range e.products {
		if e.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errs.NotFound("product %s", productID)
	}

	updated := e.products[idx]
	updated.Thumb = thumb
	updated.UpdatedAt = time.Now()

	if err := store.PutProduct(ctx, e.db, &updated); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(e.products))
	copy(products, e.products)
	products[idx] = updated
	sortProducts(products)
	e.products = products

	p := updated
	return &p, nil
}
