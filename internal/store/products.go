package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/model"
)

// PutProduct inserts or replaces a product record.
func PutProduct(ctx context.Context, db *sql.DB, p *model.Product) error {
	return putDoc(ctx, db, CollectionProducts, p.ID, p)
}

// GetProduct returns a product by ID, or nil if absent.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	p := &model.Product{}
	found, err := getDoc(ctx, db, CollectionProducts, id, p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return p, nil
}

// ListProducts returns every product record.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	var products []model.Product
	err := forEachDoc(ctx, db, CollectionProducts, func(doc []byte) error {
		var p model.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return errs.StorageIO("decoding product record", err)
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes a product record.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	return deleteDoc(ctx, db, CollectionProducts, id)
}
