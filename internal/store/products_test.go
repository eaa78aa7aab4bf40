package store

import (
	"context"
	"testing"
	"time"

	"github.com/onnuri/inventory/internal/db"
	"github.com/onnuri/inventory/internal/model"
)

func testProduct(id string) *model.Product {
	now := time.Now().Truncate(time.Second)
	return &model.Product{
		ID:              id,
		Name:            "Milk",
		Manufacturer:    "Dairy Co",
		Quantity:        5,
		InitialQuantity: 5,
		Unit:            model.UnitPack,
		Expiry:          model.NewDate(2026, time.February, 1),
		Zone:            model.ZoneChilled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPutAndGetProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p := testProduct("p-1")
	if err := PutProduct(ctx, database, p); err != nil {
		t.Fatalf("PutProduct: %v", err)
	}

	got, err := GetProduct(ctx, database, "p-1")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got == nil {
		t.Fatal("expected product, got nil")
	}
	if got.Name != "Milk" || got.Quantity != 5 || got.Zone != model.ZoneChilled {
		t.Errorf("unexpected product: %+v", got)
	}
	if got.Expiry.String() != "2026-02-01" {
		t.Errorf("expected expiry 2026-02-01, got %s", got.Expiry)
	}
}

func TestGetProductMissing(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetProduct(context.Background(), database, "nope")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got != nil {
		t.Error("expected nil for missing product")
	}
}

func TestPutProductReplaces(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p := testProduct("p-1")
	PutProduct(ctx, database, p)

	p.Quantity = 12
	if err := PutProduct(ctx, database, p); err != nil {
		t.Fatalf("PutProduct replace: %v", err)
	}

	got, _ := GetProduct(ctx, database, "p-1")
	if got.Quantity != 12 {
		t.Errorf("expected quantity 12 after replace, got %d", got.Quantity)
	}

	products, _ := ListProducts(ctx, database)
	if len(products) != 1 {
		t.Errorf("expected 1 product after replace, got %d", len(products))
	}
}

func TestDeleteProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutProduct(ctx, database, testProduct("p-1"))
	if err := DeleteProduct(ctx, database, "p-1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	got, _ := GetProduct(ctx, database, "p-1")
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestClearProducts(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutProduct(ctx, database, testProduct("p-1"))
	PutProduct(ctx, database, testProduct("p-2"))

	if err := Clear(ctx, database, CollectionProducts); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	products, _ := ListProducts(ctx, database)
	if len(products) != 0 {
		t.Errorf("expected 0 products after clear, got %d", len(products))
	}
}
