package model

import (
	"time"

	"github.com/onnuri/inventory/internal/errs"
)

// Product represents a perishable stock-keeping unit.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Quantity     int64  `json:"quantity"`
	// InitialQuantity is the quantity recorded at registration. It never
	// changes afterwards; stored quantity must always equal it plus the sum
	// of all movement diffs for this product.
	InitialQuantity int64     `json:"initial_quantity"`
	Unit            string    `json:"unit"`
	Spec            string    `json:"spec,omitempty"`
	Expiry          Date      `json:"expiry"`
	Zone            string    `json:"zone"`
	Thumb           string    `json:"thumb,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Units of measure.
const (
	UnitPiece = "piece"
	UnitBag   = "bag"
	UnitBox   = "box"
	UnitPack  = "pack"
)

// Storage zones.
const (
	ZoneFrozen  = "frozen"
	ZoneChilled = "chilled"
	ZoneAmbient = "ambient"
)

// ValidUnit reports whether unit is a known unit of measure.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitPiece, UnitBag, UnitBox, UnitPack:
		return true
	}
	return false
}

// ValidZone reports whether zone is a known storage zone.
func ValidZone(zone string) bool {
	switch zone {
	case ZoneFrozen, ZoneChilled, ZoneAmbient:
		return true
	}
	return false
}

// ProductInput holds the caller-supplied fields for product registration.
type ProductInput struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Quantity     int64  `json:"quantity"`
	Unit         string `json:"unit"`
	Spec         string `json:"spec,omitempty"`
	Expiry       Date   `json:"expiry"`
	Zone         string `json:"zone"`
	Thumb        string `json:"thumb,omitempty"`
}

// Validate checks the registration rules: name and expiry are required,
// quantity must not be negative, and unit/zone must be known values.
func (in ProductInput) Validate() error {
	if in.Name == "" {
		return errs.Validation("product name required")
	}
	if in.Expiry.IsZero() {
		return errs.Validation("expiry date required")
	}
	if in.Quantity < 0 {
		return errs.Validation("quantity must not be negative")
	}
	if !ValidUnit(in.Unit) {
		return errs.Validation("unknown unit %q", in.Unit)
	}
	if !ValidZone(in.Zone) {
		return errs.Validation("unknown zone %q", in.Zone)
	}
	return nil
}
