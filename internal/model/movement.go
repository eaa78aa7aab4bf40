package model

import "time"

// Movement is an immutable ledger entry recording one stock-quantity change.
// Once written it is never mutated or deleted.
type Movement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Kind      string    `json:"kind"`
	Diff      int64     `json:"diff"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Movement kinds.
const (
	KindInbound    = "inbound"
	KindOutbound   = "outbound"
	KindAdjustment = "adjustment"
)

// ValidKind reports whether kind is a known movement kind.
func ValidKind(kind string) bool {
	switch kind {
	case KindInbound, KindOutbound, KindAdjustment:
		return true
	}
	return false
}
