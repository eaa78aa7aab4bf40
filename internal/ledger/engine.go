// Package ledger holds the core business logic: it validates and applies
// stock-affecting operations, writes movement and product records, and owns
// the in-memory projections that collaborators read.
package ledger

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/store"
)

// Engine owns the durable collections' in-memory projections and is the sole
// writer of product quantities and movement records. Projections are replaced
// wholesale after each successful mutation, so readers always see either the
// pre- or post-mutation snapshot, never an intermediate one.
type Engine struct {
	db *sql.DB

	mu        sync.RWMutex
	products  []model.Product  // sorted newest-modified first
	movements []model.Movement // sorted newest first
	users     []model.User
}

// New creates a ledger engine over the given database. Call Refresh before
// first use.
func New(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Refresh reloads all three projections from storage, replacing them
// wholesale. Must be called after any externally-triggered import, since the
// cached projections are stale from that point on.
func (e *Engine) Refresh(ctx context.Context) error {
	products, err := store.ListProducts(ctx, e.db)
	if err != nil {
		return err
	}
	movements, err := store.ListMovements(ctx, e.db)
	if err != nil {
		return err
	}
	users, err := store.ListUsers(ctx, e.db)
	if err != nil {
		return err
	}

	sortProducts(products)
	sortMovements(movements)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.products = products
	e.movements = movements
	e.users = users
	return nil
}

// Products returns a copy of the product projection, newest-modified first.
func (e *Engine) Products() []model.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.Product, len(e.products))
	copy(out, e.products)
	return out
}

// GetProduct returns the product with the given id from the projection,
// or nil if absent.
func (e *Engine) GetProduct(id string) *model.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := range e.products {
		if e.products[i].ID == id {
			p := e.products[i]
			return &p
		}
	}
	return nil
}

// Movements returns a copy of the movement projection, newest first.
func (e *Engine) Movements() []model.Movement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.Movement, len(e.movements))
	copy(out, e.movements)
	return out
}

// MovementsFor returns the movements referencing the given product,
// newest first.
func (e *Engine) MovementsFor(productID string) []model.Movement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []model.Movement
	for _, m := range e.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// Users returns a copy of the user projection.
func (e *Engine) Users() []model.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.User, len(e.users))
	copy(out, e.users)
	return out
}

// FindUser looks an account up by exact (case-sensitive) username, reading
// straight from storage so a login sees accounts written since the last
// refresh. Returns nil when no such account exists.
func (e *Engine) FindUser(ctx context.Context, username string) (*model.User, error) {
	return store.GetUserByUsername(ctx, e.db, username)
}

// PutUser persists a user record and republishes the user projection.
// Existing ids are replaced, new ids appended.
func (e *Engine) PutUser(ctx context.Context, u *model.User) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.putUserLocked(ctx, u)
}

func (e *Engine) putUserLocked(ctx context.Context, u *model.User) error {
	if err := store.PutUser(ctx, e.db, u); err != nil {
		return err
	}
	users := make([]model.User, len(e.users))
	copy(users, e.users)
	replaced := false
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *u)
	}
	e.users = users
	return nil
}

func sortProducts(products []model.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].UpdatedAt.After(products[j].UpdatedAt)
	})
}

func sortMovements(movements []model.Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
}
