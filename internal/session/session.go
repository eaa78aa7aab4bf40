// Package session authenticates username/credential pairs against the users
// collection and gates role-restricted operations.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/onnuri/inventory/internal/auth"
	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
)

// Identity is the minimal authenticated-identity projection. It is the only
// session state that may leave the users collection; credential digests and
// full user records never do.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Engine manages the authenticated-identity lifecycle over the ledger's
// users collection.
type Engine struct {
	ledger *ledger.Engine

	mu      sync.Mutex
	current *Identity
}

// New creates a session engine bound to the given ledger.
func New(l *ledger.Engine) *Engine {
	return &Engine{ledger: l}
}

// Login authenticates a username/credential pair. On success it holds the
// identity projection and refreshes the ledger's projections; on failure the
// session stays anonymous.
func (e *Engine) Login(ctx context.Context, username, password string) (*Identity, error) {
	candidate, err := e.ledger.FindUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errs.NotFound("account %q", username)
	}
	if !candidate.Active {
		return nil, errs.Validation("account %q is disabled", username)
	}
	if !auth.CheckPassword(candidate.PasswordHash, password) {
		return nil, errs.Validation("invalid credentials")
	}

	if err := e.ledger.Refresh(ctx); err != nil {
		return nil, err
	}

	identity := &Identity{ID: candidate.ID, Name: candidate.Name, Role: candidate.Role}
	e.mu.Lock()
	e.current = identity
	e.mu.Unlock()
	return identity, nil
}

// Logout unconditionally drops the held identity.
func (e *Engine) Logout() {
	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()
}

// Current returns the held identity, or nil when anonymous.
func (e *Engine) Current() *Identity {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil
	}
	id := *e.current
	return &id
}

// AddUser registers a new account. Usernames are unique case-sensitively:
// registering "Alice" next to "alice" succeeds, an exact match fails.
func (e *Engine) AddUser(ctx context.Context, username, name, password, role string) (*model.User, error) {
	if username == "" || name == "" {
		return nil, errs.Validation("username and name required")
	}
	if !model.ValidRole(role) {
		return nil, errs.Validation("unknown role %q", role)
	}
	if err := model.ValidatePassword(password); err != nil {
		return nil, errs.Validation("%v", err)
	}
	existing, err := e.ledger.FindUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Validation("username %q already exists", username)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		Role:         role,
		Active:       true,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := e.ledger.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleActive flips an account's active flag. Administrator accounts, the
// caller's own account and unknown ids are silently ignored rather than
// rejected.
func (e *Engine) ToggleActive(ctx context.Context, targetID, callerID string) error {
	var target *model.User
	for _, u := range e.ledger.Users() {
		if u.ID == targetID {
			c := u
			target = &c
			break
		}
	}
	if target == nil || target.Role == model.RoleAdmin || target.ID == callerID {
		return nil
	}

	target.Active = !target.Active
	return e.ledger.PutUser(ctx, target)
}

// Allowed reports whether role may perform an operation restricted to the
// given role set.
func Allowed(role string, required ...string) bool {
	return model.RoleAllowed(role, required...)
}
