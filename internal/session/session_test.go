package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onnuri/inventory/internal/auth"
	"github.com/onnuri/inventory/internal/db"
	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/store"
)

func newTestEngines(t *testing.T) (*ledger.Engine, *Engine) {
	t.Helper()
	database := db.NewTestDB(t)
	l := ledger.New(database)
	ctx := context.Background()
	if err := l.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := l.EnsureAdmin(ctx); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	return l, New(l)
}

func TestLoginSuccess(t *testing.T) {
	_, sessions := newTestEngines(t)
	ctx := context.Background()

	identity, err := sessions.Login(ctx, ledger.DefaultAdminUsername, ledger.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.Role != model.RoleAdmin {
		t.Errorf("expected admin role, got %q", identity.Role)
	}
	if identity.Name == "" || identity.ID == "" {
		t.Errorf("incomplete identity projection: %+v", identity)
	}

	current := sessions.Current()
	if current == nil || current.ID != identity.ID {
		t.Errorf("expected held identity %+v, got %+v", identity, current)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	_, sessions := newTestEngines(t)

	_, err := sessions.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if sessions.Current() != nil {
		t.Error("failed login must leave the session anonymous")
	}
}

func TestLoginBadPassword(t *testing.T) {
	_, sessions := newTestEngines(t)

	_, err := sessions.Login(context.Background(), ledger.DefaultAdminUsername, "wrong-password")
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if sessions.Current() != nil {
		t.Error("failed login must leave the session anonymous")
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	_, sessions := newTestEngines(t)
	ctx := context.Background()

	user, err := sessions.AddUser(ctx, "worker", "Worker", "password1", model.RoleStaff)
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if err := sessions.ToggleActive(ctx, user.ID, "someone-else"); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}

	_, err = sessions.Login(ctx, "worker", "password1")
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error for inactive account, got %v", err)
	}
}

// Login looks usernames up in storage, not the in-memory projections, so an
// account written since the last refresh can authenticate immediately.
func TestLoginReadsStorageDirectly(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	l := ledger.New(database)
	if err := l.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	sessions := New(l)

	hash, err := auth.HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := store.PutUser(ctx, database, &model.User{
		ID:           "u-fresh",
		Username:     "fresh",
		Name:         "Fresh Worker",
		Role:         model.RoleStaff,
		Active:       true,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}); err != nil {
		t.Fatalf("PutUser: %v", err)
	}

	identity, err := sessions.Login(ctx, "fresh", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.ID != "u-fresh" {
		t.Errorf("unexpected identity: %+v", identity)
	}

	// The lookup is exact: a different-cased username is a different account.
	if _, err := sessions.Login(ctx, "Fresh", "password1"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected not-found for different-cased username, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	_, sessions := newTestEngines(t)

	sessions.Login(context.Background(), ledger.DefaultAdminUsername, ledger.DefaultAdminPassword)
	sessions.Logout()
	if sessions.Current() != nil {
		t.Error("expected anonymous session after logout")
	}
	// Logout is unconditional; a second call is fine.
	sessions.Logout()
}

func TestAddUserDuplicateUsername(t *testing.T) {
	_, sessions := newTestEngines(t)
	ctx := context.Background()

	if _, err := sessions.AddUser(ctx, "worker", "Worker", "password1", model.RoleStaff); err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	_, err := sessions.AddUser(ctx, "worker", "Other Worker", "password2", model.RoleStaff)
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error for duplicate username, got %v", err)
	}

	// Different case is a different username: uniqueness is case-sensitive
	// by policy.
	if _, err := sessions.AddUser(ctx, "Worker", "Cased Worker", "password3", model.RoleStaff); err != nil {
		t.Errorf("expected different-case username to succeed, got %v", err)
	}
}

func TestAddUserValidation(t *testing.T) {
	_, sessions := newTestEngines(t)
	ctx := context.Background()

	if _, err := sessions.AddUser(ctx, "", "Nameless", "password1", model.RoleStaff); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error for empty username, got %v", err)
	}
	if _, err := sessions.AddUser(ctx, "short", "Shorty", "1234567", model.RoleStaff); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error for short password, got %v", err)
	}
	if _, err := sessions.AddUser(ctx, "roleless", "Roleless", "password1", "owner"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("expected validation error for unknown role, got %v", err)
	}
}

func TestToggleActiveFlips(t *testing.T) {
	ledgerEngine, sessions := newTestEngines(t)
	ctx := context.Background()

	user, _ := sessions.AddUser(ctx, "worker", "Worker", "password1", model.RoleStaff)

	if err := sessions.ToggleActive(ctx, user.ID, "caller"); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if findUser(ledgerEngine, user.ID).Active {
		t.Error("expected user to be inactive after toggle")
	}

	if err := sessions.ToggleActive(ctx, user.ID, "caller"); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !findUser(ledgerEngine, user.ID).Active {
		t.Error("expected user to be active after second toggle")
	}
}

func TestToggleActiveNoops(t *testing.T) {
	ledgerEngine, sessions := newTestEngines(t)
	ctx := context.Background()

	var admin model.User
	for _, u := range ledgerEngine.Users() {
		if u.Role == model.RoleAdmin {
			admin = u
		}
	}

	// Administrators cannot be deactivated.
	if err := sessions.ToggleActive(ctx, admin.ID, "caller"); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !findUser(ledgerEngine, admin.ID).Active {
		t.Error("admin must stay active")
	}

	// Nor can the caller's own account.
	user, _ := sessions.AddUser(ctx, "worker", "Worker", "password1", model.RoleStaff)
	if err := sessions.ToggleActive(ctx, user.ID, user.ID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !findUser(ledgerEngine, user.ID).Active {
		t.Error("self-toggle must be a no-op")
	}

	// Unknown targets are silently ignored.
	if err := sessions.ToggleActive(ctx, "no-such-user", "caller"); err != nil {
		t.Errorf("expected no error for unknown target, got %v", err)
	}
}

func findUser(l *ledger.Engine, id string) *model.User {
	for _, u := range l.Users() {
		if u.ID == id {
			c := u
			return &c
		}
	}
	return nil
}
