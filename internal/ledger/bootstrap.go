package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/onnuri/inventory/internal/auth"
	"github.com/onnuri/inventory/internal/model"
)

// Default administrator credentials, created only when no user exists.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin1234"
	DefaultAdminName     = "System Administrator"
)

// EnsureAdmin seeds a default administrator when the users projection is
// empty, so the application is always reachable — including after restoring
// a snapshot that contained no users. Idempotent: with any user present it
// does nothing.
func (e *Engine) EnsureAdmin(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.users) > 0 {
		return nil
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.NewString(),
		Username:     DefaultAdminUsername,
		Name:         DefaultAdminName,
		Role:         model.RoleAdmin,
		Active:       true,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := e.putUserLocked(ctx, admin); err != nil {
		return err
	}

	slog.Warn("created default administrator, change its password",
		"username", DefaultAdminUsername)
	return nil
}
