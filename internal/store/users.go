package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/model"
)

// PutUser inserts or replaces a user record.
func PutUser(ctx context.Context, db *sql.DB, u *model.User) error {
	return putDoc(ctx, db, CollectionUsers, u.ID, u)
}

// GetUser returns a user by ID, or nil if absent.
func GetUser(ctx context.Context, db *sql.DB, id string) (*model.User, error) {
	u := &model.User{}
	found, err := getDoc(ctx, db, CollectionUsers, id, u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return u, nil
}

// GetUserByUsername returns the user with the exact (case-sensitive)
// username, or nil if absent.
func GetUserByUsername(ctx context.Context, db *sql.DB, username string) (*model.User, error) {
	var doc string
	err := db.QueryRowContext(ctx,
		`SELECT doc FROM users WHERE json_extract(doc, '$.username') = ?`,
		username,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errs.StorageIO("reading user record", err)
	}
	u := &model.User{}
	if err := json.Unmarshal([]byte(doc), u); err != nil {
		return nil, errs.StorageIO("decoding user record", err)
	}
	// SQLite string comparison is case-sensitive by default, but guard the
	// uniqueness policy here rather than trusting collation settings.
	if u.Username != username {
		return nil, nil
	}
	return u, nil
}

// ListUsers returns every user record.
func ListUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
	var users []model.User
	err := forEachDoc(ctx, db, CollectionUsers, func(doc []byte) error {
		var u model.User
		if err := json.Unmarshal(doc, &u); err != nil {
			return errs.StorageIO("decoding user record", err)
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user record. Accounts are deactivated rather than
// deleted in normal operation; this completes the per-collection adapter
// contract.
func DeleteUser(ctx context.Context, db *sql.DB, id string) error {
	return deleteDoc(ctx, db, CollectionUsers, id)
}
