package api

import (
	"database/sql"
	"net/http"

	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/session"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, l *ledger.Engine, s *session.Engine, secret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Sessions: s, Secret: secret}
	productsHandler := &ProductsHandler{Ledger: l}
	movementsHandler := &MovementsHandler{Ledger: l}
	usersHandler := &UsersHandler{Ledger: l, Sessions: s}
	snapshotHandler := &SnapshotHandler{DB: db, Ledger: l}

	authMW := AuthMiddleware(secret)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Products (any authenticated role).
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", authMW(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("GET /api/products/export", authMW(http.HandlerFunc(productsHandler.ExportCSV)))
	mux.Handle("GET /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}/thumbnail", authMW(http.HandlerFunc(productsHandler.UploadThumbnail)))

	// Movements (any authenticated role).
	mux.Handle("GET /api/movements", authMW(http.HandlerFunc(movementsHandler.List)))
	mux.Handle("POST /api/movements", authMW(http.HandlerFunc(movementsHandler.Create)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("POST /api/users/{id}/toggle", authMW(requireAdmin(http.HandlerFunc(usersHandler.Toggle))))

	// Backup, restore and maintenance (admin only).
	mux.Handle("GET /api/snapshot", authMW(requireAdmin(http.HandlerFunc(snapshotHandler.Export))))
	mux.Handle("POST /api/snapshot", authMW(requireAdmin(http.HandlerFunc(snapshotHandler.Import))))
	mux.Handle("POST /api/reconcile", authMW(requireAdmin(http.HandlerFunc(snapshotHandler.Reconcile))))

	return mux
}
