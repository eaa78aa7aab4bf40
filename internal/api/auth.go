package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/onnuri/inventory/internal/auth"
	"github.com/onnuri/inventory/internal/errs"
	"github.com/onnuri/inventory/internal/session"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Sessions *session.Engine
	Secret   string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	identity, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrNotFound):
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case errors.Is(err, errs.ErrValidation):
		slog.Warn("login refused", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, err.Error())
		return
	default:
		writeError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.Secret, identity.ID, identity.Name, identity.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "username", req.Username, "role", identity.Role)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: *identity})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout()
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}
