package api

import (
	"net/http"
	"time"

	"github.com/onnuri/inventory/internal/ledger"
	"github.com/onnuri/inventory/internal/model"
	"github.com/onnuri/inventory/internal/session"
)

// UsersHandler handles account management endpoints (admin only).
type UsersHandler struct {
	Ledger   *ledger.Engine
	Sessions *session.Engine
}

// userView is the API projection of a user; the credential digest never
// leaves the users collection.
type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func viewOf(u model.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.Ledger.Users()
	views := make([]userView, len(users))
	for i, u := range users {
		views[i] = viewOf(u)
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Sessions.AddUser(r.Context(), req.Username, req.Name, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, viewOf(*user))
}

// Toggle handles POST /api/users/{id}/toggle. Toggling an administrator or
// the caller's own account is silently ignored.
func (h *UsersHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Sessions.ToggleActive(r.Context(), r.PathValue("id"), claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "ok"})
}
