package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/e-dsin/maturity-sub005/internal/service"
	"github.com/e-dsin/maturity-sub005/internal/transport/rest/middleware"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// UpdateRoleRequest is the request body for a role change.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// List handles GET /v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	users, err := h.userSvc.List(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// UpdateRole handles PUT /v1/users/{userId}/role.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userSvc.UpdateRole(r.Context(), p, mux.Vars(r)["userId"], req.Role); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
