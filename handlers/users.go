// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/userbook/middleware"
	"github.com/danielhkuo/userbook/models"
)

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// ListUsers handles GET /api/users
// Returns all users, newest first
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, r, "list users", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListUsersResponse{
		Users: users,
	})
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "get user", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// CreateUser handles POST /api/users
// Generates the id and created_at server-side
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		writeStoreError(w, r, "create user", err)
		return
	}

	slog.Info("user created", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}
// Replaces name and email; both are required
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.Update(r.Context(), id, req.Name, req.Email)
	if err != nil {
		writeStoreError(w, r, "update user", err)
		return
	}

	slog.Info("user updated", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	changes, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "delete user", err)
		return
	}

	slog.Info("user deleted", "user_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteUserResponse{
		Message: "user deleted",
		Changes: changes,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return "", false
	}
	return id, true
}
