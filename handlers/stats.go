// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/userbook/middleware"
	"github.com/danielhkuo/userbook/models"
)

type StatsHandler struct {
	store UserStore
}

func NewStatsHandler(s UserStore) *StatsHandler {
	return &StatsHandler{store: s}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Count(r.Context())
	if err != nil {
		writeStoreError(w, r, "count users", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{Users: n})
}
