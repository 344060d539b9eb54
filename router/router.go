// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/userbook/handlers"
	"github.com/danielhkuo/userbook/middleware"
)

// NewRouter wires every endpoint to s. The returned handler applies CORS
// before routing.
func NewRouter(s handlers.UserStore) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s)
	statsHandler := handlers.NewStatsHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// User records
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("POST /api/users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /api/users/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("PUT /api/users/{id}", middleware.WithLogging(userHandler.UpdateUser))
	mux.HandleFunc("DELETE /api/users/{id}", middleware.WithLogging(userHandler.DeleteUser))

	// Aggregates
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("userbook API v1"))
	})

	return middleware.CORS(mux)
}
