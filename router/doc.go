// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the userbook API.

# Route Registration

NewRouter builds an http.ServeMux over a store and wraps it in CORS:

	h := router.NewRouter(store.New(conn, db.TypeSQLite, nil))

# Endpoints

Health:

	GET /health

Users:

	GET    /api/users      - List users, newest first
	POST   /api/users      - Create user
	GET    /api/users/{id} - Fetch one user
	PUT    /api/users/{id} - Replace name and email
	DELETE /api/users/{id} - Remove user

Stats:

	GET /api/stats - Total user count

Every /api route is wrapped with middleware.WithLogging. Unknown methods on a
known path answer 405; CORS preflights are answered before routing.
*/
package router
