// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the userbook API.

# Handler Types

Each handler is a struct holding a UserStore:

  - UserHandler: list, fetch, create, update and delete user records
  - StatsHandler: aggregate counts

Handlers are created via constructor functions:

	userHandler := handlers.NewUserHandler(s)

# Endpoints

	GET    /api/users        → ListUsers (newest first)
	GET    /api/users/{id}   → GetUser
	POST   /api/users        → CreateUser (201, id and created_at assigned by the server)
	PUT    /api/users/{id}   → UpdateUser (name and email both required)
	DELETE /api/users/{id}   → DeleteUser
	GET    /api/stats        → GetStats

# Errors

Store errors map to statuses as follows:

  - validation failures and duplicate emails: 400 with the error text
  - unknown ids: 404 "user not found"
  - anything else: 500 "Database error", logged with the original cause

Every error body is {"error": "..."}.
*/
package handlers
