// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

// User is a single row of the users table
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Request types

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Response types

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type DeleteUserResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type StatsResponse struct {
	Users int `json:"users"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
