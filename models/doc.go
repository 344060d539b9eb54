// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: name, email
  - UpdateUserRequest: name, email

# Response Types

Types for JSON responses:

  - ListUsersResponse: users
  - DeleteUserResponse: message, changes
  - StatsResponse: users (total count)
  - ErrorResponse: error

# Domain Types

  - User: id, name, email, created_at

User is returned directly by the store and serialized as-is, so GET, POST
and PUT responses share one shape.
*/
package models
