// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record store for users.

SQLStore wraps an opened *sql.DB and issues one statement per operation:

	s := store.New(conn, db.TypeSQLite, nil)
	u, err := s.Create(ctx, "Alice", "a@x.com")

Identifiers are random UUIDv4 strings generated on insert. created_at comes
from the store's clock (clockwork.Clock) and is never rewritten by Update.

# Errors

Callers match errors with errors.Is:

  - ErrValidation: name or email blank (concrete type *ValidationError)
  - ErrDuplicateEmail: the email UNIQUE constraint fired
  - ErrNotFound: no row with the given id
  - ErrStorage: any other driver failure (concrete type *StorageError)

Queries are written with ? placeholders and rebound to $n when the store
is bound to PostgreSQL.
*/
package store
