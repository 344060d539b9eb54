// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/userbook/db"
	"github.com/danielhkuo/userbook/models"
)

const userColumns = "id, name, email, created_at"

// SQLStore persists users in a single table through database/sql.
// Every method runs exactly one statement.
type SQLStore struct {
	db     *sql.DB
	dbType string
	clock  clockwork.Clock
	newID  func() string
}

// New returns a store bound to conn. A nil clock uses the wall clock.
func New(conn *sql.DB, dbType string, clock clockwork.Clock) *SQLStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SQLStore{
		db:     conn,
		dbType: dbType,
		clock:  clock,
		newID:  uuid.NewString,
	}
}

// List returns every user, newest first.
func (s *SQLStore) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC, id ASC
	`))
	if err != nil {
		return nil, storageError("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate users", err)
	}

	return users, nil
}

// Get returns the user with the given id or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?
	`), id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, storageError("get user", err)
	}
	return u, nil
}

// Create inserts a user with a fresh id and the current time.
func (s *SQLStore) Create(ctx context.Context, name, email string) (models.User, error) {
	name, email, err := normalize(name, email)
	if err != nil {
		return models.User{}, err
	}

	row := s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO users (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+userColumns+`
	`), s.newID(), name, email, s.now())

	u, err := scanUser(row)
	if err != nil {
		return models.User{}, s.translate("create user", err)
	}
	return u, nil
}

// Update overwrites name and email of an existing user. created_at is left
// untouched.
func (s *SQLStore) Update(ctx context.Context, id, name, email string) (models.User, error) {
	name, email, err := normalize(name, email)
	if err != nil {
		return models.User{}, err
	}

	row := s.db.QueryRowContext(ctx, s.rebind(`
		UPDATE users
		SET name = ?, email = ?
		WHERE id = ?
		RETURNING `+userColumns+`
	`), name, email, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, s.translate("update user", err)
	}
	return u, nil
}

// Delete removes a user and returns the number of rows affected.
func (s *SQLStore) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return 0, storageError("delete user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError("delete user", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// Count returns the total number of users.
func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, storageError("count users", err)
	}
	return n, nil
}

// Postgres keeps microseconds, so truncate to keep the returned and
// stored values identical on both backends.
func (s *SQLStore) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func (s *SQLStore) translate(op string, err error) error {
	if isUniqueEmailViolation(err) {
		return ErrDuplicateEmail
	}
	return storageError(op, err)
}

// rebind converts ? placeholders to $n for PostgreSQL
func (s *SQLStore) rebind(query string) string {
	if s.dbType != db.TypePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalize(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", &ValidationError{Field: "name"}
	}
	if email == "" {
		return "", "", &ValidationError{Field: "email"}
	}
	return name, email, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	var createdAt sqlTime
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &createdAt); err != nil {
		return models.User{}, err
	}
	u.CreatedAt = createdAt.Time
	return u, nil
}
