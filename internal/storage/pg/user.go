package pg

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(id, name, email, role, created_at) VALUES($1, $2, $3, $4, $5)",
		user.Id, user.Name, user.Email, user.Role, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return internal_errors.Conflict("User already exists")
		}
		return err
	}
	return nil
}

func (s *Storage) FindById(ctx context.Context, id string) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, role, created_at FROM users WHERE id = $1", id))
}

func (s *Storage) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, role, created_at FROM users WHERE email = $1", strings.TrimSpace(email)))
}

// FindManyByIds resolves a batch of member references in one query.
// Ids that don't resolve are simply absent from the result; callers
// project fallback display fields for them.
func (s *Storage) FindManyByIds(ctx context.Context, ids []string) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, role, created_at FROM users WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, role, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// SearchUsers prefix-matches name or email, case-insensitive, capped at 3.
func (s *Storage) SearchUsers(ctx context.Context, prefix string) ([]domain.User, error) {
	pattern := escapeLike(prefix) + "%"
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, role, created_at FROM users WHERE name ILIKE $1 OR email ILIKE $1 LIMIT 3", pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, err
	}
	return user, nil
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Id, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
