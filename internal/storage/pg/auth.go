package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(username domain.Username, passHash string) (domain.CreatedUser, error) {
	var created domain.CreatedUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, pass_hash)
        VALUES ($1, $2, $3)
        RETURNING id, username
    `, newId("user"), username, passHash).Scan(&created.Id, &created.Username)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.CreatedUser{}, &internal_errors.InvalidInputError{Field: "username", Reason: "already taken"}
		}
		return domain.CreatedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, pass_hash, created_at
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.NotFoundError{Entity: internal_errors.EntityUser}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
