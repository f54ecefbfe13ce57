package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.CreatedThread, error) {
	var created domain.CreatedThread
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, newId("thread"), data.Title, data.Body, data.Owner).Scan(
		&created.Id, &created.Title, &created.Owner,
	)
	if err != nil {
		return domain.CreatedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return created, nil
}

func (s *Storage) ThreadExists(id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread existence: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Entity: internal_errors.EntityThread}
	}
	return nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.ThreadMetadata, error) {
	var metadata domain.ThreadMetadata
	err := s.db.QueryRow(`
        SELECT threads.id, threads.title, threads.body, users.username, threads.created_at
        FROM threads
        JOIN users ON threads.owner = users.id
        WHERE threads.id = $1
    `, id).Scan(
		&metadata.Id, &metadata.Title, &metadata.Body,
		&metadata.Username, &metadata.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadMetadata{}, &internal_errors.NotFoundError{Entity: internal_errors.EntityThread}
		}
		return domain.ThreadMetadata{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return metadata, nil
}
