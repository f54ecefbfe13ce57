package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.CreatedComment, error) {
	var created domain.CreatedComment
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, owner, thread_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, newId("comment"), data.Content, data.Owner, data.ThreadId).Scan(
		&created.Id, &created.Content, &created.Owner,
	)
	if err != nil {
		return domain.CreatedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return created, nil
}

// CommentInThread reports NotFound both for an absent comment and for a
// comment that exists under a different thread.
func (s *Storage) CommentInThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2)",
		commentId, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment existence: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Entity: internal_errors.EntityComment}
	}
	return nil
}

func (s *Storage) CommentOwner(commentId domain.CommentId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", commentId).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.NotFoundError{Entity: internal_errors.EntityComment}
		}
		return "", fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	return owner, nil
}

// SoftDeleteComment keeps the row and records the first deletion time.
// Repeated deletes are no-ops.
func (s *Storage) SoftDeleteComment(commentId domain.CommentId) error {
	_, err := s.db.Exec(
		"UPDATE comments SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL",
		commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete comment: %w", err)
	}
	return nil
}

func (s *Storage) CommentsByThread(threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.Query(`
        SELECT comments.id, users.username, comments.content, comments.created_at, comments.deleted_at
        FROM comments
        JOIN users ON comments.owner = users.id
        WHERE comments.thread_id = $1
        ORDER BY comments.created_at, comments.id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var records []domain.CommentRecord
	for rows.Next() {
		var rec domain.CommentRecord
		var deletedAt sql.NullTime
		if err := rows.Scan(&rec.Id, &rec.Username, &rec.Content, &rec.CreatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		rec.DeletedAt = nullableTime(deletedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
