package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

func (s *Storage) CreateReply(data domain.ReplyCreationData) (domain.CreatedReply, error) {
	var created domain.CreatedReply
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, owner, comment_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, newId("reply"), data.Content, data.Owner, data.CommentId).Scan(
		&created.Id, &created.Content, &created.Owner,
	)
	if err != nil {
		return domain.CreatedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return created, nil
}

// ReplyInComment reports NotFound both for an absent reply and for a
// reply that exists under a different comment.
func (s *Storage) ReplyInComment(commentId domain.CommentId, replyId domain.ReplyId) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1 AND comment_id = $2)",
		replyId, commentId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply existence: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Entity: internal_errors.EntityReply}
	}
	return nil
}

func (s *Storage) ReplyOwner(replyId domain.ReplyId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRow("SELECT owner FROM replies WHERE id = $1", replyId).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.NotFoundError{Entity: internal_errors.EntityReply}
		}
		return "", fmt.Errorf("failed to fetch reply owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) SoftDeleteReply(replyId domain.ReplyId) error {
	_, err := s.db.Exec(
		"UPDATE replies SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL",
		replyId,
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete reply: %w", err)
	}
	return nil
}

// RepliesByCommentIds fetches the replies of a whole thread's comments in
// one round trip, keyed by comment id.
func (s *Storage) RepliesByCommentIds(ids []domain.CommentId) ([]domain.ReplyRecord, error) {
	rows, err := s.db.Query(`
        SELECT replies.id, replies.comment_id, users.username, replies.content, replies.created_at, replies.deleted_at
        FROM replies
        JOIN users ON replies.owner = users.id
        WHERE replies.comment_id = ANY($1)
        ORDER BY replies.created_at, replies.id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var records []domain.ReplyRecord
	for rows.Next() {
		var rec domain.ReplyRecord
		var deletedAt sql.NullTime
		if err := rows.Scan(&rec.Id, &rec.CommentId, &rec.Username, &rec.Content, &rec.CreatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		rec.DeletedAt = nullableTime(deletedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
