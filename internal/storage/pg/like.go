package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/threadline-dev/threadline/internal/domain"
)

// ToggleLike flips the (user, comment) like state in a single atomic
// upsert over the unique (owner, comment_id) constraint. Concurrent
// toggles serialize at the row, so two toggles always net out.
func (s *Storage) ToggleLike(userId domain.UserId, commentId domain.CommentId) error {
	_, err := s.db.Exec(`
        INSERT INTO likes (id, owner, comment_id, is_liked)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (owner, comment_id)
        DO UPDATE SET is_liked = NOT likes.is_liked
    `, newId("like"), userId, commentId)
	if err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}
	return nil
}

// LikeCountsByCommentIds counts currently-liked relations per comment in
// one round trip. Comments without likes are simply absent from the map.
func (s *Storage) LikeCountsByCommentIds(ids []domain.CommentId) (map[domain.CommentId]int, error) {
	rows, err := s.db.Query(`
        SELECT comment_id, COUNT(*)
        FROM likes
        WHERE comment_id = ANY($1) AND is_liked
        GROUP BY comment_id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch like counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CommentId]int)
	for rows.Next() {
		var commentId domain.CommentId
		var count int
		if err := rows.Scan(&commentId, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[commentId] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
