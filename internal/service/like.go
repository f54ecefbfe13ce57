package service

import (
	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type LikeStorage interface {
	ToggleLike(userId domain.UserId, commentId domain.CommentId) error
}

type Like struct {
	storage  LikeStorage
	verifier *Verifier
}

func NewLike(storage LikeStorage, verifier *Verifier) LikeService {
	return &Like{storage, verifier}
}

// Toggle flips the (user, comment) like state. A user who never touched
// the comment starts unliked; the first toggle creates the relation row.
func (s *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if userId == "" {
		return &internal_errors.UnauthorizedError{Reason: "missing acting user"}
	}
	if err := s.verifier.CommentInThread(threadId, commentId); err != nil {
		return err
	}
	return s.storage.ToggleLike(userId, commentId)
}
