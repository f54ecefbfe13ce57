package service

import (
	"github.com/threadline-dev/threadline/internal/domain"
)

type CommentService interface {
	Create(data domain.CommentCreationData) (domain.CreatedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error
}

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData) (domain.CreatedComment, error)
	SoftDeleteComment(commentId domain.CommentId) error
}

type ContentValidator interface {
	Content(content domain.Content) error
}

type Comment struct {
	storage   CommentStorage
	verifier  *Verifier
	validator ContentValidator
}

func NewComment(storage CommentStorage, verifier *Verifier, validator ContentValidator) CommentService {
	return &Comment{storage, verifier, validator}
}

func (s *Comment) Create(data domain.CommentCreationData) (domain.CreatedComment, error) {
	if err := s.validator.Content(data.Content); err != nil {
		return domain.CreatedComment{}, err
	}
	if err := s.verifier.Thread(data.ThreadId); err != nil {
		return domain.CreatedComment{}, err
	}
	data.Content = sanitizeContent(data.Content)

	return s.storage.CreateComment(data)
}

func (s *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error {
	if err := s.verifier.CommentInThread(threadId, commentId); err != nil {
		return err
	}
	if err := s.verifier.CommentOwnedBy(commentId, actor); err != nil {
		return err
	}
	return s.storage.SoftDeleteComment(commentId)
}
