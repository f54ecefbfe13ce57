package service

import (
	"github.com/threadline-dev/threadline/internal/domain"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, data domain.ReplyCreationData) (domain.CreatedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, actor domain.UserId) error
}

type ReplyStorage interface {
	CreateReply(data domain.ReplyCreationData) (domain.CreatedReply, error)
	SoftDeleteReply(replyId domain.ReplyId) error
}

type Reply struct {
	storage   ReplyStorage
	verifier  *Verifier
	validator ContentValidator
}

func NewReply(storage ReplyStorage, verifier *Verifier, validator ContentValidator) ReplyService {
	return &Reply{storage, verifier, validator}
}

func (s *Reply) Create(threadId domain.ThreadId, data domain.ReplyCreationData) (domain.CreatedReply, error) {
	if err := s.validator.Content(data.Content); err != nil {
		return domain.CreatedReply{}, err
	}
	if err := s.verifier.CommentInThread(threadId, data.CommentId); err != nil {
		return domain.CreatedReply{}, err
	}
	data.Content = sanitizeContent(data.Content)

	return s.storage.CreateReply(data)
}

func (s *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, actor domain.UserId) error {
	if err := s.verifier.ReplyInComment(threadId, commentId, replyId); err != nil {
		return err
	}
	if err := s.verifier.ReplyOwnedBy(replyId, actor); err != nil {
		return err
	}
	return s.storage.SoftDeleteReply(replyId)
}
