package service

import (
	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

type ThreadChecker interface {
	ThreadExists(id domain.ThreadId) error
}

type CommentChecker interface {
	CommentInThread(threadId domain.ThreadId, commentId domain.CommentId) error
	CommentOwner(commentId domain.CommentId) (domain.UserId, error)
}

type ReplyChecker interface {
	ReplyInComment(commentId domain.CommentId, replyId domain.ReplyId) error
	ReplyOwner(replyId domain.ReplyId) (domain.UserId, error)
}

// Verifier runs the existence and ownership checks required before a
// mutation may touch storage. The chain order is fixed: thread, then
// comment, then reply, then ownership. The first failing check aborts
// the chain, so deeper lookups never run against an invalid parent.
type Verifier struct {
	threads  ThreadChecker
	comments CommentChecker
	replies  ReplyChecker
}

func NewVerifier(threads ThreadChecker, comments CommentChecker, replies ReplyChecker) *Verifier {
	return &Verifier{threads: threads, comments: comments, replies: replies}
}

func (v *Verifier) Thread(threadId domain.ThreadId) error {
	if threadId == "" {
		return &internal_errors.InvalidInputError{Field: "threadId", Reason: "required"}
	}
	return v.threads.ThreadExists(threadId)
}

func (v *Verifier) CommentInThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := v.Thread(threadId); err != nil {
		return err
	}
	if commentId == "" {
		return &internal_errors.InvalidInputError{Field: "commentId", Reason: "required"}
	}
	return v.comments.CommentInThread(threadId, commentId)
}

func (v *Verifier) ReplyInComment(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if err := v.CommentInThread(threadId, commentId); err != nil {
		return err
	}
	if replyId == "" {
		return &internal_errors.InvalidInputError{Field: "replyId", Reason: "required"}
	}
	return v.replies.ReplyInComment(commentId, replyId)
}

func (v *Verifier) CommentOwnedBy(commentId domain.CommentId, userId domain.UserId) error {
	owner, err := v.comments.CommentOwner(commentId)
	if err != nil {
		return err
	}
	if owner != userId {
		return &internal_errors.ForbiddenError{}
	}
	return nil
}

func (v *Verifier) ReplyOwnedBy(replyId domain.ReplyId, userId domain.UserId) error {
	owner, err := v.replies.ReplyOwner(replyId)
	if err != nil {
		return err
	}
	if owner != userId {
		return &internal_errors.ForbiddenError{}
	}
	return nil
}
