package service

import (
	"sync"

	"github.com/threadline-dev/threadline/internal/domain"
)

// Checker mocks shared by the service tests. Function fields override
// behavior per test; call tracking records what the verification chain
// actually touched.

type MockThreadChecker struct {
	threadExistsFunc func(id domain.ThreadId) error

	mu                 sync.Mutex
	threadExistsCalled bool
	threadExistsArg    domain.ThreadId
}

func (m *MockThreadChecker) ThreadExists(id domain.ThreadId) error {
	m.mu.Lock()
	m.threadExistsCalled = true
	m.threadExistsArg = id
	m.mu.Unlock()

	if m.threadExistsFunc != nil {
		return m.threadExistsFunc(id)
	}
	return nil // Default: thread exists
}

type MockCommentChecker struct {
	commentInThreadFunc func(threadId domain.ThreadId, commentId domain.CommentId) error
	commentOwnerFunc    func(commentId domain.CommentId) (domain.UserId, error)

	mu                    sync.Mutex
	commentInThreadCalled bool
	commentOwnerCalled    bool
}

func (m *MockCommentChecker) CommentInThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	m.mu.Lock()
	m.commentInThreadCalled = true
	m.mu.Unlock()

	if m.commentInThreadFunc != nil {
		return m.commentInThreadFunc(threadId, commentId)
	}
	return nil // Default: comment belongs to thread
}

func (m *MockCommentChecker) CommentOwner(commentId domain.CommentId) (domain.UserId, error) {
	m.mu.Lock()
	m.commentOwnerCalled = true
	m.mu.Unlock()

	if m.commentOwnerFunc != nil {
		return m.commentOwnerFunc(commentId)
	}
	return "user-1", nil
}

type MockReplyChecker struct {
	replyInCommentFunc func(commentId domain.CommentId, replyId domain.ReplyId) error
	replyOwnerFunc     func(replyId domain.ReplyId) (domain.UserId, error)

	mu                   sync.Mutex
	replyInCommentCalled bool
	replyOwnerCalled     bool
}

func (m *MockReplyChecker) ReplyInComment(commentId domain.CommentId, replyId domain.ReplyId) error {
	m.mu.Lock()
	m.replyInCommentCalled = true
	m.mu.Unlock()

	if m.replyInCommentFunc != nil {
		return m.replyInCommentFunc(commentId, replyId)
	}
	return nil // Default: reply belongs to comment
}

func (m *MockReplyChecker) ReplyOwner(replyId domain.ReplyId) (domain.UserId, error) {
	m.mu.Lock()
	m.replyOwnerCalled = true
	m.mu.Unlock()

	if m.replyOwnerFunc != nil {
		return m.replyOwnerFunc(replyId)
	}
	return "user-1", nil
}

// MockContentValidator mocks the ContentValidator interface.
type MockContentValidator struct {
	contentFunc func(content domain.Content) error
}

func (m *MockContentValidator) Content(content domain.Content) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil // Default valid
}

type verifierMocks struct {
	threads  *MockThreadChecker
	comments *MockCommentChecker
	replies  *MockReplyChecker
}

func newTestVerifier() (*Verifier, *verifierMocks) {
	mocks := &verifierMocks{
		threads:  &MockThreadChecker{},
		comments: &MockCommentChecker{},
		replies:  &MockReplyChecker{},
	}
	return NewVerifier(mocks.threads, mocks.comments, mocks.replies), mocks
}
