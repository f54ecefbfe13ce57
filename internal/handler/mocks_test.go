package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-dev/threadline/internal/domain"
	"github.com/threadline-dev/threadline/internal/middleware"
)

// Service mocks used by the handler tests. Function fields override
// behavior per test.

type MockAuthService struct {
	registerFunc func(creds domain.Credentials) (domain.CreatedUser, error)
	loginFunc    func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(creds domain.Credentials) (domain.CreatedUser, error) {
	if m.registerFunc != nil {
		return m.registerFunc(creds)
	}
	return domain.CreatedUser{Id: "user-1", Username: creds.Username}, nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(creds)
	}
	return "token", nil
}

type MockThreadService struct {
	createFunc    func(data domain.ThreadCreationData) (domain.CreatedThread, error)
	getDetailFunc func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (domain.CreatedThread, error) {
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.CreatedThread{Id: "thread-1", Title: data.Title, Owner: data.Owner}, nil
}

func (m *MockThreadService) GetDetail(id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.getDetailFunc != nil {
		return m.getDetailFunc(id)
	}
	return domain.ThreadDetail{ThreadMetadata: domain.ThreadMetadata{Id: id}, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	createFunc func(data domain.CommentCreationData) (domain.CreatedComment, error)
	deleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error
}

func (m *MockCommentService) Create(data domain.CommentCreationData) (domain.CreatedComment, error) {
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.CreatedComment{Id: "comment-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockCommentService) Delete(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(threadId, commentId, actor)
	}
	return nil
}

type MockReplyService struct {
	createFunc func(threadId domain.ThreadId, data domain.ReplyCreationData) (domain.CreatedReply, error)
	deleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, actor domain.UserId) error
}

func (m *MockReplyService) Create(threadId domain.ThreadId, data domain.ReplyCreationData) (domain.CreatedReply, error) {
	if m.createFunc != nil {
		return m.createFunc(threadId, data)
	}
	return domain.CreatedReply{Id: "reply-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, actor domain.UserId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(threadId, commentId, replyId, actor)
	}
	return nil
}

type MockLikeService struct {
	toggleFunc func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.toggleFunc != nil {
		return m.toggleFunc(threadId, commentId, userId)
	}
	return nil
}

type handlerMocks struct {
	auth    *MockAuthService
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	like    *MockLikeService
}

// newTestRouter mounts the handler on the production route patterns.
// fakeUser replaces the JWT middleware so tests control the identity.
func newTestRouter(user *domain.User) (*chi.Mux, *handlerMocks) {
	mocks := &handlerMocks{
		auth:    &MockAuthService{},
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		like:    &MockLikeService{},
	}
	h := New(mocks.auth, mocks.thread, mocks.comment, mocks.reply, mocks.like)

	r := chi.NewRouter()
	r.Use(fakeUser(user))
	r.Post("/v1/auth/register", h.Register)
	r.Post("/v1/auth/login", h.Login)
	r.Post("/v1/threads", h.CreateThread)
	r.Get("/v1/threads/{threadId}", h.GetThread)
	r.Post("/v1/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Put("/v1/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	r.Post("/v1/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r, mocks
}

func fakeUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				ctx := context.WithValue(r.Context(), middleware.UserClaimsKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
