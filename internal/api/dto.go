// Package api holds the request and response DTOs of the HTTP surface.
package api

import "github.com/threadline-dev/threadline/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type ThreadDetailResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}
