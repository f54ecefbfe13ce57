package handler

import (
	"github.com/threadline-dev/threadline/internal/service"
)

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
}

func New(
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	like service.LikeService,
) *Handler {
	return &Handler{
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		like:    like,
	}
}
