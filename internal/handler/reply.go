package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-dev/threadline/internal/api"
	"github.com/threadline-dev/threadline/internal/domain"
	"github.com/threadline-dev/threadline/internal/middleware"
	"github.com/threadline-dev/threadline/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	created, err := h.reply.Create(threadId, domain.ReplyCreationData{
		CommentId: commentId,
		Owner:     user.Id,
		Content:   body.Content,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, created)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	if err := h.reply.Delete(threadId, commentId, replyId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
