package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-dev/threadline/internal/api"
	"github.com/threadline-dev/threadline/internal/domain"
	"github.com/threadline-dev/threadline/internal/middleware"
	"github.com/threadline-dev/threadline/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	created, err := h.comment.Create(domain.CommentCreationData{
		ThreadId: threadId,
		Owner:    user.Id,
		Content:  body.Content,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, created)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(threadId, commentId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
