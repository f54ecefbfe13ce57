package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-dev/threadline/internal/api"
	"github.com/threadline-dev/threadline/internal/domain"
	"github.com/threadline-dev/threadline/internal/middleware"
	"github.com/threadline-dev/threadline/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	created, err := h.thread.Create(domain.ThreadCreationData{
		Title: body.Title,
		Body:  body.Body,
		Owner: user.Id,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, created)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.thread.GetDetail(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, api.ThreadDetailResponse{Thread: detail})
}
