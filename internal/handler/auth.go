package handler

import (
	"net/http"

	"github.com/threadline-dev/threadline/internal/api"
	"github.com/threadline-dev/threadline/internal/domain"
	"github.com/threadline-dev/threadline/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.Register(domain.Credentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, api.LoginResponse{AccessToken: token})
}
