package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainiacs-dev/brainiacs/internal/api"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.Register(r.Context(), body.Name, body.Email, body.Role)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, api.UserResponse{User: user})
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.user.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.UserListResponse{Users: users})
}

func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.user.ByEmail(r.Context(), email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.UserResponse{User: user})
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.WriteErrorAndStatusCode(w, internal_errors.InvalidArgument("Query parameter is required"))
		return
	}

	users, err := h.user.Search(r.Context(), query)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.UserListResponse{Users: users})
}
