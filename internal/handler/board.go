package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainiacs-dev/brainiacs/internal/api"
	"github.com/brainiacs-dev/brainiacs/internal/domain"
	"github.com/brainiacs-dev/brainiacs/internal/service"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(r.Context(), service.BoardCreationData{
		Name:        body.Name,
		Description: body.Description,
		Visibility:  body.Visibility,
		Theme:       body.Theme,
		CreatedBy:   body.CreatedBy,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, board)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	viewerId := r.URL.Query().Get("userId")

	view, err := h.board.Get(r.Context(), boardId, viewerId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BoardResponse{BoardView: view})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BoardListResponse{Boards: boards})
}

func (h *Handler) UpdateBoardMembers(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")

	var body api.UpdateMembersRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	members := make([]domain.Member, len(body.Members))
	for i, m := range body.Members {
		members[i] = domain.Member{UserId: m.UserId, Role: m.Role}
	}

	if err := h.board.UpdateMembers(r.Context(), boardId, members); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Board updated successfully"})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")

	if err := h.board.Delete(r.Context(), boardId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Board deleted successfully"})
}
