package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainiacs-dev/brainiacs/internal/api"
	"github.com/brainiacs-dev/brainiacs/internal/service"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

func (h *Handler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")

	var body api.CreatePollRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	poll, err := h.poll.Create(r.Context(), boardId, service.PollCreationData{
		Question:  body.Question,
		Options:   body.Options,
		CreatedBy: body.CreatedBy,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, poll)
}

func (h *Handler) ListPolls(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")

	polls, err := h.poll.List(r.Context(), boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.PollListResponse{Polls: polls})
}

func (h *Handler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	pollId := chi.URLParam(r, "poll")

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	view, err := h.poll.Vote(r.Context(), boardId, pollId, body.UserId, *body.OptionIndex)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.PollResponse{PollView: view})
}

func (h *Handler) RemovePoll(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	pollId := chi.URLParam(r, "poll")

	if err := h.poll.Remove(r.Context(), boardId, pollId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Poll removed successfully"})
}
