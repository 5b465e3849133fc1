package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainiacs-dev/brainiacs/internal/api"
	"github.com/brainiacs-dev/brainiacs/internal/service"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

func (h *Handler) AppendMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")

	var body api.AppendMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.Append(r.Context(), boardId, service.MessageCreationData{
		SenderId:    body.SenderId,
		SenderName:  body.SenderName,
		Text:        body.Text,
		Attachments: body.Attachments,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, api.MessageResponse{Message: msg})
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	var body api.EditMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.Edit(r.Context(), boardId, messageId, body.Text)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.MessageResponse{Message: msg})
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	var body api.DeleteMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.SoftDelete(r.Context(), boardId, messageId, body.DeletedBy, body.DeletedAt)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.MessageResponse{Message: msg})
}

func (h *Handler) MarkMessageSeen(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	var body api.MarkSeenRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.MarkSeen(r.Context(), boardId, messageId, body.SeenBy)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.MessageResponse{Message: msg})
}

func (h *Handler) ReactToMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	var body api.ReactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.ToggleReaction(r.Context(), boardId, messageId, body.UserId, body.Reaction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.MessageResponse{Message: msg})
}

func (h *Handler) PinMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	var body api.PinRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	msg, err := h.message.Pin(r.Context(), boardId, messageId, body.PinnedBy, body.PinDuration)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.MessageResponse{Message: msg})
}

func (h *Handler) UnpinMessage(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "board")
	messageId := chi.URLParam(r, "message")

	if err := h.message.Unpin(r.Context(), boardId, messageId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Message unpinned successfully"})
}
