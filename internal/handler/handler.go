package handler

import (
	"net/http"

	"github.com/brainiacs-dev/brainiacs/internal/service"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

type Handler struct {
	board   service.BoardService
	message service.MessageService
	poll    service.PollService
	user    service.UserService
}

func New(board service.BoardService, message service.MessageService, poll service.PollService, user service.UserService) *Handler {
	return &Handler{board: board, message: message, poll: poll, user: user}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"})
}
