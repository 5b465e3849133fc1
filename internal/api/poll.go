package api

import (
	"github.com/brainiacs-dev/brainiacs/internal/domain"
)

// Request DTOs

type CreatePollRequest struct {
	Question  string   `json:"question" validate:"required"`
	Options   []string `json:"options" validate:"required,min=2,dive,required"`
	CreatedBy string   `json:"createdBy" validate:"required"`
}

// OptionIndex is a pointer so index 0 survives required validation.
type VoteRequest struct {
	UserId      string `json:"userId" validate:"required"`
	OptionIndex *int   `json:"optionIndex" validate:"required"`
}

// Response DTOs

type PollResponse struct {
	domain.PollView
}

type PollListResponse struct {
	Polls []domain.PollView `json:"polls"`
}
