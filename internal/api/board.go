package api

import (
	"github.com/brainiacs-dev/brainiacs/internal/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=public private"`
	Theme       string `json:"theme"`
	CreatedBy   string `json:"createdBy" validate:"required"`
}

type MemberPayload struct {
	UserId string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin member"`
}

type UpdateMembersRequest struct {
	Members []MemberPayload `json:"members" validate:"required,dive"`
}

// Response DTOs

type BoardResponse struct {
	domain.BoardView
}

type BoardListResponse struct {
	Boards []domain.BoardMetadata `json:"boards"`
}

type MessageResponse struct {
	domain.Message
}
