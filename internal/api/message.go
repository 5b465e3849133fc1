package api

import "time"

// Request DTOs

type AppendMessageRequest struct {
	SenderId    string   `json:"senderId" validate:"required"`
	SenderName  string   `json:"senderName"`
	Text        string   `json:"text" validate:"required"`
	Attachments []string `json:"attachments"`
}

type EditMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type DeleteMessageRequest struct {
	DeletedBy string     `json:"deletedBy" validate:"required"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type MarkSeenRequest struct {
	SeenBy string `json:"seenBy" validate:"required"`
}

// Reaction kinds become field names inside the aggregate document, so
// path metacharacters are rejected at the boundary.
type ReactRequest struct {
	UserId   string `json:"userId" validate:"required"`
	Reaction string `json:"reaction" validate:"required,excludesall=.$"`
}

type PinRequest struct {
	PinnedBy    string `json:"pinnedBy" validate:"required"`
	PinDuration int    `json:"pinDuration" validate:"required,min=1"` // days
}
