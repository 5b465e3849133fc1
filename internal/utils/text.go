package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

// MessageText strips any markup from user-supplied message text before
// it enters the aggregate.
type MessageText struct {
	policy *bluemonday.Policy
}

func NewMessageText() *MessageText {
	return &MessageText{policy: bluemonday.StrictPolicy()}
}

func (v *MessageText) Clean(text string) (string, error) {
	cleaned := strings.TrimSpace(v.policy.Sanitize(text))
	if cleaned == "" {
		return "", internal_errors.InvalidArgument("Message text is required")
	}
	return cleaned, nil
}
