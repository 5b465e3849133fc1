package domain

import (
	"time"
)

// SenderNameFallback is snapshotted when a sender name is not supplied
// at append time.
const SenderNameFallback = "Unknown User"

// Reactions maps reaction kind to the set of reacting user ids.
type Reactions = map[string][]string

// Message lives inside its board's ordered sequence. Text == nil is the
// only tombstone: deleted messages keep their position, reactions, pin
// and seen history.
type Message struct {
	Id          string     `bson:"messageId" json:"messageId"`
	SenderId    string     `bson:"senderId" json:"senderId"`
	SenderName  string     `bson:"senderName" json:"senderName"` // snapshot at creation, never re-resolved
	Text        *string    `bson:"text" json:"text"`
	Attachments []string   `bson:"attachments" json:"attachments"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedBy   string     `bson:"deletedBy,omitempty" json:"deletedBy,omitempty"`
	DeletedAt   *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	Reactions   Reactions  `bson:"reactions,omitempty" json:"reactions,omitempty"`
	PinnedBy    string     `bson:"pinnedBy,omitempty" json:"pinnedBy,omitempty"`
	PinExpiry   *time.Time `bson:"pinExpiry,omitempty" json:"pinExpiry,omitempty"`
	Seen        []string   `bson:"seenBy" json:"seenBy"`
}

// Deleted reports whether the message is tombstoned.
func (m *Message) Deleted() bool {
	return m.Text == nil
}

// HasReaction reports whether user is in the set for kind.
func (m *Message) HasReaction(kind, user string) bool {
	for _, u := range m.Reactions[kind] {
		if u == user {
			return true
		}
	}
	return false
}

// PinValidAt reports whether the message carries a pin that has not
// expired. Past-expiry pins are treated as absent by every reader.
func (m *Message) PinValidAt(now time.Time) bool {
	return m.PinnedBy != "" && m.PinExpiry != nil && m.PinExpiry.After(now)
}

// SeenBy reports whether user has observed the message.
func (m *Message) SeenBy(user string) bool {
	for _, u := range m.Seen {
		if u == user {
			return true
		}
	}
	return false
}
