package domain

import (
	"time"
)

type Visibility = string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Role = string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Board is the whole aggregate: one document, one consistency boundary.
// Members, messages and polls have no lifecycle outside their board.
type Board struct {
	Id          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Visibility  string    `bson:"visibility" json:"visibility"`
	Theme       string    `bson:"theme" json:"theme"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	Members     []Member  `bson:"members" json:"members"`
	Messages    []Message `bson:"messages" json:"messages"`
	Polls       []Poll    `bson:"polls" json:"polls"`
}

// Member references a user in the external user store. Display fields
// are resolved at read time, never persisted here.
type Member struct {
	UserId string `bson:"userId" json:"userId"`
	Role   string `bson:"role" json:"role"`
}

// MemberProfile is the read-time projection of a member joined with the
// user store. Name/Email fall back to "Unknown" for users that no
// longer resolve.
type MemberProfile struct {
	Member
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BoardMetadata is the list view of a board, without the nested sequences.
type BoardMetadata struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Visibility  string    `json:"visibility"`
	Theme       string    `json:"theme"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (b *Board) Metadata() BoardMetadata {
	return BoardMetadata{
		Id:          b.Id,
		Name:        b.Name,
		Description: b.Description,
		Visibility:  b.Visibility,
		Theme:       b.Theme,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
	}
}

// LastMessage returns the tail of the message sequence, nil when empty.
func (b *Board) LastMessage() *Message {
	if len(b.Messages) == 0 {
		return nil
	}
	return &b.Messages[len(b.Messages)-1]
}

// UnseenCount counts messages whose seen set excludes viewer.
// Tombstoned messages count too.
func (b *Board) UnseenCount(viewer string) int {
	count := 0
	for i := range b.Messages {
		if !b.Messages[i].SeenBy(viewer) {
			count++
		}
	}
	return count
}

// ValidPins filters the message sequence to currently valid pins.
// An expired pin is treated as absent; nothing is cleared here.
func (b *Board) ValidPins(now time.Time) []Message {
	pinned := []Message{}
	for i := range b.Messages {
		if b.Messages[i].PinValidAt(now) {
			pinned = append(pinned, b.Messages[i])
		}
	}
	return pinned
}

// Message looks up a message by id, nil if absent.
func (b *Board) Message(messageId string) *Message {
	for i := range b.Messages {
		if b.Messages[i].Id == messageId {
			return &b.Messages[i]
		}
	}
	return nil
}

// Poll looks up a poll by id, nil if absent.
func (b *Board) Poll(pollId string) *Poll {
	for i := range b.Polls {
		if b.Polls[i].Id == pollId {
			return &b.Polls[i]
		}
	}
	return nil
}

// HasRecentPollBy reports whether creator already has a poll on this
// board created strictly after cutoff. The rate limit is evaluated
// against existing polls, not a separate counter.
func (b *Board) HasRecentPollBy(creator string, cutoff time.Time) bool {
	for i := range b.Polls {
		if b.Polls[i].CreatedBy == creator && b.Polls[i].CreatedAt.After(cutoff) {
			return true
		}
	}
	return false
}

// BoardView is the aggregate read composition returned by a board fetch:
// members joined with user-store identity, the viewer's unseen count,
// the last message, currently valid pins and polls with derived activity.
type BoardView struct {
	Board
	Members        []MemberProfile `json:"members"`
	UnseenCount    int             `json:"unseenCount"`
	LastMessage    *Message        `json:"lastMessage"`
	PinnedMessages []Message       `json:"pinnedMessages"`
	Polls          []PollView      `json:"polls"`
}
