package domain

import (
	"time"
)

// PollLifetime is the fixed window a poll stays active and the trailing
// window the per-creator rate limit is evaluated over.
const PollLifetime = 24 * time.Hour

type PollOption struct {
	Label string   `bson:"label" json:"label"`
	Votes []string `bson:"votes" json:"votes"`
}

// Poll is append-once, vote-once. It never deactivates in storage:
// activity is derived from ExpiresAt at read time.
type Poll struct {
	Id        string       `bson:"pollId" json:"pollId"`
	Question  string       `bson:"question" json:"question"`
	Options   []PollOption `bson:"options" json:"options"`
	CreatedBy string       `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time    `bson:"expiresAt" json:"expiresAt"`
}

// ActiveAt derives the poll's active flag from its expiry.
func (p *Poll) ActiveAt(now time.Time) bool {
	return p.ExpiresAt.After(now)
}

// HasVoted reports whether user appears in any option's voter set.
// A voter holds at most one vote per poll across all options.
func (p *Poll) HasVoted(user string) bool {
	for i := range p.Options {
		for _, u := range p.Options[i].Votes {
			if u == user {
				return true
			}
		}
	}
	return false
}

// PollView is a poll plus its derived active flag, as returned to readers.
type PollView struct {
	Poll
	IsActive bool `json:"isActive"`
}

// ViewAt materializes the derived active flag for a read.
func (p Poll) ViewAt(now time.Time) PollView {
	return PollView{Poll: p, IsActive: p.ActiveAt(now)}
}
