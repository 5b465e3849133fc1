package service

import (
	"context"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
	"github.com/brainiacs-dev/brainiacs/internal/id"
)

type PollCreationData struct {
	Question  string
	Options   []string
	CreatedBy string
}

type PollService interface {
	Create(ctx context.Context, boardId string, data PollCreationData) (domain.Poll, error)
	Vote(ctx context.Context, boardId, pollId, userId string, optionIndex int) (domain.PollView, error)
	List(ctx context.Context, boardId string) ([]domain.PollView, error)
	Remove(ctx context.Context, boardId, pollId string) error
}

type PollStorage interface {
	GetBoard(ctx context.Context, boardId string) (domain.Board, error)
	AppendPoll(ctx context.Context, boardId string, poll domain.Poll) error
	GetPoll(ctx context.Context, boardId, pollId string) (domain.Poll, error)
	PushVote(ctx context.Context, boardId, pollId string, optionIndex int, userId string) (bool, error)
	RemovePoll(ctx context.Context, boardId, pollId string) (bool, error)
}

type Poll struct {
	storage PollStorage
	now     func() time.Time
}

func NewPoll(storage PollStorage) *Poll {
	return &Poll{storage: storage, now: time.Now}
}

// Create enforces the per-creator rate limit against the polls already
// on the board: at most one poll per creator in the trailing lifetime
// window at the creation instant.
func (p *Poll) Create(ctx context.Context, boardId string, data PollCreationData) (domain.Poll, error) {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return domain.Poll{}, err
	}
	if err := id.Validate(data.CreatedBy, "createdBy"); err != nil {
		return domain.Poll{}, err
	}

	board, err := p.storage.GetBoard(ctx, boardId)
	if err != nil {
		return domain.Poll{}, err
	}

	now := p.now().UTC()
	if board.HasRecentPollBy(data.CreatedBy, now.Add(-domain.PollLifetime)) {
		return domain.Poll{}, internal_errors.RateLimited("You can only create one poll per day")
	}

	options := make([]domain.PollOption, len(data.Options))
	for i, label := range data.Options {
		options[i] = domain.PollOption{Label: label, Votes: []string{}}
	}

	poll := domain.Poll{
		Id:        id.New(),
		Question:  data.Question,
		Options:   options,
		CreatedBy: data.CreatedBy,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.PollLifetime),
	}

	if err := p.storage.AppendPoll(ctx, boardId, poll); err != nil {
		return domain.Poll{}, err
	}
	return poll, nil
}

// Vote is one predicate-guarded push: the store only applies it when
// the voter is absent from every option, so under contention exactly
// one vote wins. The preliminary read validates the option index only.
func (p *Poll) Vote(ctx context.Context, boardId, pollId, userId string, optionIndex int) (domain.PollView, error) {
	if err := validatePollPath(boardId, pollId); err != nil {
		return domain.PollView{}, err
	}
	if err := id.Validate(userId, "user ID"); err != nil {
		return domain.PollView{}, err
	}

	poll, err := p.storage.GetPoll(ctx, boardId, pollId)
	if err != nil {
		return domain.PollView{}, err
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return domain.PollView{}, internal_errors.InvalidArgument("Option index out of range")
	}
	if poll.HasVoted(userId) {
		return domain.PollView{}, internal_errors.Conflict("User has already voted")
	}

	accepted, err := p.storage.PushVote(ctx, boardId, pollId, optionIndex, userId)
	if err != nil {
		return domain.PollView{}, err
	}
	if !accepted {
		// The guard rejected a concurrent duplicate after our read.
		return domain.PollView{}, internal_errors.Conflict("User has already voted")
	}

	updated, err := p.storage.GetPoll(ctx, boardId, pollId)
	if err != nil {
		return domain.PollView{}, err
	}
	return updated.ViewAt(p.now()), nil
}

// List returns every poll with its activity derived from the expiry at
// the read instant. Nothing is written back: an expired poll simply
// reads as inactive.
func (p *Poll) List(ctx context.Context, boardId string) ([]domain.PollView, error) {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return nil, err
	}
	board, err := p.storage.GetBoard(ctx, boardId)
	if err != nil {
		return nil, err
	}
	now := p.now()
	views := make([]domain.PollView, len(board.Polls))
	for i, poll := range board.Polls {
		views[i] = poll.ViewAt(now)
	}
	return views, nil
}

func (p *Poll) Remove(ctx context.Context, boardId, pollId string) error {
	if err := validatePollPath(boardId, pollId); err != nil {
		return err
	}
	removed, err := p.storage.RemovePoll(ctx, boardId, pollId)
	if err != nil {
		return err
	}
	if !removed {
		return internal_errors.NotFound("Poll not found")
	}
	return nil
}

func validatePollPath(boardId, pollId string) error {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return err
	}
	return id.Validate(pollId, "poll ID")
}
