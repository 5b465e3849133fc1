package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
)

// memStore is an in-memory board store with the same conditional-update
// semantics the real store has: every mutation is guarded the way the
// corresponding conditional write is, which lets the service tests
// exercise idempotence and at-most-one-winner behavior without a live
// database.
type memStore struct {
	mu     sync.Mutex
	boards map[string]*domain.Board
}

func newMemStore(boards ...domain.Board) *memStore {
	s := &memStore{boards: map[string]*domain.Board{}}
	for i := range boards {
		b := boards[i]
		s.boards[b.Id] = &b
	}
	return s
}

func copyOf[T any](v T) T {
	raw, _ := json.Marshal(v)
	var out T
	_ = json.Unmarshal(raw, &out)
	return out
}

// BoardStorage

func (s *memStore) CreateBoard(_ context.Context, board domain.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[board.Id] = &board
	return nil
}

func (s *memStore) GetBoard(_ context.Context, boardId string) (domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[boardId]
	if !ok {
		return domain.Board{}, internal_errors.NotFound("Board not found")
	}
	return copyOf(*board), nil
}

func (s *memStore) ListBoards(_ context.Context) ([]domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	boards := []domain.Board{}
	for _, b := range s.boards {
		boards = append(boards, copyOf(*b))
	}
	return boards, nil
}

func (s *memStore) ReplaceMembers(_ context.Context, boardId string, members []domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[boardId]
	if !ok {
		return internal_errors.NotFound("Board not found")
	}
	board.Members = members
	return nil
}

func (s *memStore) DeleteBoard(_ context.Context, boardId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[boardId]; !ok {
		return internal_errors.NotFound("Board not found")
	}
	delete(s.boards, boardId)
	return nil
}

// MessageStorage

func (s *memStore) AppendMessage(_ context.Context, boardId string, msg domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[boardId]
	if !ok {
		return internal_errors.NotFound("Board not found")
	}
	board.Messages = append(board.Messages, msg)
	return nil
}

func (s *memStore) GetMessage(_ context.Context, boardId, messageId string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return domain.Message{}, internal_errors.NotFound("Message not found")
	}
	return copyOf(*msg), nil
}

func (s *memStore) SetMessageText(_ context.Context, boardId, messageId, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return internal_errors.NotFound("Message not found")
	}
	msg.Text = &text
	return nil
}

func (s *memStore) TombstoneMessage(_ context.Context, boardId, messageId, deletedBy string, deletedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil || msg.Text == nil {
		return false, nil
	}
	msg.Text = nil
	msg.DeletedBy = deletedBy
	msg.DeletedAt = &deletedAt
	return true, nil
}

func (s *memStore) PullReaction(_ context.Context, boardId, messageId, kind, userId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil || !msg.HasReaction(kind, userId) {
		return false, nil
	}
	kept := []string{}
	for _, u := range msg.Reactions[kind] {
		if u != userId {
			kept = append(kept, u)
		}
	}
	msg.Reactions[kind] = kept
	return true, nil
}

func (s *memStore) AddReaction(_ context.Context, boardId, messageId, kind, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return internal_errors.NotFound("Message not found")
	}
	if msg.Reactions == nil {
		msg.Reactions = domain.Reactions{}
	}
	if !msg.HasReaction(kind, userId) {
		msg.Reactions[kind] = append(msg.Reactions[kind], userId)
	}
	return nil
}

func (s *memStore) SetPin(_ context.Context, boardId, messageId, pinnedBy string, pinExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return internal_errors.NotFound("Message not found")
	}
	msg.PinnedBy = pinnedBy
	msg.PinExpiry = &pinExpiry
	return nil
}

func (s *memStore) ClearPin(_ context.Context, boardId, messageId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return internal_errors.NotFound("Message not found")
	}
	msg.PinnedBy = ""
	msg.PinExpiry = nil
	return nil
}

func (s *memStore) AddSeen(_ context.Context, boardId, messageId, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message(boardId, messageId)
	if msg == nil {
		return internal_errors.NotFound("Message not found")
	}
	if !msg.SeenBy(userId) {
		msg.Seen = append(msg.Seen, userId)
	}
	return nil
}

// PollStorage

func (s *memStore) AppendPoll(_ context.Context, boardId string, poll domain.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[boardId]
	if !ok {
		return internal_errors.NotFound("Board not found")
	}
	board.Polls = append(board.Polls, poll)
	return nil
}

func (s *memStore) GetPoll(_ context.Context, boardId, pollId string) (domain.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	poll := s.poll(boardId, pollId)
	if poll == nil {
		return domain.Poll{}, internal_errors.NotFound("Poll not found")
	}
	return copyOf(*poll), nil
}

func (s *memStore) PushVote(_ context.Context, boardId, pollId string, optionIndex int, userId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	poll := s.poll(boardId, pollId)
	if poll == nil || poll.HasVoted(userId) {
		return false, nil
	}
	poll.Options[optionIndex].Votes = append(poll.Options[optionIndex].Votes, userId)
	return true, nil
}

func (s *memStore) RemovePoll(_ context.Context, boardId, pollId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[boardId]
	if !ok {
		return false, nil
	}
	kept := board.Polls[:0]
	removed := false
	for _, p := range board.Polls {
		if p.Id == pollId {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	board.Polls = kept
	return removed, nil
}

func (s *memStore) message(boardId, messageId string) *domain.Message {
	board, ok := s.boards[boardId]
	if !ok {
		return nil
	}
	return board.Message(messageId)
}

func (s *memStore) poll(boardId, pollId string) *domain.Poll {
	board, ok := s.boards[boardId]
	if !ok {
		return nil
	}
	return board.Poll(pollId)
}
