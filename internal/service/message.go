package service

import (
	"context"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	"github.com/brainiacs-dev/brainiacs/internal/id"
)

type MessageCreationData struct {
	SenderId    string
	SenderName  string
	Text        string
	Attachments []string
}

type MessageService interface {
	Append(ctx context.Context, boardId string, data MessageCreationData) (domain.Message, error)
	Edit(ctx context.Context, boardId, messageId, text string) (domain.Message, error)
	SoftDelete(ctx context.Context, boardId, messageId, deletedBy string, deletedAt *time.Time) (domain.Message, error)
	ToggleReaction(ctx context.Context, boardId, messageId, userId, kind string) (domain.Message, error)
	Pin(ctx context.Context, boardId, messageId, pinnedBy string, durationDays int) (domain.Message, error)
	Unpin(ctx context.Context, boardId, messageId string) error
	MarkSeen(ctx context.Context, boardId, messageId, userId string) (domain.Message, error)
}

type MessageStorage interface {
	AppendMessage(ctx context.Context, boardId string, msg domain.Message) error
	GetMessage(ctx context.Context, boardId, messageId string) (domain.Message, error)
	SetMessageText(ctx context.Context, boardId, messageId, text string) error
	TombstoneMessage(ctx context.Context, boardId, messageId, deletedBy string, deletedAt time.Time) (bool, error)
	PullReaction(ctx context.Context, boardId, messageId, kind, userId string) (bool, error)
	AddReaction(ctx context.Context, boardId, messageId, kind, userId string) error
	SetPin(ctx context.Context, boardId, messageId, pinnedBy string, pinExpiry time.Time) error
	ClearPin(ctx context.Context, boardId, messageId string) error
	AddSeen(ctx context.Context, boardId, messageId, userId string) error
}

type TextCleaner interface {
	Clean(text string) (string, error)
}

type Message struct {
	storage MessageStorage
	cleaner TextCleaner
	now     func() time.Time
}

func NewMessage(storage MessageStorage, cleaner TextCleaner) *Message {
	return &Message{storage: storage, cleaner: cleaner, now: time.Now}
}

func (m *Message) Append(ctx context.Context, boardId string, data MessageCreationData) (domain.Message, error) {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return domain.Message{}, err
	}
	if err := id.Validate(data.SenderId, "sender ID"); err != nil {
		return domain.Message{}, err
	}
	text, err := m.cleaner.Clean(data.Text)
	if err != nil {
		return domain.Message{}, err
	}

	if data.SenderName == "" {
		data.SenderName = domain.SenderNameFallback
	}
	if data.Attachments == nil {
		data.Attachments = []string{}
	}

	msg := domain.Message{
		Id:          id.New(),
		SenderId:    data.SenderId,
		SenderName:  data.SenderName,
		Text:        &text,
		Attachments: data.Attachments,
		CreatedAt:   m.now().UTC(),
		Seen:        []string{},
	}

	if err := m.storage.AppendMessage(ctx, boardId, msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

func (m *Message) Edit(ctx context.Context, boardId, messageId, text string) (domain.Message, error) {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return domain.Message{}, err
	}
	cleaned, err := m.cleaner.Clean(text)
	if err != nil {
		return domain.Message{}, err
	}
	if err := m.storage.SetMessageText(ctx, boardId, messageId, cleaned); err != nil {
		return domain.Message{}, err
	}
	return m.storage.GetMessage(ctx, boardId, messageId)
}

// SoftDelete tombstones the message. First delete wins: once the text
// is null a replay keeps the original deleter and time, and the
// already-tombstoned state is returned unchanged.
func (m *Message) SoftDelete(ctx context.Context, boardId, messageId, deletedBy string, deletedAt *time.Time) (domain.Message, error) {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return domain.Message{}, err
	}
	when := m.now().UTC()
	if deletedAt != nil {
		when = *deletedAt
	}
	if _, err := m.storage.TombstoneMessage(ctx, boardId, messageId, deletedBy, when); err != nil {
		return domain.Message{}, err
	}
	// Guard not matching means either "already tombstoned" (fine) or
	// "no such message"; the read distinguishes the two.
	return m.storage.GetMessage(ctx, boardId, messageId)
}

// ToggleReaction is a single atomic toggle: a presence-guarded pull,
// and only when that matched nothing, a set-add. Either arm is one
// conditional write, so concurrent toggles cannot double-add.
func (m *Message) ToggleReaction(ctx context.Context, boardId, messageId, userId, kind string) (domain.Message, error) {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return domain.Message{}, err
	}
	if err := id.Validate(userId, "user ID"); err != nil {
		return domain.Message{}, err
	}

	removed, err := m.storage.PullReaction(ctx, boardId, messageId, kind, userId)
	if err != nil {
		return domain.Message{}, err
	}
	if !removed {
		if err := m.storage.AddReaction(ctx, boardId, messageId, kind, userId); err != nil {
			return domain.Message{}, err
		}
	}
	return m.storage.GetMessage(ctx, boardId, messageId)
}

// Pin overwrites any prior pin: last pin wins.
func (m *Message) Pin(ctx context.Context, boardId, messageId, pinnedBy string, durationDays int) (domain.Message, error) {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return domain.Message{}, err
	}
	expiry := m.now().UTC().Add(time.Duration(durationDays) * 24 * time.Hour)
	if err := m.storage.SetPin(ctx, boardId, messageId, pinnedBy, expiry); err != nil {
		return domain.Message{}, err
	}
	return m.storage.GetMessage(ctx, boardId, messageId)
}

func (m *Message) Unpin(ctx context.Context, boardId, messageId string) error {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return err
	}
	return m.storage.ClearPin(ctx, boardId, messageId)
}

func (m *Message) MarkSeen(ctx context.Context, boardId, messageId, userId string) (domain.Message, error) {
	if err := validateMessagePath(boardId, messageId); err != nil {
		return domain.Message{}, err
	}
	if err := id.Validate(userId, "seenBy user ID"); err != nil {
		return domain.Message{}, err
	}
	if err := m.storage.AddSeen(ctx, boardId, messageId, userId); err != nil {
		return domain.Message{}, err
	}
	return m.storage.GetMessage(ctx, boardId, messageId)
}

func validateMessagePath(boardId, messageId string) error {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return err
	}
	return id.Validate(messageId, "message ID")
}
