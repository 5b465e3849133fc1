package service

import (
	"context"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	internal_errors "github.com/brainiacs-dev/brainiacs/internal/errors"
	"github.com/brainiacs-dev/brainiacs/internal/id"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        string
	Description string
	Visibility  string
	Theme       string
	CreatedBy   string
}

const defaultTheme = "#3b82f6"

type BoardService interface {
	Create(ctx context.Context, data BoardCreationData) (domain.Board, error)
	Get(ctx context.Context, boardId, viewerId string) (domain.BoardView, error)
	List(ctx context.Context) ([]domain.BoardMetadata, error)
	UpdateMembers(ctx context.Context, boardId string, members []domain.Member) error
	Delete(ctx context.Context, boardId string) error
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, board domain.Board) error
	GetBoard(ctx context.Context, boardId string) (domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	ReplaceMembers(ctx context.Context, boardId string, members []domain.Member) error
	DeleteBoard(ctx context.Context, boardId string) error
}

// UserResolver is the slice of the external user store the board read
// composition needs.
type UserResolver interface {
	FindById(ctx context.Context, id string) (domain.User, error)
	FindManyByIds(ctx context.Context, ids []string) ([]domain.User, error)
}

type Board struct {
	storage BoardStorage
	users   UserResolver
	now     func() time.Time
}

func NewBoard(storage BoardStorage, users UserResolver) *Board {
	return &Board{storage: storage, users: users, now: time.Now}
}

func (b *Board) Create(ctx context.Context, data BoardCreationData) (domain.Board, error) {
	if err := id.Validate(data.CreatedBy, "createdBy"); err != nil {
		return domain.Board{}, err
	}
	if _, err := b.users.FindById(ctx, data.CreatedBy); err != nil {
		if internal_errors.StatusCode(err) == 404 {
			return domain.Board{}, internal_errors.NotFound("Creator not found")
		}
		return domain.Board{}, err
	}

	if data.Visibility == "" {
		data.Visibility = domain.VisibilityPublic
	}
	if data.Theme == "" {
		data.Theme = defaultTheme
	}

	board := domain.Board{
		Id:          id.New(),
		Name:        data.Name,
		Description: data.Description,
		Visibility:  data.Visibility,
		Theme:       data.Theme,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   b.now().UTC(),
		Members:     []domain.Member{{UserId: data.CreatedBy, Role: domain.RoleAdmin}},
		Messages:    []domain.Message{},
		Polls:       []domain.Poll{},
	}

	if err := b.storage.CreateBoard(ctx, board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// Get assembles the full board response in one pass: members joined
// with fresh user-store identity, the viewer's unseen count, the last
// message, currently valid pins and polls with their derived activity.
func (b *Board) Get(ctx context.Context, boardId, viewerId string) (domain.BoardView, error) {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return domain.BoardView{}, err
	}

	board, err := b.storage.GetBoard(ctx, boardId)
	if err != nil {
		return domain.BoardView{}, err
	}

	members, err := b.resolveMembers(ctx, board.Members)
	if err != nil {
		return domain.BoardView{}, err
	}

	now := b.now()
	polls := make([]domain.PollView, len(board.Polls))
	for i, poll := range board.Polls {
		polls[i] = poll.ViewAt(now)
	}

	return domain.BoardView{
		Board:          board,
		Members:        members,
		UnseenCount:    board.UnseenCount(viewerId),
		LastMessage:    board.LastMessage(),
		PinnedMessages: board.ValidPins(now),
		Polls:          polls,
	}, nil
}

func (b *Board) List(ctx context.Context) ([]domain.BoardMetadata, error) {
	boards, err := b.storage.ListBoards(ctx)
	if err != nil {
		return nil, err
	}
	metadata := make([]domain.BoardMetadata, len(boards))
	for i := range boards {
		metadata[i] = boards[i].Metadata()
	}
	return metadata, nil
}

func (b *Board) UpdateMembers(ctx context.Context, boardId string, members []domain.Member) error {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return err
	}
	for i := range members {
		if err := id.Validate(members[i].UserId, "member userId"); err != nil {
			return err
		}
		if members[i].Role == "" {
			members[i].Role = domain.RoleMember
		}
	}
	return b.storage.ReplaceMembers(ctx, boardId, members)
}

func (b *Board) Delete(ctx context.Context, boardId string) error {
	if err := id.Validate(boardId, "board ID"); err != nil {
		return err
	}
	return b.storage.DeleteBoard(ctx, boardId)
}

// resolveMembers is a read-time projection: display fields come from
// the user store on every read, falling back to "Unknown" for ids that
// no longer resolve. Nothing here is persisted back.
func (b *Board) resolveMembers(ctx context.Context, members []domain.Member) ([]domain.MemberProfile, error) {
	ids := make([]string, len(members))
	for i := range members {
		ids[i] = members[i].UserId
	}

	users, err := b.users.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]domain.User, len(users))
	for _, u := range users {
		byId[u.Id] = u
	}

	profiles := make([]domain.MemberProfile, len(members))
	for i, m := range members {
		if m.Role == "" {
			m.Role = domain.RoleMember
		}
		profile := domain.MemberProfile{Member: m, Name: "Unknown", Email: "Unknown"}
		if u, ok := byId[m.UserId]; ok {
			profile.Name = u.Name
			profile.Email = u.Email
		}
		profiles[i] = profile
	}
	return profiles, nil
}
