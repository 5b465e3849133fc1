package service

import (
	"context"
	"strings"
	"time"

	"github.com/brainiacs-dev/brainiacs/internal/domain"
	"github.com/brainiacs-dev/brainiacs/internal/id"
)

const defaultUserRole = "user"

type UserService interface {
	Register(ctx context.Context, name, email, role string) (domain.User, error)
	ByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
}

type UserStorage interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SearchUsers(ctx context.Context, prefix string) ([]domain.User, error)
}

type User struct {
	storage UserStorage
	now     func() time.Time
}

func NewUser(storage UserStorage) *User {
	return &User{storage: storage, now: time.Now}
}

func (u *User) Register(ctx context.Context, name, email, role string) (domain.User, error) {
	if role == "" {
		role = defaultUserRole
	}
	user := domain.User{
		Id:        id.New(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Role:      role,
		CreatedAt: u.now().UTC(),
	}
	if err := u.storage.SaveUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *User) ByEmail(ctx context.Context, email string) (domain.User, error) {
	return u.storage.FindByEmail(ctx, email)
}

func (u *User) List(ctx context.Context) ([]domain.User, error) {
	return u.storage.ListUsers(ctx)
}

// Search matches on the first three words of the query, prefix style.
func (u *User) Search(ctx context.Context, query string) ([]domain.User, error) {
	words := strings.Fields(query)
	if len(words) > 3 {
		words = words[:3]
	}
	return u.storage.SearchUsers(ctx, strings.Join(words, " "))
}
