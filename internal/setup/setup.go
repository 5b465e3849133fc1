package setup

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/brainiacs-dev/brainiacs/internal/config"
	"github.com/brainiacs-dev/brainiacs/internal/handler"
	"github.com/brainiacs-dev/brainiacs/internal/middleware"
	"github.com/brainiacs-dev/brainiacs/internal/service"
	mongostorage "github.com/brainiacs-dev/brainiacs/internal/storage/mongo"
	"github.com/brainiacs-dev/brainiacs/internal/storage/pg"
	"github.com/brainiacs-dev/brainiacs/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config      *config.Config
	Boards      *mongostorage.Storage
	Users       *pg.Storage
	Handler     *handler.Handler
	RateLimiter *middleware.RateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	boards, err := mongostorage.New(ctx, cfg.Private.MongoURI, cfg.Private.MongoDB)
	if err != nil {
		return nil, err
	}

	users, err := pg.New(cfg.Private.Pg)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Private.RedisAddr})
	limiter := middleware.NewRateLimiter(rdb, "rl:mutation", cfg.Public.MutationRateLimit, cfg.Public.MutationRateWindow)

	board := service.NewBoard(boards, users)
	message := service.NewMessage(boards, utils.NewMessageText())
	poll := service.NewPoll(boards)
	user := service.NewUser(users)

	h := handler.New(board, message, poll, user)

	return &Dependencies{
		Config:      cfg,
		Boards:      boards,
		Users:       users,
		Handler:     h,
		RateLimiter: limiter,
	}, nil
}

func (d *Dependencies) Cleanup(ctx context.Context) {
	_ = d.Boards.Cleanup(ctx)
	_ = d.Users.Cleanup()
}
