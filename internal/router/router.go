package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brainiacs-dev/brainiacs/internal/middleware/metrics"
	"github.com/brainiacs-dev/brainiacs/internal/setup"
)

// New wires every route 1:1 with an engine operation. Mutation routes
// share the redis-backed per-IP rate limit; reads are unlimited.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config
	h := deps.Handler

	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.Public.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metrics.Middleware)

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Get("/users", h.GetUsers)
	r.Get("/users/search", h.SearchUsers)
	r.Get("/users/{email}", h.GetUserByEmail)

	r.Get("/boards", h.GetBoards)
	r.Get("/boards/{board}", h.GetBoard)
	r.Get("/boards/{board}/polls", h.ListPolls)

	// Mutations
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.Limit)

		r.Post("/users", h.RegisterUser)

		r.Post("/boards", h.CreateBoard)
		r.Put("/boards/{board}", h.UpdateBoardMembers)
		r.Delete("/boards/{board}", h.DeleteBoard)

		r.Put("/boards/{board}/messages", h.AppendMessage)
		r.Patch("/boards/{board}/messages/{message}", h.EditMessage)
		r.Delete("/boards/{board}/messages/{message}", h.DeleteMessage)
		r.Patch("/boards/{board}/messages/{message}/seen", h.MarkMessageSeen)
		r.Patch("/boards/{board}/messages/{message}/react", h.ReactToMessage)
		r.Patch("/boards/{board}/messages/{message}/pin", h.PinMessage)
		r.Patch("/boards/{board}/messages/{message}/unpin", h.UnpinMessage)

		r.Post("/boards/{board}/polls", h.CreatePoll)
		r.Patch("/boards/{board}/polls/{poll}/vote", h.VoteOnPoll)
		r.Delete("/boards/{board}/polls/{poll}", h.RemovePoll)
	})

	return r
}
