package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/kudos/docs"
	accounthandlers "github.com/GlebRadaev/kudos/internal/handlers/accounts"
	kudoshandlers "github.com/GlebRadaev/kudos/internal/handlers/kudos"
	ratinghandlers "github.com/GlebRadaev/kudos/internal/handlers/ratings"
	"github.com/GlebRadaev/kudos/internal/service"
	"github.com/GlebRadaev/kudos/pkg/auth"
)

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type KudosHandler interface {
	IssueKudos(w http.ResponseWriter, r *http.Request)
	TransferKudos(w http.ResponseWriter, r *http.Request)
	Cleanup(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	AddRating(w http.ResponseWriter, r *http.Request)
	GetRatings(w http.ResponseWriter, r *http.Request)
	GetReputation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	KudosHandler   KudosHandler
	RatingHandler  RatingHandler

	// JWTService is nil when authentication is disabled.
	JWTService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(s.AccountService),
		KudosHandler:   kudoshandlers.New(s.KudosService),
		RatingHandler:  ratinghandlers.New(s.RatingService),
		JWTService:     jwtService,
	}
}

func (h *Handlers) authenticated() []func(http.Handler) http.Handler {
	if h.JWTService == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{auth.Middleware(h.JWTService)}
}

func (h *Handlers) admin() []func(http.Handler) http.Handler {
	if h.JWTService == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{auth.Middleware(h.JWTService), auth.RequireRole(auth.RoleAdmin)}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", h.KudosHandler.GetSettings)
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.AccountHandler.ListAccounts)
			r.With(h.authenticated()...).Post("/", h.AccountHandler.CreateAccount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetAccount)
				r.Get("/balance", h.AccountHandler.GetBalance)
				r.Get("/transactions", h.AccountHandler.GetTransactions)
				r.Get("/ratings", h.RatingHandler.GetRatings)
				r.Get("/reputation", h.RatingHandler.GetReputation)
			})
		})
		r.Route("/kudos", func(r chi.Router) {
			r.With(h.admin()...).Post("/issue", h.KudosHandler.IssueKudos)
			r.With(h.authenticated()...).Post("/transfer", h.KudosHandler.TransferKudos)
		})
		r.With(h.authenticated()...).Post("/ratings", h.RatingHandler.AddRating)
		r.With(h.admin()...).Post("/maintenance/cleanup", h.KudosHandler.Cleanup)
	})

	return r
}
