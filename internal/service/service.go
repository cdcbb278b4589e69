package service

import (
	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/handlers/accounts"
	"github.com/GlebRadaev/kudos/internal/handlers/kudos"
	"github.com/GlebRadaev/kudos/internal/handlers/ratings"
	"github.com/GlebRadaev/kudos/internal/repo"
	kudosservice "github.com/GlebRadaev/kudos/internal/service/kudosservice"
	ratingservice "github.com/GlebRadaev/kudos/internal/service/ratingservice"
)

// Services is the ledger handle shared by the HTTP layer and the metering
// poller. Both services work on the same accounts.
type Services struct {
	AccountService accounts.Service
	KudosService   kudos.Service
	RatingService  ratings.Service

	Ledger *kudosservice.Service
}

func New(repo *repo.Repositories, publisher kudosservice.EventPublisher, settings domain.Settings) *Services {
	kudosService := kudosservice.New(repo.AccountRepo, publisher, settings)
	ratingService := ratingservice.New(repo.AccountRepo, settings)

	return &Services{
		AccountService: kudosService,
		KudosService:   kudosService,
		RatingService:  ratingService,
		Ledger:         kudosService,
	}
}
