package ratingservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/kudos/internal/domain"
)

type AccountRepo interface {
	Update(ctx context.Context, id string, fn func(*domain.Account) error) error
	View(ctx context.Context, id string, fn func(*domain.Account) error) error
}

type Service struct {
	accountRepo AccountRepo
	minRating   float64
	now         func() time.Time
}

func New(accountRepo AccountRepo, settings domain.Settings) *Service {
	return &Service{
		accountRepo: accountRepo,
		minRating:   settings.MinRating,
		now:         time.Now,
	}
}

func (s *Service) exists(ctx context.Context, accountID string) error {
	return s.accountRepo.View(ctx, accountID, func(*domain.Account) error { return nil })
}

// AddRating records a peer evaluation of ratedID and recomputes its
// reputation score.
func (s *Service) AddRating(ctx context.Context, raterID, ratedID string, score float64, comment string) (domain.Rating, error) {
	if err := s.exists(ctx, raterID); err != nil {
		zap.L().Info("rating rejected: unknown rater", zap.String("rater", raterID))
		return domain.Rating{}, err
	}
	if err := s.exists(ctx, ratedID); err != nil {
		zap.L().Info("rating rejected: unknown rated account", zap.String("rated", ratedID))
		return domain.Rating{}, err
	}
	if !domain.ValidRatingScore(score) {
		zap.L().Info("rating rejected: score out of range", zap.Float64("score", score))
		return domain.Rating{}, fmt.Errorf("%w: %v is outside [%v, %v]",
			domain.ErrInvalidRatingScore, score, domain.MinRatingScore, domain.MaxRatingScore)
	}

	now := s.now()
	rating := domain.Rating{
		ID:        uuid.New(),
		RaterID:   raterID,
		RatedID:   ratedID,
		Score:     score,
		Timestamp: now,
		Comment:   comment,
	}
	err := s.accountRepo.Update(ctx, ratedID, func(account *domain.Account) error {
		account.AddRating(rating, now)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to store rating", zap.Error(err))
		return domain.Rating{}, err
	}

	zap.L().Info("rating added",
		zap.String("rater", raterID),
		zap.String("rated", ratedID),
		zap.Float64("score", score),
	)
	return rating, nil
}

func (s *Service) GetReputationScore(ctx context.Context, accountID string) (float64, error) {
	var score float64
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		score = account.ReputationScore
		return nil
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

// GetReputation reports the stored score together with the number of ratings
// currently inside the window. MeetsMinRating is informational only.
func (s *Service) GetReputation(ctx context.Context, accountID string) (domain.Reputation, error) {
	now := s.now()
	var reputation domain.Reputation
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		reputation = domain.Reputation{
			AccountID:      account.ID,
			Score:          account.ReputationScore,
			RecentRatings:  len(account.RecentRatings(now)),
			MeetsMinRating: account.ReputationScore >= s.minRating,
		}
		return nil
	})
	return reputation, err
}

func (s *Service) GetRatings(ctx context.Context, accountID string) ([]domain.Rating, error) {
	var ratings []domain.Rating
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		ratings = make([]domain.Rating, len(account.Ratings))
		copy(ratings, account.Ratings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
