package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/GlebRadaev/kudos/internal/domain"
)

const maxCommentLength = 1024

type AddRatingRequestDTO struct {
	Rater   string   `json:"rater" example:"bob"`
	Rated   string   `json:"rated" example:"alice"`
	Score   *float64 `json:"score" example:"4"`
	Comment string   `json:"comment" example:"delivered on time"`
}

func (r *AddRatingRequestDTO) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Rater, accountIDRules...),
		validation.Field(&r.Rated, accountIDRules...),
		validation.Field(&r.Score, validation.NotNil),
		validation.Field(&r.Comment, validation.Length(0, maxCommentLength)),
	)
}

type RatingResponseDTO struct {
	ID        string    `json:"id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	Rater     string    `json:"rater" example:"bob"`
	Rated     string    `json:"rated" example:"alice"`
	Score     float64   `json:"score" example:"4"`
	Timestamp time.Time `json:"timestamp" example:"2026-06-15T12:00:00Z"`
	Comment   string    `json:"comment,omitempty" example:"delivered on time"`
}

func NewRatingResponse(r domain.Rating) RatingResponseDTO {
	return RatingResponseDTO{
		ID:        r.ID.String(),
		Rater:     r.RaterID,
		Rated:     r.RatedID,
		Score:     r.Score,
		Timestamp: r.Timestamp,
		Comment:   r.Comment,
	}
}

type ReputationResponseDTO struct {
	Account        string  `json:"account" example:"alice"`
	Score          float64 `json:"score" example:"4.5"`
	RecentRatings  int     `json:"recent_ratings" example:"2"`
	MeetsMinRating bool    `json:"meets_min_rating" example:"true"`
}

func NewReputationResponse(r domain.Reputation) ReputationResponseDTO {
	return ReputationResponseDTO{
		Account:        r.AccountID,
		Score:          r.Score,
		RecentRatings:  r.RecentRatings,
		MeetsMinRating: r.MeetsMinRating,
	}
}
