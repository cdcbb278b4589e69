package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/dto"
	"github.com/GlebRadaev/kudos/pkg/auth"
	"github.com/GlebRadaev/kudos/pkg/utils"
)

type Service interface {
	AddRating(ctx context.Context, raterID, ratedID string, score float64, comment string) (domain.Rating, error)
	GetRatings(ctx context.Context, accountID string) ([]domain.Rating, error)
	GetReputation(ctx context.Context, accountID string) (domain.Reputation, error)
}

type RatingHandler struct {
	ratingService Service
}

func New(ratingService Service) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidRatingScore):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// AddRating godoc
//
//	@Summary		Rate an account
//	@Description	Record a peer evaluation in [0, 5] and recompute the rated account's reputation.
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddRatingRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RatingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not the rater"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		422	{object}	utils.Response	"Score out of range"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ratings [post]
func (h *RatingHandler) AddRating(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRatingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !auth.ActsAs(r.Context(), req.Rater) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	rating, err := h.ratingService.AddRating(r.Context(), req.Rater, req.Rated, *req.Score, req.Comment)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRatingResponse(rating))
}

// GetRatings godoc
//
//	@Summary		Get ratings received
//	@Tags			Ratings
//	@Produce		json
//	@Param			id	path		string	true	"Account id"
//	@Success		200	{array}		dto.RatingResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id}/ratings [get]
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingService.GetRatings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if len(ratings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.RatingResponseDTO, 0, len(ratings))
	for _, rating := range ratings {
		response = append(response, dto.NewRatingResponse(rating))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReputation godoc
//
//	@Summary		Get reputation
//	@Tags			Ratings
//	@Produce		json
//	@Param			id	path		string	true	"Account id"
//	@Success		200	{object}	dto.ReputationResponseDTO
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id}/reputation [get]
func (h *RatingHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	reputation, err := h.ratingService.GetReputation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReputationResponse(reputation))
}
