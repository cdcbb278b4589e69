package kudos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/dto"
	"github.com/GlebRadaev/kudos/pkg/auth"
	"github.com/GlebRadaev/kudos/pkg/utils"
)

type Service interface {
	AddKudos(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.Transaction, error)
	UseKudos(ctx context.Context, senderID, receiverID string, amount decimal.Decimal, description string) (domain.Transaction, error)
	CleanupExpired(ctx context.Context) domain.CleanupReport
	Settings() domain.Settings
}

type KudosHandler struct {
	kudosService Service
}

func New(kudosService Service) *KudosHandler {
	return &KudosHandler{
		kudosService: kudosService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransaction):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidAccountID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// IssueKudos godoc
//
//	@Summary		Issue kudos
//	@Description	Mint credits to an account. The account is opened on its first issuance.
//	@Tags			Kudos
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.IssueKudosRequestDTO	true	"Issuance"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		422	{object}	utils.Response	"Invalid transaction"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/kudos/issue [post]
func (h *KudosHandler) IssueKudos(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueKudosRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.kudosService.AddKudos(r.Context(), req.Account, req.Amount, req.Description)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// TransferKudos godoc
//
//	@Summary		Transfer kudos
//	@Description	Move credits from sender to receiver. The sender is debited and the receiver credited.
//	@Tags			Kudos
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.TransferKudosRequestDTO	true	"Transfer"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not the sender"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		422	{object}	utils.Response	"Invalid transaction"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/kudos/transfer [post]
func (h *KudosHandler) TransferKudos(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferKudosRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !auth.ActsAs(r.Context(), req.Sender) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	tx, err := h.kudosService.UseKudos(r.Context(), req.Sender, req.Receiver, req.Amount, req.Description)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// Cleanup godoc
//
//	@Summary		Prune expired records
//	@Description	Drop expired transactions and ratings, then recompute balances and reputation scores.
//	@Tags			Maintenance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CleanupResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Router			/api/maintenance/cleanup [post]
func (h *KudosHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	report := h.kudosService.CleanupExpired(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.CleanupResponseDTO{
		Accounts:           report.Accounts,
		TransactionsPruned: report.TransactionsPruned,
		RatingsPruned:      report.RatingsPruned,
	})
}

// GetSettings godoc
//
//	@Summary		Ledger settings
//	@Tags			Kudos
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Router			/api/settings [get]
func (h *KudosHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.kudosService.Settings()
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponseDTO{
		CreditUnitValue:  settings.CreditUnitValue,
		MonthlyLimit:     settings.MonthlyLimit,
		ExpirationMonths: settings.ExpirationMonths,
		MinRating:        settings.MinRating,
	})
}
