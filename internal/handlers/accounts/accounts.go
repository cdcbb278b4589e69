package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/dto"
	"github.com/GlebRadaev/kudos/pkg/utils"
)

type Service interface {
	CreateAccount(ctx context.Context, accountID string) (domain.AccountSummary, error)
	GetAccount(ctx context.Context, accountID string) (domain.AccountSummary, error)
	ListAccounts(ctx context.Context) []domain.AccountSummary
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidAccountID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateAccount godoc
//
//	@Summary		Open an account
//	@Description	Open a new ledger account with a zero balance and the default reputation score.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Account id"
//	@Success		201		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Account already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.accountService.CreateAccount(r.Context(), req.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAccountResponse(summary))
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{array}	dto.AccountResponseDTO
//	@Router			/api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	summaries := h.accountService.ListAccounts(r.Context())

	response := make([]dto.AccountResponseDTO, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, dto.NewAccountResponse(summary))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAccount godoc
//
//	@Summary		Get account summary
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		string	true	"Account id"
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	summary, err := h.accountService.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(summary))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		string	true	"Account id"
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id}/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	balance, err := h.accountService.GetBalance(r.Context(), accountID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Account: accountID, Balance: balance})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Transactions touching the account, oldest first. Expired entries disappear after cleanup.
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		string	true	"Account id"
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id}/transactions [get]
func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.accountService.GetTransactions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, dto.NewTransactionResponse(tx))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
