package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/kudos/internal/domain"
)

const maxDescriptionLength = 256

type IssueKudosRequestDTO struct {
	Account     string          `json:"account" example:"alice"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"60"`
	Description string          `json:"description" example:"solar yield"`
}

func (r *IssueKudosRequestDTO) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Account, accountIDRules...),
		validation.Field(&r.Description, validation.Length(0, maxDescriptionLength)),
	)
}

type TransferKudosRequestDTO struct {
	Sender      string          `json:"sender" example:"alice"`
	Receiver    string          `json:"receiver" example:"bob"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"30"`
	Description string          `json:"description" example:"evening surplus"`
}

func (r *TransferKudosRequestDTO) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Sender, accountIDRules...),
		validation.Field(&r.Receiver, accountIDRules...),
		validation.Field(&r.Description, validation.Length(0, maxDescriptionLength)),
	)
}

type TransactionResponseDTO struct {
	ID          string          `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Sender      string          `json:"sender" example:"alice"`
	Receiver    string          `json:"receiver" example:"bob"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"30"`
	Timestamp   time.Time       `json:"timestamp" example:"2026-06-15T12:00:00Z"`
	Description string          `json:"description" example:"evening surplus"`
}

func NewTransactionResponse(tx domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          tx.ID.String(),
		Sender:      tx.SenderID,
		Receiver:    tx.ReceiverID,
		Amount:      tx.Amount,
		Timestamp:   tx.Timestamp,
		Description: tx.Description,
	}
}

type CleanupResponseDTO struct {
	Accounts           int `json:"accounts" example:"12"`
	TransactionsPruned int `json:"transactions_pruned" example:"40"`
	RatingsPruned      int `json:"ratings_pruned" example:"3"`
}

type SettingsResponseDTO struct {
	CreditUnitValue  float64         `json:"credit_unit_value" example:"1"`
	MonthlyLimit     decimal.Decimal `json:"monthly_limit" swaggertype:"string" example:"5000"`
	ExpirationMonths int             `json:"expiration_months" example:"12"`
	MinRating        float64         `json:"min_rating" example:"3"`
}
