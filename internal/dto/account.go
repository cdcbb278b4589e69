package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/kudos/internal/domain"
)

const maxAccountIDLength = 64

var accountIDRules = []validation.Rule{
	validation.Required,
	validation.Length(1, maxAccountIDLength),
	validation.NotIn(domain.SystemMintID).Error("is reserved"),
}

type CreateAccountRequestDTO struct {
	ID string `json:"id" example:"alice"`
}

func (r *CreateAccountRequestDTO) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, accountIDRules...),
	)
}

type AccountResponseDTO struct {
	ID              string          `json:"id" example:"alice"`
	Balance         decimal.Decimal `json:"balance" swaggertype:"string" example:"60"`
	MonthlyLimit    decimal.Decimal `json:"monthly_limit" swaggertype:"string" example:"5000"`
	LastUpdate      time.Time       `json:"last_update" example:"2026-06-15T12:00:00Z"`
	ReputationScore float64         `json:"reputation_score" example:"4.5"`
	Transactions    int             `json:"transactions" example:"3"`
	Ratings         int             `json:"ratings" example:"2"`
}

func NewAccountResponse(s domain.AccountSummary) AccountResponseDTO {
	return AccountResponseDTO{
		ID:              s.ID,
		Balance:         s.Balance,
		MonthlyLimit:    s.MonthlyLimit,
		LastUpdate:      s.LastUpdate,
		ReputationScore: s.ReputationScore,
		Transactions:    s.TransactionCount,
		Ratings:         s.RatingCount,
	}
}

type BalanceResponseDTO struct {
	Account string          `json:"account" example:"alice"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"60"`
}
