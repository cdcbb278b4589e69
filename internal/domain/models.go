package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// SystemMintID is the sender of every externally sourced issuance.
	SystemMintID = "SYSTEM"

	DefaultReputationScore = 3.0
	MinRatingScore         = 0.0
	MaxRatingScore         = 5.0

	ReputationWindow = 180 * 24 * time.Hour
)

const (
	EventKudosIssued      = "kudos.issued"
	EventKudosTransferred = "kudos.transferred"
)

type Account struct {
	ID              string
	Balance         decimal.Decimal
	MonthlyLimit    decimal.Decimal
	LastUpdate      time.Time
	Transactions    []Transaction
	Ratings         []Rating
	ReputationScore float64
}

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	SenderID    string          `json:"sender"`
	ReceiverID  string          `json:"receiver"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}

type Rating struct {
	ID        uuid.UUID `json:"id"`
	RaterID   string    `json:"rater"`
	RatedID   string    `json:"rated"`
	Score     float64   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment,omitempty"`
}

type AccountSummary struct {
	ID               string
	Balance          decimal.Decimal
	MonthlyLimit     decimal.Decimal
	LastUpdate       time.Time
	ReputationScore  float64
	TransactionCount int
	RatingCount      int
}

type Reputation struct {
	AccountID      string
	Score          float64
	RecentRatings  int
	MeetsMinRating bool
}

type CleanupReport struct {
	Accounts           int
	TransactionsPruned int
	RatingsPruned      int
}

type TransactionEvent struct {
	Type        string      `json:"type"`
	Transaction Transaction `json:"transaction"`
}

// Settings are the tunable ledger parameters, read once at construction.
type Settings struct {
	CreditUnitValue  float64
	MonthlyLimit     decimal.Decimal
	ExpirationMonths int
	MinRating        float64
}
