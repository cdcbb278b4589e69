package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

func NewAccount(id string, monthlyLimit decimal.Decimal, now time.Time) *Account {
	return &Account{
		ID:              id,
		Balance:         decimal.Zero,
		MonthlyLimit:    monthlyLimit,
		LastUpdate:      now,
		Transactions:    []Transaction{},
		Ratings:         []Rating{},
		ReputationScore: DefaultReputationScore,
	}
}

// SignedAmount is the effect of the transaction on the given account:
// negative for the sender, positive for the receiver.
func (t Transaction) SignedAmount(accountID string) decimal.Decimal {
	switch accountID {
	case t.ReceiverID:
		return t.Amount
	case t.SenderID:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// ValidateTransaction reports whether the balance may move by delta without
// going negative or exceeding the monthly limit.
func (a *Account) ValidateTransaction(delta decimal.Decimal) bool {
	next := a.Balance.Add(delta)
	if next.IsNegative() {
		return false
	}
	if next.GreaterThan(a.MonthlyLimit) {
		return false
	}
	return true
}

func (a *Account) AddTransaction(tx Transaction) {
	a.Transactions = append(a.Transactions, tx)
	a.Balance = a.Balance.Add(tx.SignedAmount(a.ID))
	a.LastUpdate = tx.Timestamp
}

func (a *Account) AddRating(rating Rating, now time.Time) {
	a.Ratings = append(a.Ratings, rating)
	a.LastUpdate = rating.Timestamp
	a.UpdateReputationScore(now)
}

func ValidRatingScore(score float64) bool {
	if math.IsNaN(score) {
		return false
	}
	return score >= MinRatingScore && score <= MaxRatingScore
}

// RecentRatings returns the ratings received inside the reputation window.
func (a *Account) RecentRatings(now time.Time) []Rating {
	cutoff := now.Add(-ReputationWindow)
	recent := make([]Rating, 0, len(a.Ratings))
	for _, r := range a.Ratings {
		if r.Timestamp.After(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent
}

func (a *Account) UpdateReputationScore(now time.Time) {
	recent := a.RecentRatings(now)
	if len(recent) == 0 {
		a.ReputationScore = DefaultReputationScore
		return
	}
	var sum float64
	for _, r := range recent {
		sum += r.Score
	}
	a.ReputationScore = sum / float64(len(recent))
}

// Prune drops expired transactions and ratings, then recomputes the balance
// and the reputation score from what is left. It returns how many records
// of each kind were removed.
func (a *Account) Prune(now time.Time, expirationMonths int) (int, int) {
	kept := make([]Transaction, 0, len(a.Transactions))
	balance := decimal.Zero
	for _, tx := range a.Transactions {
		if !tx.Timestamp.AddDate(0, expirationMonths, 0).After(now) {
			continue
		}
		kept = append(kept, tx)
		balance = balance.Add(tx.SignedAmount(a.ID))
	}
	txPruned := len(a.Transactions) - len(kept)

	recent := a.RecentRatings(now)
	ratingsPruned := len(a.Ratings) - len(recent)

	a.Transactions = kept
	a.Ratings = recent
	a.Balance = balance
	a.UpdateReputationScore(now)

	return txPruned, ratingsPruned
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:               a.ID,
		Balance:          a.Balance,
		MonthlyLimit:     a.MonthlyLimit,
		LastUpdate:       a.LastUpdate,
		ReputationScore:  a.ReputationScore,
		TransactionCount: len(a.Transactions),
		RatingCount:      len(a.Ratings),
	}
}
