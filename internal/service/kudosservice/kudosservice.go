package kudosservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/kudos/internal/domain"
)

const (
	defaultIssueDescription    = "energy production"
	defaultTransferDescription = "energy exchange"
	creditPrecision            = 4
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	Upsert(ctx context.Context, id string, create func() *domain.Account, fn func(*domain.Account) error) error
	UpdatePair(ctx context.Context, firstID, secondID string, fn func(first, second *domain.Account) error) error
	View(ctx context.Context, id string, fn func(*domain.Account) error) error
	ForEach(ctx context.Context, fn func(*domain.Account))
	List(ctx context.Context) []domain.AccountSummary
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
}

type Service struct {
	accountRepo AccountRepo
	publisher   EventPublisher
	settings    domain.Settings
	now         func() time.Time
}

func New(accountRepo AccountRepo, publisher EventPublisher, settings domain.Settings) *Service {
	return &Service{
		accountRepo: accountRepo,
		publisher:   publisher,
		settings:    settings,
		now:         time.Now,
	}
}

func (s *Service) Settings() domain.Settings {
	return s.settings
}

func validAccountID(id string) error {
	if id == "" || id == domain.SystemMintID {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAccountID, id)
	}
	return nil
}

func (s *Service) CreateAccount(ctx context.Context, accountID string) (domain.AccountSummary, error) {
	if err := validAccountID(accountID); err != nil {
		return domain.AccountSummary{}, err
	}
	account := domain.NewAccount(accountID, s.settings.MonthlyLimit, s.now())
	if err := s.accountRepo.Create(ctx, account); err != nil {
		zap.L().Info("can't create account", zap.String("account", accountID), zap.Error(err))
		return domain.AccountSummary{}, err
	}
	zap.L().Info("account created", zap.String("account", accountID))
	return account.Summary(), nil
}

// AddKudos issues amount credits from the mint to the account, creating the
// account first when it does not exist yet.
func (s *Service) AddKudos(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.Transaction, error) {
	if err := validAccountID(accountID); err != nil {
		return domain.Transaction{}, err
	}
	if !amount.IsPositive() {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidTransaction)
	}
	if description == "" {
		description = defaultIssueDescription
	}

	now := s.now()
	tx := domain.Transaction{
		ID:          uuid.New(),
		SenderID:    domain.SystemMintID,
		ReceiverID:  accountID,
		Amount:      amount,
		Timestamp:   now,
		Description: description,
	}

	create := func() *domain.Account {
		return domain.NewAccount(accountID, s.settings.MonthlyLimit, now)
	}
	err := s.accountRepo.Upsert(ctx, accountID, create, func(account *domain.Account) error {
		if !account.ValidateTransaction(amount) {
			return fmt.Errorf("%w: monthly limit of %s exceeded", domain.ErrInvalidTransaction, account.MonthlyLimit)
		}
		account.AddTransaction(tx)
		return nil
	})
	if err != nil {
		zap.L().Info("kudos issuance rejected",
			zap.String("account", accountID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return domain.Transaction{}, err
	}

	zap.L().Info("kudos issued", zap.String("account", accountID), zap.String("amount", amount.String()))
	s.publish(ctx, domain.EventKudosIssued, tx)
	return tx, nil
}

// UseKudos moves amount credits from sender to receiver. The sender is debited
// and the receiver credited; the one transaction lands in both histories.
func (s *Service) UseKudos(ctx context.Context, senderID, receiverID string, amount decimal.Decimal, description string) (domain.Transaction, error) {
	if description == "" {
		description = defaultTransferDescription
	}
	tx := domain.Transaction{
		ID:          uuid.New(),
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Amount:      amount,
		Timestamp:   s.now(),
		Description: description,
	}

	err := s.accountRepo.UpdatePair(ctx, senderID, receiverID, func(sender, receiver *domain.Account) error {
		if !amount.IsPositive() {
			return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidTransaction)
		}
		if !sender.ValidateTransaction(amount.Neg()) {
			return fmt.Errorf("%w: insufficient balance", domain.ErrInvalidTransaction)
		}
		if !receiver.ValidateTransaction(amount) {
			return fmt.Errorf("%w: receiver monthly limit exceeded", domain.ErrInvalidTransaction)
		}
		sender.AddTransaction(tx)
		receiver.AddTransaction(tx)
		return nil
	})
	if err != nil {
		zap.L().Info("kudos transfer rejected",
			zap.String("sender", senderID),
			zap.String("receiver", receiverID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return domain.Transaction{}, err
	}

	zap.L().Info("kudos transferred",
		zap.String("sender", senderID),
		zap.String("receiver", receiverID),
		zap.String("amount", amount.String()),
	)
	s.publish(ctx, domain.EventKudosTransferred, tx)
	return tx, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		balance = account.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		transactions = make([]domain.Transaction, len(account.Transactions))
		copy(transactions, account.Transactions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (domain.AccountSummary, error) {
	var summary domain.AccountSummary
	err := s.accountRepo.View(ctx, accountID, func(account *domain.Account) error {
		summary = account.Summary()
		return nil
	})
	return summary, err
}

func (s *Service) ListAccounts(ctx context.Context) []domain.AccountSummary {
	return s.accountRepo.List(ctx)
}

// CleanupExpired prunes expired transactions and ratings from every account
// and recomputes balances and reputation scores from what remains.
func (s *Service) CleanupExpired(ctx context.Context) domain.CleanupReport {
	now := s.now()
	var report domain.CleanupReport
	s.accountRepo.ForEach(ctx, func(account *domain.Account) {
		txPruned, ratingsPruned := account.Prune(now, s.settings.ExpirationMonths)
		report.Accounts++
		report.TransactionsPruned += txPruned
		report.RatingsPruned += ratingsPruned
	})

	zap.L().Info("expired kudos cleaned up",
		zap.Int("accounts", report.Accounts),
		zap.Int("transactionsPruned", report.TransactionsPruned),
		zap.Int("ratingsPruned", report.RatingsPruned),
	)
	return report
}

// CreditsForEnergy converts produced energy into credits at the configured
// unit value.
func (s *Service) CreditsForEnergy(energyKWh float64) decimal.Decimal {
	return decimal.NewFromFloat(energyKWh).
		Div(decimal.NewFromFloat(s.settings.CreditUnitValue)).
		Round(creditPrecision)
}

func (s *Service) publish(ctx context.Context, eventType string, tx domain.Transaction) {
	event := domain.TransactionEvent{Type: eventType, Transaction: tx}
	if err := s.publisher.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish transaction event",
			zap.String("type", eventType),
			zap.String("transaction", tx.ID.String()),
			zap.Error(err),
		)
	}
}
