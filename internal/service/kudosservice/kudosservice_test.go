package kudosservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/kudos/internal/domain"
	accountrepo "github.com/GlebRadaev/kudos/internal/repo/account-repo"
)

var start = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func settings(limit int64) domain.Settings {
	return domain.Settings{
		CreditUnitValue:  1.0,
		MonthlyLimit:     decimal.NewFromInt(limit),
		ExpirationMonths: 12,
		MinRating:        3.0,
	}
}

// NewMock wires the service to a real in-memory repository, a mocked
// publisher and a clock the test can move.
func NewMock(t *testing.T, limit int64) (*Service, *MockEventPublisher, *time.Time) {
	ctrl := gomock.NewController(t)
	publisher := NewMockEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	clock := start
	service := New(accountrepo.New(), publisher, settings(limit))
	service.now = func() time.Time { return clock }
	return service, publisher, &clock
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertBalance(t *testing.T, s *Service, id string, want int64) {
	t.Helper()
	balance, err := s.GetBalance(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec(want)), "balance of %s: got %s, want %d", id, balance, want)
}

func TestCreateAccount(t *testing.T) {
	service, _, _ := NewMock(t, 5000)
	ctx := context.Background()

	tests := []struct {
		name          string
		accountID     string
		expectedError error
	}{
		{name: "Create new account", accountID: "alice"},
		{name: "Account already exists", accountID: "alice", expectedError: domain.ErrAccountAlreadyExists},
		{name: "Empty id", accountID: "", expectedError: domain.ErrInvalidAccountID},
		{name: "Mint id is reserved", accountID: domain.SystemMintID, expectedError: domain.ErrInvalidAccountID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := service.CreateAccount(ctx, tt.accountID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.accountID, summary.ID)
			assert.True(t, summary.Balance.IsZero())
			assert.True(t, summary.MonthlyLimit.Equal(dec(5000)))
			assert.Equal(t, domain.DefaultReputationScore, summary.ReputationScore)
		})
	}
}

func TestAddKudos(t *testing.T) {
	ctx := context.Background()

	t.Run("Issue to existing account", func(t *testing.T) {
		service, _, _ := NewMock(t, 5000)
		_, err := service.CreateAccount(ctx, "alice")
		require.NoError(t, err)

		tx, err := service.AddKudos(ctx, "alice", dec(60), "solar yield")
		require.NoError(t, err)

		assert.Equal(t, domain.SystemMintID, tx.SenderID)
		assert.Equal(t, "alice", tx.ReceiverID)
		assert.Equal(t, "solar yield", tx.Description)
		assert.Equal(t, start, tx.Timestamp)
		assertBalance(t, service, "alice", 60)
	})

	t.Run("Unknown account is created", func(t *testing.T) {
		service, _, _ := NewMock(t, 5000)

		tx, err := service.AddKudos(ctx, "carol", dec(10), "")
		require.NoError(t, err)

		assert.Equal(t, defaultIssueDescription, tx.Description)
		assertBalance(t, service, "carol", 10)
	})

	t.Run("Monthly limit breach leaves balance unchanged", func(t *testing.T) {
		service, _, _ := NewMock(t, 100)
		_, err := service.AddKudos(ctx, "alice", dec(60), "x")
		require.NoError(t, err)

		_, err = service.AddKudos(ctx, "alice", dec(50), "x")

		assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
		assertBalance(t, service, "alice", 60)
		txs, err := service.GetTransactions(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("Issuance up to the limit is accepted", func(t *testing.T) {
		service, _, _ := NewMock(t, 100)

		_, err := service.AddKudos(ctx, "alice", dec(100), "x")

		require.NoError(t, err)
		assertBalance(t, service, "alice", 100)
	})

	t.Run("Rejected first issuance does not create the account", func(t *testing.T) {
		service, _, _ := NewMock(t, 100)

		_, err := service.AddKudos(ctx, "alice", dec(500), "x")

		assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
		_, err = service.GetBalance(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("Non positive amounts are rejected", func(t *testing.T) {
		service, _, _ := NewMock(t, 100)

		for _, amount := range []decimal.Decimal{dec(0), dec(-5)} {
			_, err := service.AddKudos(ctx, "alice", amount, "x")
			assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
		}
	})
}

func TestAddKudos_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockEventPublisher(ctrl)
	service := New(accountrepo.New(), publisher, settings(5000))

	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.TransactionEvent) error {
			assert.Equal(t, domain.EventKudosIssued, event.Type)
			assert.Equal(t, "alice", event.Transaction.ReceiverID)
			return errors.New("broker down")
		})

	_, err := service.AddKudos(context.Background(), "alice", dec(5), "x")

	require.NoError(t, err, "publish failures must not fail a committed issuance")
	assertBalance(t, service, "alice", 5)
}

func TestUseKudos(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, limit int64) *Service {
		service, _, _ := NewMock(t, limit)
		_, err := service.CreateAccount(ctx, "alice")
		require.NoError(t, err)
		_, err = service.AddKudos(ctx, "alice", dec(60), "solar yield")
		require.NoError(t, err)
		_, err = service.CreateAccount(ctx, "bob")
		require.NoError(t, err)
		return service
	}

	t.Run("Debits sender and credits receiver", func(t *testing.T) {
		service := setup(t, 5000)

		tx, err := service.UseKudos(ctx, "alice", "bob", dec(30), "")
		require.NoError(t, err)

		assert.Equal(t, "alice", tx.SenderID)
		assert.Equal(t, "bob", tx.ReceiverID)
		assert.Equal(t, defaultTransferDescription, tx.Description)
		assertBalance(t, service, "alice", 30)
		assertBalance(t, service, "bob", 30)

		aliceTxs, err := service.GetTransactions(ctx, "alice")
		require.NoError(t, err)
		bobTxs, err := service.GetTransactions(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, aliceTxs, 2)
		require.Len(t, bobTxs, 1)
		assert.Equal(t, tx.ID, aliceTxs[1].ID)
		assert.Equal(t, tx.ID, bobTxs[0].ID)
	})

	tests := []struct {
		name          string
		sender        string
		receiver      string
		amount        decimal.Decimal
		limit         int64
		expectedError error
	}{
		{name: "Unknown sender", sender: "carol", receiver: "bob", amount: dec(1), limit: 5000, expectedError: domain.ErrAccountNotFound},
		{name: "Unknown receiver", sender: "alice", receiver: "carol", amount: dec(1), limit: 5000, expectedError: domain.ErrAccountNotFound},
		{name: "Insufficient balance", sender: "alice", receiver: "bob", amount: dec(61), limit: 5000, expectedError: domain.ErrInvalidTransaction},
		{name: "Zero amount", sender: "alice", receiver: "bob", amount: dec(0), limit: 5000, expectedError: domain.ErrInvalidTransaction},
		{name: "Negative amount", sender: "alice", receiver: "bob", amount: dec(-10), limit: 5000, expectedError: domain.ErrInvalidTransaction},
		{name: "Self transfer", sender: "alice", receiver: "alice", amount: dec(10), limit: 5000, expectedError: domain.ErrInvalidTransaction},
		{name: "Transfer up to receiver limit", sender: "alice", receiver: "bob", amount: dec(60), limit: 60, expectedError: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setup(t, tt.limit)

			_, err := service.UseKudos(ctx, tt.sender, tt.receiver, tt.amount, "x")
			if tt.expectedError == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
			assertBalance(t, service, "alice", 60)
			assertBalance(t, service, "bob", 0)
		})
	}

	t.Run("Receiver over its limit is rejected on both sides", func(t *testing.T) {
		service := setup(t, 100)
		_, err := service.AddKudos(ctx, "bob", dec(80), "x")
		require.NoError(t, err)

		_, err = service.UseKudos(ctx, "alice", "bob", dec(30), "x")

		assert.ErrorIs(t, err, domain.ErrInvalidTransaction)
		assertBalance(t, service, "alice", 60)
		assertBalance(t, service, "bob", 80)
	})
}

func TestUseKudos_ConcurrentTransfersConserveSupply(t *testing.T) {
	service, _, _ := NewMock(t, 5000)
	ctx := context.Background()
	ids := []string{"alice", "bob", "carol", "dave"}
	for _, id := range ids {
		_, err := service.AddKudos(ctx, id, dec(100), "seed")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 400; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender := ids[i%len(ids)]
			receiver := ids[(i+1+i/len(ids))%len(ids)]
			_, _ = service.UseKudos(ctx, sender, receiver, dec(int64(1+i%7)), "p2p")
		}(i)
	}
	wg.Wait()

	total := decimal.Zero
	for _, id := range ids {
		balance, err := service.GetBalance(ctx, id)
		require.NoError(t, err)
		assert.False(t, balance.IsNegative())
		total = total.Add(balance)
	}
	assert.True(t, total.Equal(dec(400)), "total supply %s", total)
}

func TestGetQueries_UnknownAccount(t *testing.T) {
	service, _, _ := NewMock(t, 5000)
	ctx := context.Background()

	_, err := service.GetBalance(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = service.GetTransactions(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = service.GetAccount(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetTransactions_ReturnsCopy(t *testing.T) {
	service, _, _ := NewMock(t, 5000)
	ctx := context.Background()
	_, err := service.AddKudos(ctx, "alice", dec(10), "x")
	require.NoError(t, err)

	txs, err := service.GetTransactions(ctx, "alice")
	require.NoError(t, err)
	txs[0].Amount = dec(9999)

	again, err := service.GetTransactions(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, again[0].Amount.Equal(dec(10)))
}

func TestListAccounts(t *testing.T) {
	service, _, _ := NewMock(t, 5000)
	ctx := context.Background()
	for _, id := range []string{"bob", "alice"} {
		_, err := service.CreateAccount(ctx, id)
		require.NoError(t, err)
	}

	list := service.ListAccounts(ctx)

	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].ID)
	assert.Equal(t, "bob", list[1].ID)
}

func TestCleanupExpired(t *testing.T) {
	service, _, clock := NewMock(t, 5000)
	ctx := context.Background()

	*clock = start.AddDate(0, -13, 0)
	_, err := service.AddKudos(ctx, "alice", dec(100), "old yield")
	require.NoError(t, err)
	*clock = start.AddDate(0, 0, -7)
	recent, err := service.AddKudos(ctx, "alice", dec(40), "recent yield")
	require.NoError(t, err)
	*clock = start

	report := service.CleanupExpired(ctx)

	assert.Equal(t, domain.CleanupReport{Accounts: 1, TransactionsPruned: 1}, report)
	txs, err := service.GetTransactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, recent.ID, txs[0].ID)
	assertBalance(t, service, "alice", 40)

	second := service.CleanupExpired(ctx)

	assert.Equal(t, domain.CleanupReport{Accounts: 1}, second)
	assertBalance(t, service, "alice", 40)
}

func TestCleanupExpired_ExpiredTransferOnlyAffectsItsSides(t *testing.T) {
	service, _, clock := NewMock(t, 5000)
	ctx := context.Background()

	*clock = start.AddDate(-1, -1, 0)
	_, err := service.AddKudos(ctx, "alice", dec(60), "x")
	require.NoError(t, err)
	_, err = service.CreateAccount(ctx, "bob")
	require.NoError(t, err)
	_, err = service.UseKudos(ctx, "alice", "bob", dec(20), "x")
	require.NoError(t, err)
	*clock = start
	_, err = service.AddKudos(ctx, "bob", dec(5), "x")
	require.NoError(t, err)

	service.CleanupExpired(ctx)

	assertBalance(t, service, "alice", 0)
	assertBalance(t, service, "bob", 5)
}

func TestCreditsForEnergy(t *testing.T) {
	tests := []struct {
		name      string
		unitValue float64
		energy    float64
		want      string
	}{
		{name: "One credit per kWh", unitValue: 1, energy: 12.5, want: "12.5"},
		{name: "Two kWh per credit", unitValue: 2, energy: 10, want: "5"},
		{name: "Rounded to four places", unitValue: 3, energy: 1, want: "0.3333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings(5000)
			s.CreditUnitValue = tt.unitValue
			service := New(accountrepo.New(), nil, s)

			got := service.CreditsForEnergy(tt.energy)

			assert.Equal(t, tt.want, got.String())
		})
	}
}
