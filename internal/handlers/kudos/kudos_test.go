package kudos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/kudos/internal/domain"
	"github.com/GlebRadaev/kudos/internal/dto"
	"github.com/GlebRadaev/kudos/pkg/auth"
)

func NewMock(t *testing.T) (*KudosHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func transaction(sender, receiver string, amount int64) domain.Transaction {
	return domain.Transaction{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Amount:     decimal.NewFromInt(amount),
		Timestamp:  time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC),
	}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is equal to " + m.want.String()
}

func amountMatcher(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

func TestIssueKudos(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Issued",
			body: `{"account":"alice","amount":60,"description":"solar yield"}`,
			prepareMock: func() {
				service.EXPECT().AddKudos(gomock.Any(), "alice", amountMatcher(60), "solar yield").
					Return(transaction(domain.SystemMintID, "alice", 60), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount as string",
			body: `{"account":"alice","amount":"60"}`,
			prepareMock: func() {
				service.EXPECT().AddKudos(gomock.Any(), "alice", amountMatcher(60), "").
					Return(transaction(domain.SystemMintID, "alice", 60), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed body",
			body:          `not json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:         "Mint account",
			body:         `{"account":"SYSTEM","amount":60}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Limit exceeded",
			body: `{"account":"alice","amount":6000}`,
			prepareMock: func() {
				service.EXPECT().AddKudos(gomock.Any(), "alice", amountMatcher(6000), "").
					Return(domain.Transaction{}, fmt.Errorf("%w: monthly limit exceeded", domain.ErrInvalidTransaction))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "monthly limit exceeded",
		},
		{
			name: "Internal server error",
			body: `{"account":"alice","amount":60}`,
			prepareMock: func() {
				service.EXPECT().AddKudos(gomock.Any(), "alice", amountMatcher(60), "").
					Return(domain.Transaction{}, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/kudos/issue", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.IssueKudos(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, domain.SystemMintID, body.Sender)
				assert.Equal(t, "alice", body.Receiver)
			}
		})
	}
}

func TestTransferKudos(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"sender":"alice","receiver":"bob","amount":30}`

	tests := []struct {
		name         string
		body         string
		caller       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Transferred",
			body: body,
			prepareMock: func() {
				service.EXPECT().UseKudos(gomock.Any(), "alice", "bob", amountMatcher(30), "").
					Return(transaction("alice", "bob", 30), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Transferred by authenticated sender",
			body:   body,
			caller: "alice",
			prepareMock: func() {
				service.EXPECT().UseKudos(gomock.Any(), "alice", "bob", amountMatcher(30), "").
					Return(transaction("alice", "bob", 30), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Caller is not the sender",
			body:         body,
			caller:       "mallory",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing receiver",
			body:         `{"sender":"alice","amount":30}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown receiver",
			body: body,
			prepareMock: func() {
				service.EXPECT().UseKudos(gomock.Any(), "alice", "bob", amountMatcher(30), "").
					Return(domain.Transaction{}, domain.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Insufficient balance",
			body: body,
			prepareMock: func() {
				service.EXPECT().UseKudos(gomock.Any(), "alice", "bob", amountMatcher(30), "").
					Return(domain.Transaction{}, domain.ErrInvalidTransaction)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/kudos/transfer", bytes.NewBufferString(tt.body))
			if tt.caller != "" {
				r = r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, tt.caller))
			}
			w := httptest.NewRecorder()

			handler.TransferKudos(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCleanup(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().CleanupExpired(gomock.Any()).
		Return(domain.CleanupReport{Accounts: 2, TransactionsPruned: 3, RatingsPruned: 1})

	r := httptest.NewRequest(http.MethodPost, "/api/maintenance/cleanup", nil)
	w := httptest.NewRecorder()

	handler.Cleanup(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.CleanupResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, dto.CleanupResponseDTO{Accounts: 2, TransactionsPruned: 3, RatingsPruned: 1}, body)
}

func TestGetSettings(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Settings().Return(domain.Settings{
		CreditUnitValue:  1,
		MonthlyLimit:     decimal.NewFromInt(5000),
		ExpirationMonths: 12,
		MinRating:        3,
	})

	r := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()

	handler.GetSettings(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"credit_unit_value":1,"monthly_limit":"5000","expiration_months":12,"min_rating":3}`,
		w.Body.String(),
	)
}
