package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/kudos/internal/domain"
)

func TestPublish(t *testing.T) {
	event := domain.TransactionEvent{
		Type: domain.EventKudosTransferred,
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			SenderID:    "alice",
			ReceiverID:  "bob",
			Amount:      decimal.NewFromInt(30),
			Timestamp:   time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC),
			Description: "evening surplus",
		},
	}

	tests := []struct {
		name        string
		writeErr    error
		expectError bool
	}{
		{name: "Delivered"},
		{name: "Writer failure", writeErr: errors.New("queue full"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := NewMockMessageWriter(ctrl)
			publisher := NewPublisherWithWriter(writer)

			writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
					require.Len(t, msgs, 1)
					assert.Equal(t, "bob", string(msgs[0].Key))
					assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte(event.Type)}}, msgs[0].Headers)

					var decoded domain.TransactionEvent
					require.NoError(t, json.Unmarshal(msgs[0].Value, &decoded))
					assert.Equal(t, event.Type, decoded.Type)
					assert.Equal(t, event.Transaction.ID, decoded.Transaction.ID)
					assert.True(t, event.Transaction.Amount.Equal(decoded.Transaction.Amount))
					return tt.writeErr
				})

			err := publisher.Publish(context.Background(), event)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"}, "")

	writer, ok := publisher.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, DefaultTopic, writer.Topic)
	assert.True(t, writer.Async)
	assert.NoError(t, publisher.Close())
}
