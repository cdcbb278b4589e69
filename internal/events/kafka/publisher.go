package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/kudos/internal/domain"
)

const DefaultTopic = "kudos.transactions"

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer MessageWriter
}

// NewPublisher returns a publisher backed by an asynchronous writer. Delivery
// failures are only logged; a ledger operation never waits on the broker.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
			Async:    true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					zap.L().Error("failed to deliver transaction events",
						zap.Int("messages", len(messages)),
						zap.Error(err),
					)
				}
			},
		},
	}
}

func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish keys each message by the receiving account so events for one
// account stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Transaction.ReceiverID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
