package events

import (
	"context"

	"github.com/GlebRadaev/kudos/internal/domain"
)

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.TransactionEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
