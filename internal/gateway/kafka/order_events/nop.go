package order_events

import (
	"context"

	"marketplace/internal/entities"
)

// NopPublisher is wired when Kafka is disabled in the config.
type NopPublisher struct{}

func NewNop() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) PublishOrderStatusChanged(context.Context, entities.Order, string) {}
