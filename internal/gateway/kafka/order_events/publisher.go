package order_events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// statusChangedEvent is the wire shape of an order.status.changed message.
type statusChangedEvent struct {
	OrderID        int64  `json:"order_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status"`
	CustomerID     int64  `json:"customer_id"`
	CourierID      *int64 `json:"courier_id,omitempty"`
}

// Publisher emits order lifecycle events to Kafka. Delivery is best-effort:
// broker failures are logged and never surface to the caller.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      logger.Logger
}

func New(log logger.Logger, producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log.With(logger.NewField("topic", topic)),
	}
}

func (p *Publisher) PublishOrderStatusChanged(_ context.Context, orderEntity entities.Order, previousStatus string) {
	event := statusChangedEvent{
		OrderID:        orderEntity.ID,
		Status:         orderEntity.Status,
		PreviousStatus: previousStatus,
		CustomerID:     orderEntity.CustomerID,
		CourierID:      orderEntity.CourierID,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("error", err),
		).Error("order.status.changed: failed to marshal event")
		return
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(orderEntity.ID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("error", err),
		).Error("order.status.changed: failed to publish event")
		return
	}

	p.log.With(
		logger.NewField("order", orderEntity.ID),
		logger.NewField("status", orderEntity.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order.status.changed: published")
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
