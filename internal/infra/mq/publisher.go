package mq

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/workdesk/workdesk/internal/modules/service"
	"go.uber.org/zap"
)

// Publisher sends JSON messages to a durable queue on the default exchange.
// A single channel is shared, so publishes are serialized.
type Publisher struct {
	mu    sync.Mutex
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	log.Sugar().Infow("publisher ready", "queue", queue)
	return &Publisher{ch: ch, queue: queue, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, v any, msgType string) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         msgType,
		Body:         body,
	})
}

// Publish implements service.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, ev service.ChangeEvent) error {
	return p.PublishJSON(ctx, ev, ev.Kind+"."+ev.Action)
}

// Shutdown lets the DI container close the channel on exit.
func (p *Publisher) Shutdown() error {
	p.log.Sugar().Debugw("closing publisher", "queue", p.queue)
	return p.ch.Close()
}
