// Package publisher drains the order-event outbox to Kafka. Downstream
// consumers (fulfillment, notifications) read the order-events topic; the
// storefront itself never blocks on the broker.
package publisher

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"photogifthub/internal/metrics"
	"photogifthub/internal/outbox"
)

const topic = "order-events"

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Poller struct {
	repo    outbox.Repository
	writer  kafkaWriter
	logger  *log.Logger
	metrics *metrics.Metrics
	tick    time.Duration
	batch   int
}

func NewPoller(repo outbox.Repository, m *metrics.Metrics, logger *log.Logger, brokers ...string) *Poller {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Poller{repo: repo, writer: w, logger: logger, metrics: m, tick: time.Second, batch: 100}
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.publishPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) publishPending(ctx context.Context) {
	events, err := p.repo.Unprocessed(ctx, p.batch)
	if err != nil {
		p.logger.Printf("outbox fetch failed: %v", err)
		return
	}

	for _, ev := range events {
		msg := kafka.Message{
			// Keyed by order id so events for one order stay ordered.
			Key:   []byte(ev.OrderID),
			Value: ev.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(ev.EventType)},
			},
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Printf("publish event %d failed, will retry: %v", ev.ID, err)
			continue
		}
		if p.metrics != nil {
			p.metrics.OutboxPublished.Inc()
		}
		if err := p.repo.MarkProcessed(ctx, ev.ID); err != nil {
			p.logger.Printf("mark event %d processed failed: %v", ev.ID, err)
		}
	}
}
