// Package kafka publishes transaction-completed events for downstream
// consumers. Publishing is best-effort: failures are logged and swallowed so
// the ledger's fire-and-complete contract holds.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/greenbank/ledger/internal/ledger"
	"github.com/greenbank/ledger/internal/notify"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "transaction_completed"

// Publisher writes one JSON event per completed transaction.
type Publisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewPublisher constructs a publisher against the given brokers.
func NewPublisher(brokers []string, topic string, log *slog.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		log: log,
	}
}

// transactionCompleted is the wire shape of a published event.
type transactionCompleted struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Counterparty string    `json:"counterparty,omitempty"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionCompleted implements notify.Notifier.
func (p *Publisher) TransactionCompleted(ctx context.Context, tx ledger.Transaction) {
	title, body := notify.Message(tx)
	evt := transactionCompleted{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Amount:       tx.Amount.StringFixed(2),
		Counterparty: tx.Counterparty,
		Title:        title,
		Body:         body,
		CreatedAt:    tx.CreatedAt,
	}
	data, err := json.Marshal(evt)
	if err != nil {
		p.log.Warn("encode transaction event failed", "err", err, "tx_id", tx.ID)
		return
	}
	msg := kafka.Message{Key: []byte(tx.ID), Value: data}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("publish transaction event failed", "err", err, "tx_id", tx.ID)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error { return p.writer.Close() }
