// Package notify is the notification collaborator the payment handlers call
// after a successful operation. Implementations are fire-and-forget: a failed
// notification never affects ledger state.
package notify

import (
	"context"
	"log/slog"

	"github.com/greenbank/ledger/internal/ledger"
)

// Notifier receives the record of a completed money-movement operation.
type Notifier interface {
	TransactionCompleted(ctx context.Context, tx ledger.Transaction)
}

// Message renders the push/toast copy for a transaction: a short title and a
// one-line body naming the amount and counterparty where there is one.
func Message(tx ledger.Transaction) (title, body string) {
	amount := "$" + tx.Amount.Abs().StringFixed(2)
	switch tx.Type {
	case ledger.TransactionSend:
		return "Money Sent", amount + " sent to " + tx.Counterparty
	case ledger.TransactionTransfer:
		if tx.Amount.Sign() < 0 {
			return "Money Sent", amount + " sent"
		}
		return "Money Received", amount + " received"
	case ledger.TransactionBill:
		return "Bill Paid", amount + " sent to " + tx.Counterparty
	case ledger.TransactionDeposit:
		return "Deposit Complete", amount + " deposited"
	default:
		return "Account Update", amount
	}
}

// LogNotifier writes notifications to the structured log. It is the default
// collaborator when no event transport is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLog constructs a LogNotifier.
func NewLog(l *slog.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

// TransactionCompleted implements Notifier.
func (n *LogNotifier) TransactionCompleted(_ context.Context, tx ledger.Transaction) {
	title, body := Message(tx)
	n.log.Info("notification",
		"title", title,
		"body", body,
		"type", string(tx.Type),
		"tx_id", tx.ID,
	)
}
