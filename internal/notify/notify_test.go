package notify

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/greenbank/ledger/internal/ledger"
)

func tx(t ledger.TransactionType, amount, counterparty string) ledger.Transaction {
	return ledger.Transaction{
		Type:         t,
		Amount:       decimal.RequireFromString(amount),
		Counterparty: counterparty,
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name  string
		tx    ledger.Transaction
		title string
		body  string
	}{
		{"send", tx(ledger.TransactionSend, "-25.00", "jayden@example.com"), "Money Sent", "$25.00 sent to jayden@example.com"},
		{"transfer out", tx(ledger.TransactionTransfer, "-100.00", ""), "Money Sent", "$100.00 sent"},
		{"transfer in", tx(ledger.TransactionTransfer, "100.00", ""), "Money Received", "$100.00 received"},
		{"bill", tx(ledger.TransactionBill, "-50.00", "City Hydro"), "Bill Paid", "$50.00 sent to City Hydro"},
		{"deposit", tx(ledger.TransactionDeposit, "200.50", ""), "Deposit Complete", "$200.50 deposited"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, body := Message(tc.tx)
			if title != tc.title || body != tc.body {
				t.Fatalf("Message = %q / %q, want %q / %q", title, body, tc.title, tc.body)
			}
		})
	}
}
