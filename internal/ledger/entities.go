package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates the four money-movement operations.
type TransactionType string

const (
	// TransactionSend records money sent to an outside recipient.
	TransactionSend TransactionType = "send"
	// TransactionTransfer records movement between two of the user's accounts.
	TransactionTransfer TransactionType = "transfer"
	// TransactionBill records a bill payment to a payee.
	TransactionBill TransactionType = "bill"
	// TransactionDeposit records a mobile check deposit.
	TransactionDeposit TransactionType = "deposit"
)

// Account holds a balance in major currency units, kept at 2 decimal places.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Transaction is a single ledger record. Negative amounts are debits, positive
// amounts are credits. Records are immutable once created.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
	// Counterparty is the recipient contact or payee name, where applicable.
	Counterparty string    `json:"counterparty,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payee is an append-only directory entry for bill payments.
type Payee struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
}

// Recipient is an append-only directory entry for send-money targets.
type Recipient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// RecipientRefKind tags the two ways a send addresses its target.
type RecipientRefKind int

const (
	// RecipientExisting references an entry already in the recipient directory.
	RecipientExisting RecipientRefKind = iota + 1
	// RecipientNew carries a free-form contact to be added to the directory.
	RecipientNew
)

// RecipientRef is a tagged variant: an existing directory entry by id, or a
// new contact with an optional display name. Consumers switch on Kind and
// treat anything else as invalid.
type RecipientRef struct {
	Kind    RecipientRefKind
	ID      string
	Name    string
	Contact string
}

// ExistingRecipient references a directory entry by id.
func ExistingRecipient(id string) RecipientRef {
	return RecipientRef{Kind: RecipientExisting, ID: id}
}

// NewRecipientInput carries a contact not yet in the directory. Name may be
// empty, in which case the contact doubles as the display name.
func NewRecipientInput(name, contact string) RecipientRef {
	return RecipientRef{Kind: RecipientNew, Name: name, Contact: contact}
}

// Round2 rounds an amount to exactly 2 decimal places. Applied after every
// arithmetic step so drift cannot accumulate across repeated operations.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
