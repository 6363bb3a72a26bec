package httpapi

import "github.com/shopspring/decimal"

// Request payloads. Amounts accept JSON numbers or decimal strings.

type sendRequest struct {
	FromAccountID string          `json:"from_account_id"`
	RecipientID   string          `json:"recipient_id,omitempty"`
	Name          string          `json:"name,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note,omitempty"`
}

type transferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note,omitempty"`
}

type billRequest struct {
	FromAccountID string          `json:"from_account_id"`
	PayeeID       string          `json:"payee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note,omitempty"`
}

type depositRequest struct {
	ToAccountID string          `json:"to_account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note,omitempty"`
}

type payeeRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
}
