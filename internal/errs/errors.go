package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrNotFound indicates a referenced account, payee or recipient does not exist.
	ErrNotFound = errors.New("not_found")
	// ErrInvalidAmount indicates an amount that is zero or carries the wrong sign.
	ErrInvalidAmount = errors.New("invalid_amount")
	// ErrInsufficientFunds indicates a debit larger than the account balance.
	ErrInsufficientFunds = errors.New("insufficient_funds")
	// ErrSameAccount indicates a transfer between an account and itself.
	ErrSameAccount = errors.New("same_account")
	// ErrInvalid is used for malformed input outside the amount checks.
	ErrInvalid = errors.New("invalid")
)
