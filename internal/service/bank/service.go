// Package bank implements the ledger rules: balance mutation, transaction
// recording and the directory bookkeeping behind the four money-movement
// operations. Handlers stay thin and delegate here.
package bank

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenbank/ledger/internal/errs"
	"github.com/greenbank/ledger/internal/ledger"
)

// Repo abstracts the blob persistence the service runs against.
type Repo interface {
	// Load returns the persisted aggregate. ok is false when no blob exists
	// or the blob cannot be decoded; the service reseeds in that case.
	Load(ctx context.Context) (st ledger.Store, ok bool, err error)
	// Save replaces the whole persisted aggregate.
	Save(ctx context.Context, st ledger.Store) error
}

// Service exposes the ledger reads and mutating operations. Every mutating
// operation is a full load-validate-mutate-save cycle: it either persists the
// complete new state or fails before anything is written.
type Service interface {
	Accounts(ctx context.Context) ([]ledger.Account, error)
	Transactions(ctx context.Context) ([]ledger.Transaction, error)
	Payees(ctx context.Context) ([]ledger.Payee, error)
	Recipients(ctx context.Context) ([]ledger.Recipient, error)

	SendMoney(ctx context.Context, fromAccountID string, to ledger.RecipientRef, amount decimal.Decimal, note string) (ledger.Transaction, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, note string) (TransferResult, error)
	PayBill(ctx context.Context, fromAccountID, payeeID string, amount decimal.Decimal, note string) (ledger.Transaction, error)
	Deposit(ctx context.Context, toAccountID string, amount decimal.Decimal, note string) (ledger.Transaction, error)
	AddPayee(ctx context.Context, name, accountNumber string) (ledger.Payee, error)
	Reset(ctx context.Context) error
}

// TransferResult carries both records created by a transfer. Inbound is the
// more recent of the two in history.
type TransferResult struct {
	Outbound ledger.Transaction `json:"outbound"`
	Inbound  ledger.Transaction `json:"inbound"`
}

type service struct {
	repo Repo
	// Serializes load-mutate-save cycles within this process. Callers sharing
	// a backend across processes get no isolation, same as the design accepts.
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// New constructs the service around a persistence backend.
func New(repo Repo) Service {
	return &service{repo: repo, now: time.Now, newID: uuid.NewString}
}

// load fetches the current aggregate, seeding (and persisting the seed) when
// no valid blob exists. Caller must hold s.mu.
func (s *service) load(ctx context.Context) (ledger.Store, error) {
	st, ok, err := s.repo.Load(ctx)
	if err != nil {
		return ledger.Store{}, err
	}
	if !ok {
		st = ledger.Seed()
		if err := s.repo.Save(ctx, st); err != nil {
			return ledger.Store{}, err
		}
	}
	return st, nil
}

func (s *service) Accounts(ctx context.Context) ([]ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Accounts, nil
}

func (s *service) Transactions(ctx context.Context) ([]ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Transactions, nil
}

func (s *service) Payees(ctx context.Context) ([]ledger.Payee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Payees, nil
}

func (s *service) Recipients(ctx context.Context) ([]ledger.Recipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Recipients, nil
}

// SendMoney debits the source account and records a send transaction. A new
// contact is prepended to the recipient directory as part of the same save.
func (s *service) SendMoney(ctx context.Context, fromAccountID string, to ledger.RecipientRef, amount decimal.Decimal, note string) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return ledger.Transaction{}, err
	}
	from := st.Account(fromAccountID)
	if from == nil {
		return ledger.Transaction{}, errs.ErrNotFound
	}

	// Resolve the recipient before touching any balance so a bad reference
	// cannot leave a partial mutation behind.
	var name, contact string
	var addToDirectory bool
	switch to.Kind {
	case ledger.RecipientExisting:
		r, ok := st.Recipient(to.ID)
		if !ok {
			return ledger.Transaction{}, errs.ErrNotFound
		}
		contact = r.Contact
	case ledger.RecipientNew:
		if to.Contact == "" {
			return ledger.Transaction{}, errs.ErrInvalid
		}
		name, contact = to.Name, to.Contact
		if name == "" {
			name = contact
		}
		addToDirectory = true
	default:
		return ledger.Transaction{}, errs.ErrInvalid
	}

	if err := debitable(*from, amount); err != nil {
		return ledger.Transaction{}, err
	}

	from.Balance = ledger.Round2(from.Balance.Sub(amount))
	if note == "" {
		note = "Send to " + contact
	}
	tx := ledger.Transaction{
		ID:            s.newID(),
		Type:          ledger.TransactionSend,
		Amount:        amount.Neg(),
		FromAccountID: fromAccountID,
		Counterparty:  contact,
		Note:          note,
		CreatedAt:     s.now().UTC(),
	}
	st.Transactions = prepend(st.Transactions, tx)
	if addToDirectory {
		st.Recipients = prepend(st.Recipients, ledger.Recipient{ID: s.newID(), Name: name, Contact: contact})
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return ledger.Transaction{}, err
	}
	return tx, nil
}

// Transfer moves money between two of the user's accounts and records two
// transactions, both tagged with both account ids.
func (s *service) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, note string) (TransferResult, error) {
	if fromAccountID == toAccountID {
		return TransferResult{}, errs.ErrSameAccount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return TransferResult{}, err
	}
	from := st.Account(fromAccountID)
	to := st.Account(toAccountID)
	if from == nil || to == nil {
		return TransferResult{}, errs.ErrNotFound
	}
	if err := debitable(*from, amount); err != nil {
		return TransferResult{}, err
	}

	from.Balance = ledger.Round2(from.Balance.Sub(amount))
	to.Balance = ledger.Round2(to.Balance.Add(amount))

	outNote, inNote := note, note
	if note == "" {
		outNote = "Transfer to " + to.Name
		inNote = "Transfer from " + from.Name
	}
	created := s.now().UTC()
	out := ledger.Transaction{
		ID:            s.newID(),
		Type:          ledger.TransactionTransfer,
		Amount:        amount.Neg(),
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Note:          outNote,
		CreatedAt:     created,
	}
	in := ledger.Transaction{
		ID:            s.newID(),
		Type:          ledger.TransactionTransfer,
		Amount:        amount,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Note:          inNote,
		CreatedAt:     created,
	}
	// Ordering is observable in history: the outbound record is prepended
	// first, then the inbound, so the inbound ends up most recent.
	st.Transactions = prepend(st.Transactions, out)
	st.Transactions = prepend(st.Transactions, in)

	if err := s.repo.Save(ctx, st); err != nil {
		return TransferResult{}, err
	}
	return TransferResult{Outbound: out, Inbound: in}, nil
}

// PayBill debits the source account against a payee directory entry.
func (s *service) PayBill(ctx context.Context, fromAccountID, payeeID string, amount decimal.Decimal, note string) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return ledger.Transaction{}, err
	}
	from := st.Account(fromAccountID)
	if from == nil {
		return ledger.Transaction{}, errs.ErrNotFound
	}
	payee, ok := st.Payee(payeeID)
	if !ok {
		return ledger.Transaction{}, errs.ErrNotFound
	}
	if err := debitable(*from, amount); err != nil {
		return ledger.Transaction{}, err
	}

	from.Balance = ledger.Round2(from.Balance.Sub(amount))
	if note == "" {
		note = "Bill payment to " + payee.Name
	}
	tx := ledger.Transaction{
		ID:            s.newID(),
		Type:          ledger.TransactionBill,
		Amount:        amount.Neg(),
		FromAccountID: fromAccountID,
		Counterparty:  payee.Name,
		Note:          note,
		CreatedAt:     s.now().UTC(),
	}
	st.Transactions = prepend(st.Transactions, tx)
	if err := s.repo.Save(ctx, st); err != nil {
		return ledger.Transaction{}, err
	}
	return tx, nil
}

// Deposit credits the target account. There is no funds check: deposits only
// ever increase a balance.
func (s *service) Deposit(ctx context.Context, toAccountID string, amount decimal.Decimal, note string) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return ledger.Transaction{}, err
	}
	to := st.Account(toAccountID)
	if to == nil {
		return ledger.Transaction{}, errs.ErrNotFound
	}
	if amount.Sign() <= 0 {
		return ledger.Transaction{}, errs.ErrInvalidAmount
	}

	to.Balance = ledger.Round2(to.Balance.Add(amount))
	if note == "" {
		note = "Mobile deposit"
	}
	tx := ledger.Transaction{
		ID:          s.newID(),
		Type:        ledger.TransactionDeposit,
		Amount:      amount,
		ToAccountID: toAccountID,
		Note:        note,
		CreatedAt:   s.now().UTC(),
	}
	st.Transactions = prepend(st.Transactions, tx)
	if err := s.repo.Save(ctx, st); err != nil {
		return ledger.Transaction{}, err
	}
	return tx, nil
}

// AddPayee prepends a new payee directory entry.
func (s *service) AddPayee(ctx context.Context, name, accountNumber string) (ledger.Payee, error) {
	if name == "" || accountNumber == "" {
		return ledger.Payee{}, errs.ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx)
	if err != nil {
		return ledger.Payee{}, err
	}
	payee := ledger.Payee{ID: s.newID(), Name: name, AccountNumber: accountNumber}
	st.Payees = prepend(st.Payees, payee)
	if err := s.repo.Save(ctx, st); err != nil {
		return ledger.Payee{}, err
	}
	return payee, nil
}

// Reset discards all state and reseeds the starting fixture.
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Save(ctx, ledger.Seed())
}

// debitable checks the shared preconditions of every debiting operation.
func debitable(a ledger.Account, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return errs.ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return errs.ErrInsufficientFunds
	}
	return nil
}

func prepend[T any](list []T, v T) []T {
	return append([]T{v}, list...)
}
