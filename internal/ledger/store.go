package ledger

import "github.com/shopspring/decimal"

// StoreKey is the fixed key the aggregate is persisted under, regardless of
// backend. There is no versioning beyond it: an unparsable blob is reseeded.
const StoreKey = "greenbank.db.v1"

// Store is the persisted aggregate and the unit of every load-mutate-save
// cycle. The transaction list is kept newest-first.
type Store struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Payees       []Payee       `json:"payees"`
	Recipients   []Recipient   `json:"recipients"`
}

// Clone returns a deep copy. decimal.Decimal values are immutable, so copying
// the slices is sufficient.
func (s Store) Clone() Store {
	out := Store{
		Accounts:     make([]Account, len(s.Accounts)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Payees:       make([]Payee, len(s.Payees)),
		Recipients:   make([]Recipient, len(s.Recipients)),
	}
	copy(out.Accounts, s.Accounts)
	copy(out.Transactions, s.Transactions)
	copy(out.Payees, s.Payees)
	copy(out.Recipients, s.Recipients)
	return out
}

// Account returns a pointer into the store's account list, or nil when the id
// is unknown. Mutations through the pointer stay local to this Store value.
func (s *Store) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Payee looks up a payee directory entry by id.
func (s *Store) Payee(id string) (Payee, bool) {
	for _, p := range s.Payees {
		if p.ID == id {
			return p, true
		}
	}
	return Payee{}, false
}

// Recipient looks up a recipient directory entry by id.
func (s *Store) Recipient(id string) (Recipient, bool) {
	for _, r := range s.Recipients {
		if r.ID == id {
			return r, true
		}
	}
	return Recipient{}, false
}

// Seed returns the demo starting fixture: two accounts, two payees, two
// recipients and an empty transaction history. Used the first time no
// persisted blob exists or whenever the blob fails to decode.
func Seed() Store {
	return Store{
		Accounts: []Account{
			{ID: "chq", Name: "Unlimited Chequing", Balance: decimal.RequireFromString("1490.12")},
			{ID: "svg", Name: "Every Day Savings", Balance: decimal.RequireFromString("167.82")},
		},
		Transactions: []Transaction{},
		Payees: []Payee{
			{ID: "hydro", Name: "City Hydro", AccountNumber: "00012345"},
			{ID: "visa", Name: "Visa Card", AccountNumber: "4111 1111"},
		},
		Recipients: []Recipient{
			{ID: "jay", Name: "Jayden", Contact: "jayden@example.com"},
			{ID: "amy", Name: "Amy", Contact: "+1 (555) 123-9876"},
		},
	}
}
