package ledger

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeedFixture(t *testing.T) {
	st := Seed()
	if len(st.Accounts) != 2 || len(st.Payees) != 2 || len(st.Recipients) != 2 {
		t.Fatalf("unexpected fixture sizes: %+v", st)
	}
	if len(st.Transactions) != 0 {
		t.Fatalf("fixture should have no transactions")
	}
	chq := st.Account("chq")
	if chq == nil || chq.Name != "Unlimited Chequing" || !chq.Balance.Equal(decimal.RequireFromString("1490.12")) {
		t.Fatalf("chq = %+v", chq)
	}
	if p, ok := st.Payee("hydro"); !ok || p.Name != "City Hydro" || p.AccountNumber != "00012345" {
		t.Fatalf("hydro = %+v", p)
	}
	if r, ok := st.Recipient("amy"); !ok || r.Contact != "+1 (555) 123-9876" {
		t.Fatalf("amy = %+v", r)
	}
}

func TestLookupsMiss(t *testing.T) {
	st := Seed()
	if st.Account("nope") != nil {
		t.Fatal("expected nil account")
	}
	if _, ok := st.Payee("nope"); ok {
		t.Fatal("expected missing payee")
	}
	if _, ok := st.Recipient("nope"); ok {
		t.Fatal("expected missing recipient")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := Seed()
	cp := st.Clone()

	cp.Account("chq").Balance = decimal.Zero
	cp.Payees[0].Name = "changed"
	cp.Recipients = append(cp.Recipients, Recipient{ID: "x"})

	if !st.Account("chq").Balance.Equal(decimal.RequireFromString("1490.12")) {
		t.Fatal("clone mutation leaked into original balance")
	}
	if st.Payees[0].Name != "City Hydro" {
		t.Fatal("clone mutation leaked into original payees")
	}
	if len(st.Recipients) != 2 {
		t.Fatal("clone append leaked into original recipients")
	}
}

func TestStoreJSONRoundTrip(t *testing.T) {
	st := Seed()
	st.Transactions = []Transaction{{
		ID:            "t1",
		Type:          TransactionBill,
		Amount:        decimal.RequireFromString("-50.00"),
		FromAccountID: "chq",
		Counterparty:  "City Hydro",
		Note:          "Bill payment to City Hydro",
	}}

	raw, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Store
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	again, err := json.Marshal(back)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(raw) != string(again) {
		t.Fatalf("round trip diverged:\n %s\n %s", raw, again)
	}
	if !back.Account("chq").Balance.Equal(decimal.RequireFromString("1490.12")) {
		t.Fatalf("balance lost precision: %s", back.Account("chq").Balance)
	}
	if !back.Transactions[0].Amount.Equal(decimal.RequireFromString("-50.00")) {
		t.Fatalf("amount lost sign/precision: %s", back.Transactions[0].Amount)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1490.125", "1490.13"},
		{"1490.124", "1490.12"},
		{"-0.005", "-0.01"},
		{"10", "10"},
	}
	for _, tc := range cases {
		got := Round2(decimal.RequireFromString(tc.in))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("Round2(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRecipientRefConstructors(t *testing.T) {
	if ref := ExistingRecipient("jay"); ref.Kind != RecipientExisting || ref.ID != "jay" {
		t.Fatalf("existing ref = %+v", ref)
	}
	if ref := NewRecipientInput("Sam", "sam@x.com"); ref.Kind != RecipientNew || ref.Contact != "sam@x.com" {
		t.Fatalf("new ref = %+v", ref)
	}
	var zero RecipientRef
	if zero.Kind == RecipientExisting || zero.Kind == RecipientNew {
		t.Fatal("zero ref must not match a tagged kind")
	}
}
