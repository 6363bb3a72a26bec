package httpapi

import (
	"context"
	"net/http"

	"github.com/greenbank/ledger/internal/ledger"
)

// completed fires the success side effects of a payment screen: one counter
// increment per transaction record and a single notification for the first
// record (the sender's side, when a transfer produces two).
func (s *Server) completed(ctx context.Context, txs ...ledger.Transaction) {
	for _, tx := range txs {
		transactionsTotal.WithLabelValues(string(tx.Type)).Inc()
	}
	if s.notifier != nil && len(txs) > 0 {
		s.notifier.TransactionCompleted(ctx, txs[0])
	}
}

func (s *Server) sendMoney(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	var to ledger.RecipientRef
	if req.RecipientID != "" {
		to = ledger.ExistingRecipient(req.RecipientID)
	} else {
		to = ledger.NewRecipientInput(req.Name, req.Contact)
	}
	tx, err := s.svc.SendMoney(r.Context(), req.FromAccountID, to, req.Amount, req.Note)
	if err != nil {
		writeOpError(w, err)
		return
	}
	s.completed(r.Context(), tx)
	toJSON(w, http.StatusCreated, tx)
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	res, err := s.svc.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.Amount, req.Note)
	if err != nil {
		writeOpError(w, err)
		return
	}
	// The demo notifies the sender's side only.
	s.completed(r.Context(), res.Outbound, res.Inbound)
	toJSON(w, http.StatusCreated, res)
}

func (s *Server) payBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	tx, err := s.svc.PayBill(r.Context(), req.FromAccountID, req.PayeeID, req.Amount, req.Note)
	if err != nil {
		writeOpError(w, err)
		return
	}
	s.completed(r.Context(), tx)
	toJSON(w, http.StatusCreated, tx)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	tx, err := s.svc.Deposit(r.Context(), req.ToAccountID, req.Amount, req.Note)
	if err != nil {
		writeOpError(w, err)
		return
	}
	s.completed(r.Context(), tx)
	toJSON(w, http.StatusCreated, tx)
}

func (s *Server) postPayee(w http.ResponseWriter, r *http.Request) {
	var req payeeRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	payee, err := s.svc.AddPayee(r.Context(), req.Name, req.AccountNumber)
	if err != nil {
		writeOpError(w, err)
		return
	}
	toJSON(w, http.StatusCreated, payee)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Reset(r.Context()); err != nil {
		writeOpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
