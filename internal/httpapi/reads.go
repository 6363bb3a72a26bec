package httpapi

import "net/http"

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.svc.Accounts(r.Context())
	if err != nil {
		writeOpError(w, err)
		return
	}
	toJSON(w, http.StatusOK, accounts)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.svc.Transactions(r.Context())
	if err != nil {
		writeOpError(w, err)
		return
	}
	toJSON(w, http.StatusOK, txs)
}

func (s *Server) listPayees(w http.ResponseWriter, r *http.Request) {
	payees, err := s.svc.Payees(r.Context())
	if err != nil {
		writeOpError(w, err)
		return
	}
	toJSON(w, http.StatusOK, payees)
}

func (s *Server) listRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.svc.Recipients(r.Context())
	if err != nil {
		writeOpError(w, err)
		return
	}
	toJSON(w, http.StatusOK, recipients)
}
