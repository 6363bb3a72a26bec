// Package httpapi wires the HTTP surface of the ledger service. It stands in
// for the demo's form screens: each payment route calls exactly one ledger
// operation and feeds the result to the notification collaborator. Handlers
// stay thin, delegating business rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/greenbank/ledger/internal/notify"
	"github.com/greenbank/ledger/internal/service/bank"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	svc      bank.Service
	repo     bank.Repo
	notifier notify.Notifier
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware. The repo is kept
// only for the readiness probe; notifier may be nil.
func New(svc bank.Service, repo bank.Repo, notifier notify.Notifier, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		svc:      svc,
		repo:     repo,
		notifier: notifier,
		log:      logger,
		rt:       r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	// Reads
	s.rt.Get("/v1/accounts", s.listAccounts)
	s.rt.Get("/v1/transactions", s.listTransactions)
	s.rt.Get("/v1/payees", s.listPayees)
	s.rt.Get("/v1/recipients", s.listRecipients)
	// Directory
	s.rt.Post("/v1/payees", s.postPayee)
	// Payments
	s.rt.Post("/v1/payments/send", s.sendMoney)
	s.rt.Post("/v1/payments/transfer", s.transfer)
	s.rt.Post("/v1/payments/bill", s.payBill)
	s.rt.Post("/v1/payments/deposit", s.deposit)
	// Demo reset
	s.rt.Post("/v1/reset", s.reset)
	// Health (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Get("/metrics", metricsHandler().ServeHTTP)
}
