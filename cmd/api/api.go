package main

import (
	"log"
	"net/http"
	"time"

	"github.com/claudiorubilar/seguros/internal/book"
	"github.com/claudiorubilar/seguros/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type application struct {
	config config
	repo   *book.Repository
	logger *logger.Logger
}

type config struct {
	addr       string
	ledgerPath string
	win1252    bool
	// ufValue converts UF-denominated amounts to CLP in the collections
	// views. Updated manually until an indicator feed exists.
	ufValue float64
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Route("/policies", func(r chi.Router) {
			r.Get("/", app.handleGetPolicies)
			r.Get("/{policyNumber}", app.handleGetPolicy)
			r.Get("/{policyNumber}/installments", app.handleGetPolicyInstallments)
		})
		r.Route("/collections", func(r chi.Router) {
			r.Get("/", app.handleGetCollections)
			r.Get("/summary", app.handleGetCollectionsSummary)
		})
		r.Route("/commissions", func(r chi.Router) {
			r.Get("/", app.handleGetCommissions)
			r.Get("/summary", app.handleGetCommissionsSummary)
		})
		r.Get("/dashboard/summary", app.handleGetDashboard)
		r.Get("/clients", app.handleGetClients)
		r.Get("/agents", app.handleGetAgents)
		r.Get("/brokerages", app.handleGetBrokerages)
		r.Get("/insurers", app.handleGetInsurers)
		r.Get("/users", app.handleGetUsers)
		r.Route("/ingestion", func(r chi.Router) {
			r.Post("/reload", app.handleReload)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
