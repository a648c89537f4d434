package api

import (
	"net/http"

	"github.com/DevFolio/go-client-referral/internal/api/handlers"
	"github.com/DevFolio/go-client-referral/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// NewRouter wires the admin API routes on top of an already migrated database.
func NewRouter(db *gorm.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	customerHandler := handlers.NewCustomerHandler(db)
	transactionHandler := handlers.NewTransactionHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", customerHandler.CreateCustomer)
		r.Get("/", customerHandler.ListCustomers)
		r.Get("/stats", customerHandler.CustomerStats)
		r.Put("/{id}", customerHandler.UpdateCustomer)
		r.Delete("/{id}", customerHandler.DeleteCustomer)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", transactionHandler.ListTransactions)
		r.Get("/earnings", transactionHandler.TotalEarnings)
		r.Post("/{id}/invoice-sent", transactionHandler.MarkInvoiceSent)
		r.Post("/{id}/email-sent", transactionHandler.MarkEmailSent)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", projectHandler.CreateProject)
		r.Get("/", projectHandler.ListProjects)
		r.Put("/{id}", projectHandler.UpdateProject)
		r.Delete("/{id}", projectHandler.DeleteProject)
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/discounts", settingsHandler.GetDiscounts)
		r.Put("/discounts", settingsHandler.PutDiscounts)
	})

	return r
}
