// Package server exposes the REST API consumed by the dashboard client.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
)

// Services groups the domain services the handlers dispatch to.
type Services struct {
	Accounts     *account.Service
	Projects     *project.Service
	Documents    *document.Service
	Bids         *bid.Service
	ChangeOrders *changeorder.Service
	Inspections  *inspection.Service
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	tokens   *TokenIssuer
	logger   *slog.Logger
}

// New creates the API router. Auth endpoints are open; everything else
// sits behind the bearer-token middleware.
func New(services Services, tokens *TokenIssuer, logger *slog.Logger) *chi.Mux {
	srv := &Server{services: services, tokens: tokens, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", srv.handleRegister)
		api.Post("/login", srv.handleLogin)

		api.Group(func(protected chi.Router) {
			protected.Use(AuthMiddleware(tokens))

			protected.Get("/projects", srv.handleListProjects)
			protected.Post("/projects", srv.handleCreateProject)
			protected.Get("/projects/{id}", srv.handleGetProject)
			protected.Put("/projects/{id}", srv.handleUpdateProject)
			protected.Delete("/projects/{id}", srv.handleDeleteProject)

			protected.Get("/documents", srv.handleListDocuments)
			protected.Post("/documents", srv.handleCreateDocument)
			protected.Put("/documents/{id}", srv.handleUpdateDocument)
			protected.Delete("/documents/{id}", srv.handleDeleteDocument)

			protected.Get("/bids", srv.handleListBids)
			protected.Post("/bids", srv.handleCreateBid)
			protected.Put("/bids/{id}", srv.handleUpdateBid)
			protected.Delete("/bids/{id}", srv.handleDeleteBid)

			protected.Get("/change_orders", srv.handleListChangeOrders)
			protected.Post("/change_orders", srv.handleCreateChangeOrder)
			protected.Put("/change_orders/{id}", srv.handleUpdateChangeOrder)
			protected.Delete("/change_orders/{id}", srv.handleDeleteChangeOrder)

			protected.Get("/inspections", srv.handleListInspections)
			protected.Post("/inspections", srv.handleCreateInspection)
			protected.Put("/inspections/{id}", srv.handleUpdateInspection)
			protected.Delete("/inspections/{id}", srv.handleDeleteInspection)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
