package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hrassets-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Requests      *RequestHandler
	Assets        *AssetHandler
	Teams         *TeamHandler
	Notifications *NotificationHandler
}

// NewRouter wires all routes under /api/v1 behind the auth middleware.
// HR-only routes additionally require the hr role claim.
func NewRouter(validator security.TokenValidator, h Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(validator))

	// Requests (workflow)
	api.HandleFunc("/requests", h.Requests.Submit).Methods(http.MethodPost)
	api.HandleFunc("/requests", h.Requests.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id:[0-9]+}", h.Requests.Get).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id:[0-9]+}/approve", RequireHR(h.Requests.Approve)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/reject", RequireHR(h.Requests.Reject)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id:[0-9]+}/return", h.Requests.Return).Methods(http.MethodPost)
	api.HandleFunc("/company/requests", RequireHR(h.Requests.ListCompany)).Methods(http.MethodGet)

	// Assets (HR catalog management)
	api.HandleFunc("/assets", RequireHR(h.Assets.Add)).Methods(http.MethodPost)
	api.HandleFunc("/assets", h.Assets.List).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id:[0-9]+}", h.Assets.Get).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id:[0-9]+}", RequireHR(h.Assets.Update)).Methods(http.MethodPut)
	api.HandleFunc("/assets/{id:[0-9]+}", RequireHR(h.Assets.Delete)).Methods(http.MethodDelete)

	// Affiliation projections
	api.HandleFunc("/company/employees", RequireHR(h.Teams.Employees)).Methods(http.MethodGet)
	api.HandleFunc("/company/usage", RequireHR(h.Teams.Usage)).Methods(http.MethodGet)
	api.HandleFunc("/team", h.Teams.Team).Methods(http.MethodGet)

	// Notifications
	api.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notifications.MarkRead).Methods(http.MethodPost)

	return r
}
