package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carrental-backend/internal/security"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Accounts *AccountHandler
	Catalog  *CatalogHandler
	Rentals  *RentalHandler
	Admin    *AdminHandler
}

// NewRouter mounts the full operation catalog. Everything under /api
// requires a bearer token and runs serialized; /health and /metrics are
// open and unserialized.
func NewRouter(h Handlers, tokens security.TokenManager, serialize *sync.Mutex) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet).Name("health")
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet).Name("metrics")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(MetricsMiddleware(), AuthMiddleware(tokens), SerializeMiddleware(serialize))

	// Accounts
	api.HandleFunc("/accounts", h.Accounts.Register).Methods(http.MethodPost).Name("register")
	api.HandleFunc("/accounts/me", h.Accounts.GetMe).Methods(http.MethodGet).Name("get_account")
	api.HandleFunc("/accounts/deposit", h.Accounts.Deposit).Methods(http.MethodPost).Name("deposit")
	api.HandleFunc("/accounts/clear-debt", h.Accounts.ClearDebt).Methods(http.MethodPost).Name("clear_debt")
	api.HandleFunc("/accounts/withdraw", h.Accounts.Withdraw).Methods(http.MethodPost).Name("withdraw")
	api.HandleFunc("/accounts/{identity}", h.Admin.LookupAccount).Methods(http.MethodGet).Name("lookup_account")

	// Catalog
	api.HandleFunc("/items", h.Catalog.Add).Methods(http.MethodPost).Name("add_item")
	api.HandleFunc("/items", h.Catalog.ListByStatus).Methods(http.MethodGet).Name("list_items_by_status")
	api.HandleFunc("/items/count", h.Catalog.Count).Methods(http.MethodGet).Name("item_count")
	api.HandleFunc("/items/{id:[0-9]+}", h.Catalog.Get).Methods(http.MethodGet).Name("get_item")
	api.HandleFunc("/items/{id:[0-9]+}", h.Catalog.EditMetadata).Methods(http.MethodPatch).Name("edit_item_metadata")
	api.HandleFunc("/items/{id:[0-9]+}/status", h.Catalog.EditStatus).Methods(http.MethodPut).Name("edit_item_status")

	// Rentals
	api.HandleFunc("/rentals/checkout", h.Rentals.Checkout).Methods(http.MethodPost).Name("checkout")
	api.HandleFunc("/rentals/checkin", h.Rentals.CheckIn).Methods(http.MethodPost).Name("check_in")

	// Owner surface
	api.HandleFunc("/owner", h.Admin.GetOwner).Methods(http.MethodGet).Name("get_owner")
	api.HandleFunc("/owner", h.Admin.SetOwner).Methods(http.MethodPut).Name("set_owner")
	api.HandleFunc("/treasury", h.Admin.GetTreasury).Methods(http.MethodGet).Name("treasury_balance")
	api.HandleFunc("/treasury/withdraw", h.Admin.WithdrawTreasury).Methods(http.MethodPost).Name("withdraw_treasury")
	api.HandleFunc("/events", h.Admin.ListEvents).Methods(http.MethodGet).Name("list_events")

	return r
}
