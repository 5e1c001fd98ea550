package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// AdminHandler serves the owner-facing surface: ownership transfer,
// treasury reads and withdrawal, and the event feed.
type AdminHandler struct {
	owners   service.OwnershipService
	treasury service.TreasuryService
	events   service.EventService
	accounts service.AccountService
}

func NewAdminHandler(owners service.OwnershipService, treasury service.TreasuryService, events service.EventService, accounts service.AccountService) *AdminHandler {
	return &AdminHandler{owners: owners, treasury: treasury, events: events, accounts: accounts}
}

type ownerResponse struct {
	Owner domain.Identity `json:"owner"`
}

func (h *AdminHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ownerResponse{Owner: h.owners.Owner(r.Context())})
}

type setOwnerRequest struct {
	Identity domain.Identity `json:"identity"`
}

func (h *AdminHandler) SetOwner(w http.ResponseWriter, r *http.Request) {
	var req setOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Identity == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "identity is required"})
		return
	}

	if err := h.owners.Transfer(r.Context(), callerIdentity(r), req.Identity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type treasuryResponse struct {
	BalanceCents        int64 `json:"balance_cents"`
	TotalCollectedCents int64 `json:"total_collected_cents"`
}

func (h *AdminHandler) GetTreasury(w http.ResponseWriter, r *http.Request) {
	caller := callerIdentity(r)
	balance, err := h.treasury.Balance(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	collected, err := h.treasury.TotalCollected(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, treasuryResponse{BalanceCents: balance, TotalCollectedCents: collected})
}

func (h *AdminHandler) WithdrawTreasury(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.treasury.Withdraw(r.Context(), callerIdentity(r), req.AmountCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// LookupAccount lets the owner inspect any account by identity.
func (h *AdminHandler) LookupAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.owners.RequireOwner(callerIdentity(r)); err != nil {
		writeError(w, err)
		return
	}

	identity := domain.Identity(mux.Vars(r)["identity"])
	account, err := h.accounts.Get(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	// The event feed is part of the owner surface.
	if err := h.owners.RequireOwner(callerIdentity(r)); err != nil {
		writeError(w, err)
		return
	}

	events, err := h.events.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
