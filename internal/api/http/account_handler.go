package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type AccountHandler struct {
	accounts service.AccountService
}

func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type registerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.accounts.Register(r.Context(), callerIdentity(r), req.Name, req.Surname); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

type amountRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.accounts.Deposit(r.Context(), callerIdentity(r), req.AmountCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AccountHandler) ClearDebt(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.ClearDebt(r.Context(), callerIdentity(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.accounts.Withdraw(r.Context(), callerIdentity(r), req.AmountCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.Get(r.Context(), callerIdentity(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}
