package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
	clock   service.Clock
}

// NewRentalHandler supplies the clock reading for checkout and check-in;
// the core never reads the wall clock itself.
func NewRentalHandler(rentals service.RentalService, clock service.Clock) *RentalHandler {
	return &RentalHandler{rentals: rentals, clock: clock}
}

type checkoutRequest struct {
	ItemID int64 `json:"item_id"`
}

func (h *RentalHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.rentals.Checkout(r.Context(), callerIdentity(r), req.ItemID, h.clock()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *RentalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	if err := h.rentals.CheckIn(r.Context(), callerIdentity(r), h.clock()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
