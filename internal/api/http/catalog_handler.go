package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type addItemRequest struct {
	Name          string `json:"name"`
	ImageURL      string `json:"image_url"`
	RentRateCents int64  `json:"rent_rate_cents"`
	SaleRateCents int64  `json:"sale_rate_cents"`
}

type addItemResponse struct {
	ID int64 `json:"id"`
}

func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.catalog.Add(r.Context(), callerIdentity(r), req.Name, req.ImageURL, req.RentRateCents, req.SaleRateCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addItemResponse{ID: id})
}

// editItemRequest fields left empty or zero keep the item's current value.
type editItemRequest struct {
	Name          string `json:"name"`
	ImageURL      string `json:"image_url"`
	RentRateCents int64  `json:"rent_rate_cents"`
	SaleRateCents int64  `json:"sale_rate_cents"`
}

func (h *CatalogHandler) EditMetadata(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}
	var req editItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.catalog.EditMetadata(r.Context(), callerIdentity(r), id, req.Name, req.ImageURL, req.RentRateCents, req.SaleRateCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type editStatusRequest struct {
	Status domain.ItemStatus `json:"status"`
}

func (h *CatalogHandler) EditStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}
	var req editStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.catalog.EditStatus(r.Context(), callerIdentity(r), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.ItemStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.ItemStatusAvailable
	}
	if !domain.ValidItemStatus(status) {
		writeError(w, domain.ErrInvalidStatus)
		return
	}

	items, err := h.catalog.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type itemCountResponse struct {
	Count int64 `json:"count"`
}

func (h *CatalogHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemCountResponse{Count: count})
}

func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return 0, false
	}
	return id, true
}
