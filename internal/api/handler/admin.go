package handler

import (
	"net/http"

	"github.com/fareboard/fareboard/internal/api/models"
	"github.com/fareboard/fareboard/internal/api/response"
	"github.com/fareboard/fareboard/internal/booking"
)

// AdminHandler handles operator-only endpoints.
type AdminHandler struct {
	loader *booking.Loader
	store  *booking.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(loader *booking.Loader, store *booking.Store) *AdminHandler {
	return &AdminHandler{
		loader: loader,
		store:  store,
	}
}

// ReloadDataset handles POST /v1/admin/dataset/reload - re-run the dataset
// load and publish a fresh snapshot. A failed fetch resolves to an empty
// snapshot, same as the startup load.
func (h *AdminHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	h.loader.Load(r.Context())

	response.JSON(w, r, http.StatusOK, models.ReloadResponse{
		Status:  string(h.store.Status()),
		Records: len(h.store.Records()),
	})
}
