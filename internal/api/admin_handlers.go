package api

import (
	"net/http"

	"parkease/internal/repository"
	"parkease/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
	Catalog *repository.CatalogRepository
}

func NewAdminHandler(svc *service.AdminService, catalog *repository.CatalogRepository) *AdminHandler {
	return &AdminHandler{Service: svc, Catalog: catalog}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Stats())
}

func (h *AdminHandler) ListParkingAreas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ListAreas())
}
