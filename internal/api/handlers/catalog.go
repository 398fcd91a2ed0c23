package handlers

import (
	"net/http"

	"github.com/rsalazarq/storefront/internal/errors"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	tenantID       string
}

func NewCatalogHandler(catalogService *service.CatalogService, tenantID string) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		tenantID:       tenantID,
	}
}

func (h *CatalogHandler) tenant(r *http.Request) string {

	if tenantID := r.URL.Query().Get("tenant_id"); tenantID != "" {
		return tenantID
	}

	return h.tenantID
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalogService.ListProducts(r.Context(), h.tenant(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		name := r.PathValue("name")
		if name == "" {
			response.Error(w, errors.BadRequestError("Product name is required"))

			return
		}

		product, err := h.catalogService.GetProductDetail(r.Context(), h.tenant(r), name)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) ListCombos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		combos, err := h.catalogService.ListCombos(r.Context(), h.tenant(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, combos)
	}
}

func (h *CatalogHandler) GetCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		name := r.PathValue("name")
		if name == "" {
			response.Error(w, errors.BadRequestError("Combo name is required"))

			return
		}

		combo, err := h.catalogService.GetComboDetail(r.Context(), h.tenant(r), name)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, combo)
	}
}
