package handlers

import (
	"net/http"

	"github.com/rsalazarq/storefront/internal/errors"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type LocalesHandler struct {
	localesService *service.LocalesService
}

func NewLocalesHandler(localesService *service.LocalesService) *LocalesHandler {
	return &LocalesHandler{localesService: localesService}
}

func (h *LocalesHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if query := r.URL.Query().Get("q"); query != "" {
			locales, err := h.localesService.Filter(r.Context(), query)
			if err != nil {
				response.Error(w, err)

				return
			}

			response.Success(w, http.StatusOK, locales)

			return
		}

		locales, err := h.localesService.List(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, locales)
	}
}

func (h *LocalesHandler) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		tenantID := r.PathValue("id")
		if tenantID == "" {
			response.Error(w, errors.BadRequestError("Location ID is required"))

			return
		}

		locale, err := h.localesService.GetByID(r.Context(), tenantID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, locale)
	}
}
