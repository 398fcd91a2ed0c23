package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		snapshot, err := h.cartService.GetCart(r.Context(), sessionID(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		input := req.Input()
		if input == nil {
			response.Error(w, errors.BadRequestError("Request body is missing the item named by 'type'"))

			return
		}

		snapshot, err := h.cartService.AddInput(r.Context(), sessionID(r), input, req.Quantity)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		snapshot, err := h.cartService.UpdateQuantity(r.Context(), sessionID(r), req.LineID, req.Quantity)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Line ID is required"))

			return
		}

		snapshot, err := h.cartService.RemoveItem(r.Context(), sessionID(r), lineID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		snapshot, err := h.cartService.ClearCart(r.Context(), sessionID(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) ToggleCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		open := h.cartService.ToggleCart(sessionID(r))

		response.Success(w, http.StatusOK, map[string]bool{"cart_open": open})
	}
}
