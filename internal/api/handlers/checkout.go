package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/metrics"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

// Preview builds the order payload without submitting it, so the checkout
// page can render what will be sent.
func (h *CheckoutHandler) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		email := middleware.EmailFromContext(r.Context())
		address := r.URL.Query().Get("address")

		payload, err := h.checkoutService.BuildOrderPayload(r.Context(), sessionID(r), email, address)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, payload)
	}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		email := middleware.EmailFromContext(r.Context())

		result, err := h.checkoutService.Submit(r.Context(), sessionID(r), email, &req)
		if err != nil {
			metrics.RecordCheckout("failed")
			logger.Error("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if result.Completed {
			metrics.RecordCheckout("completed")
		} else {
			metrics.RecordCheckout("pending_payment")
		}

		logger.Info("Checkout submitted",
			slog.String("order_id", result.OrderID),
			slog.Bool("completed", result.Completed),
		)

		response.Success(w, http.StatusCreated, result)
	}
}
