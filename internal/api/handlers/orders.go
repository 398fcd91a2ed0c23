package handlers

import (
	"net/http"

	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/store"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService *service.OrderStatusService
	cartStore    store.CartStore
	tenantID     string
}

func NewOrderHandler(orderService *service.OrderStatusService, cartStore store.CartStore, tenantID string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartStore:    cartStore,
		tenantID:     tenantID,
	}
}

// orderDetail is the detail-page view: the raw record plus the derived
// display fields.
type orderDetail struct {
	Order    *models.OrderRecord `json:"order"`
	Progress int                 `json:"progress"`
	Total    float64             `json:"total"`
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Order history requires a signed-in shopper"))

			return
		}

		view, err := h.orderService.ListOrders(r.Context(), claims.Email)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// GetLastOrder resolves the session's most recently submitted order and
// returns its current state, for the post-checkout confirmation page to poll.
func (h *OrderHandler) GetLastOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		info, err := h.cartStore.LoadLastOrder(r.Context(), sessionID(r))
		if err != nil {
			response.Error(w, errors.StorageError("Failed to load last order reference").WithError(err))

			return
		}

		if info == nil {
			response.Error(w, errors.NotFoundError("No order has been submitted in this session"))

			return
		}

		record, err := h.orderService.GetOrder(r.Context(), info.TenantID, info.UUID)
		if err != nil {
			response.Error(w, err)

			return
		}

		detail := orderDetail{
			Order:    record,
			Progress: service.ProgressPercent(record.EstadoPedido),
			Total:    service.RecordTotal(record),
		}

		response.Success(w, http.StatusOK, detail)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orderUUID := r.PathValue("id")
		if orderUUID == "" {
			response.Error(w, errors.BadRequestError("Order ID is required"))

			return
		}

		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			tenantID = h.tenantID
		}

		record, err := h.orderService.GetOrder(r.Context(), tenantID, orderUUID)
		if err != nil {
			response.Error(w, err)

			return
		}

		detail := orderDetail{
			Order:    record,
			Progress: service.ProgressPercent(record.EstadoPedido),
			Total:    service.RecordTotal(record),
		}

		response.Success(w, http.StatusOK, detail)
	}
}
