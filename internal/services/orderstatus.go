package service

import (
	"context"

	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/gateways"
	"github.com/rsalazarq/storefront/internal/models"
)

// activeStatuses is the fulfillment pipeline in order, short of delivery.
var activeStatuses = []models.OrderStatus{
	models.OrderStatusNuevo,
	models.OrderStatusPagado,
	models.OrderStatusCocina,
	models.OrderStatusEmpaquetamiento,
	models.OrderStatusDelivery,
}

// OrdersView is the partition the orders page renders: in-flight orders with
// a progress bar, delivered orders as history.
type OrdersView struct {
	Active  []models.OrderRecord `json:"active"`
	History []models.OrderRecord `json:"history"`
}

// OrderStatusService normalizes the order backend's inconsistent record
// shapes into one displayable model.
type OrderStatusService struct {
	orders gateways.OrdersGateway
}

func NewOrderStatusService(orders gateways.OrdersGateway) *OrderStatusService {
	return &OrderStatusService{orders: orders}
}

// ListOrders fetches and classifies the shopper's orders.
func (s *OrderStatusService) ListOrders(ctx context.Context, email string) (*OrdersView, error) {

	if email == "" {
		return nil, errors.UnauthorizedError("Order history requires a customer identity")
	}

	records, err := s.orders.ListByEmail(ctx, email)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch orders").WithError(err)
	}

	return Classify(records), nil
}

// GetOrder fetches one order's detail.
func (s *OrderStatusService) GetOrder(ctx context.Context, tenantID, orderUUID string) (*models.OrderRecord, error) {

	record, err := s.orders.GetByID(ctx, tenantID, orderUUID)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch order detail").WithError(err)
	}

	return record, nil
}

// Classify partitions records into active and history buckets by status.
// A record with any other status lands in neither bucket: unknown statuses
// are silently excluded from display, never defaulted into a group.
func Classify(records []models.OrderRecord) *OrdersView {

	view := &OrdersView{
		Active:  []models.OrderRecord{},
		History: []models.OrderRecord{},
	}

	for _, record := range records {
		switch {
		case isActiveStatus(record.EstadoPedido):
			view.Active = append(view.Active, record)
		case record.EstadoPedido == models.OrderStatusEntregado:
			view.History = append(view.History, record)
		}
	}

	return view
}

func isActiveStatus(status models.OrderStatus) bool {
	for _, active := range activeStatuses {
		if status == active {
			return true
		}
	}

	return false
}

// ProgressPercent maps a status to its progress-bar percentage. Total over
// the whole status domain: anything unknown maps to the minimal default.
func ProgressPercent(status models.OrderStatus) int {
	switch status {
	case models.OrderStatusPagado:
		return 10
	case models.OrderStatusCocina:
		return 35
	case models.OrderStatusEmpaquetamiento:
		return 60
	case models.OrderStatusDelivery:
		return 85
	case models.OrderStatusEntregado:
		return 100
	default:
		return 5
	}
}

// RecordTotal resolves a record's total across the backend's shapes: explicit
// precio_total, then total, then the sum over its elements, then zero.
func RecordTotal(record *models.OrderRecord) float64 {

	if record.PrecioTotal > 0 {
		return float64(record.PrecioTotal)
	}

	if record.Total > 0 {
		return float64(record.Total)
	}

	var sum float64

	for _, element := range record.Elementos {
		sum += float64(element.Precio) * float64(element.CantidadCombo)
	}

	return sum
}
