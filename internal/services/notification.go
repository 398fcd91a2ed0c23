package service

import (
	"context"
	"fmt"

	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/pkg/sendgrid"
)

// NotificationService sends the order-confirmation email after a completed
// checkout. Best-effort: the caller logs failures instead of failing the
// order.
type NotificationService struct {
	email sendgrid.EmailService
}

func NewNotificationService(email sendgrid.EmailService) *NotificationService {
	return &NotificationService{email: email}
}

func (s *NotificationService) SendOrderConfirmation(ctx context.Context, to string, payload *models.OrderPayload) error {

	var total float64
	for _, elemento := range payload.Elementos {
		total += elemento.Precio * float64(elemento.CantidadCombo)
	}

	req := &models.EmailNotificationRequest{
		To:      to,
		Subject: fmt.Sprintf("Pedido recibido #%s", shortID(payload.UUID)),
		Content: fmt.Sprintf(
			"Tu pedido #%s ha sido recibido.\nEntrega estimada: %s\nTotal: S/ %.2f\nDestino: %s\n",
			shortID(payload.UUID),
			payload.FechaEntrega.Format("15:04"),
			total,
			payload.Destino,
		),
	}

	return s.email.Send(ctx, req)
}

func shortID(orderUUID string) string {
	if len(orderUUID) > 8 {
		return orderUUID[:8]
	}

	return orderUUID
}
