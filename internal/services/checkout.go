package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rsalazarq/storefront/internal/config"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/internal/store"
	"github.com/rsalazarq/storefront/pkg/mercadopago"
)

// The delivery timestamp is a fixed business offset from the order timestamp,
// not a computed ETA.
const DeliveryOffset = 45 * time.Minute

// Placeholders for the fixed-slot combo structure the order backend expects
// when a cart line carries no finer-grained data.
var (
	defaultIngredientes = []string{"Carne", "Queso"}
	defaultPapas        = []string{"Papas Fritas"}
	defaultComplementos = []string{"Bebida"}
)

const (
	defaultSize        = "Regular"
	defaultExtra       = "Ninguno"
	defaultDestination = "Dirección no especificada"
	defaultComboName   = "Combo"
	defaultBurgerName  = "Hamburguesa"
)

// CheckoutService transforms the current cart into the order backend's
// payload shape and submits it for payment.
type CheckoutService struct {
	carts    *CartService
	store    store.CartStore
	payments mercadopago.Client
	notifier *NotificationService
	cfg      config.Checkout
	now      func() time.Time
}

func NewCheckoutService(carts *CartService, cartStore store.CartStore, payments mercadopago.Client, notifier *NotificationService, cfg config.Checkout) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		store:    cartStore,
		payments: payments,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock overrides the clock, for tests.
func (s *CheckoutService) WithClock(now func() time.Time) *CheckoutService {
	s.now = now

	return s
}

// BuildOrderPayload produces a fresh payload from the current cart. The
// request id is a new v4 UUID on every call: two submissions of the same cart
// are two distinct orders. An empty cart or a missing identity is rejected
// with a typed error rather than silently defaulted.
func (s *CheckoutService) BuildOrderPayload(ctx context.Context, sessionID, email, address string) (*models.OrderPayload, error) {

	if email == "" {
		return nil, errors.UnauthorizedError("Checkout requires a customer identity")
	}

	snapshot, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(snapshot.Lines) == 0 {
		return nil, errors.BadRequestError("Cannot checkout with an empty cart")
	}

	if address == "" {
		address = defaultDestination
	}

	now := s.now()

	payload := &models.OrderPayload{
		TenantID:              s.cfg.TenantID,
		UUID:                  uuid.NewString(),
		ClienteEmail:          email,
		Origen:                s.cfg.OriginAddress,
		Destino:               address,
		FechaPedido:           now,
		FechaEntrega:          now.Add(DeliveryOffset),
		EstadoPedido:          string(models.OrderStatusNuevo),
		MultiplicadorDePuntos: s.cfg.PointsMultiplier,
		Delivery:              true,
		ImagenComboURL:        s.comboImage(snapshot.Lines),
		Elementos:             make([]models.Elemento, 0, len(snapshot.Lines)),
	}

	for i := range snapshot.Lines {
		payload.Elementos = append(payload.Elementos, buildElemento(&snapshot.Lines[i]))
	}

	return payload, nil
}

func (s *CheckoutService) comboImage(lines []models.CartLine) string {
	if len(lines) > 0 && lines[0].ImageURL != "" {
		return lines[0].ImageURL
	}

	return s.cfg.DefaultComboURL
}

// buildElemento wraps one cart line in the backend's fixed-slot combo
// structure. Every slot is always populated; placeholders fill in for lines
// that were not actually sold as combos.
func buildElemento(line *models.CartLine) models.Elemento {

	name := line.Name
	if name == "" {
		name = defaultComboName
	}

	quantity := line.Quantity
	if quantity < 1 {
		quantity = 1
	}

	burgerName := line.Name
	if burgerName == "" {
		burgerName = defaultBurgerName
	}

	ingredientes := line.Ingredients
	if len(ingredientes) == 0 {
		ingredientes = defaultIngredientes
	}

	size := line.SelectedSize
	if size == "" {
		size = defaultSize
	}

	extra := line.Observaciones
	if extra == "" {
		extra = defaultExtra
	}

	return models.Elemento{
		Combo:         []string{name},
		CantidadCombo: quantity,
		Precio:        line.EffectiveUnitPrice(),
		Productos: models.ElementoProductos{
			Hamburguesa: []models.Hamburguesa{{
				Nombre:       burgerName,
				Ingredientes: ingredientes,
				Tamano:       size,
				Extra:        extra,
			}},
			Papas:        selectionNames(line, "papas", defaultPapas),
			Complementos: selectionNames(line, "complementos", defaultComplementos),
			Adicionales:  selectionNames(line, "adicionales", []string{}),
		},
	}
}

func selectionNames(line *models.CartLine, category string, fallback []string) []string {

	chosen := line.Selections[category]
	if len(chosen) == 0 {
		return fallback
	}

	names := make([]string, 0, len(chosen))
	for _, sub := range chosen {
		names = append(names, sub.Name)
	}

	return names
}

// Submit builds the payload, sends it to the payment backend and records the
// order reference for the status pages. When the backend answers with a
// preference id the shopper still has to pay in the wallet widget, so the
// cart survives; a direct success completes the order and clears the cart.
func (s *CheckoutService) Submit(ctx context.Context, sessionID, email string, req *models.CheckoutRequest) (*models.CheckoutResult, error) {

	payload, err := s.BuildOrderPayload(ctx, sessionID, email, req.Address)
	if err != nil {
		return nil, err
	}

	preference, err := s.payments.CreatePreference(ctx, payload)
	if err != nil {
		return nil, errors.PaymentError("Failed to submit order for payment").WithError(err)
	}

	info := &models.LastOrderInfo{
		TenantID:  payload.TenantID,
		UUID:      payload.UUID,
		Timestamp: s.now(),
	}

	if err := s.store.SaveLastOrder(ctx, sessionID, info); err != nil {
		slog.Warn("Failed to record last order info", slog.String("order_id", payload.UUID), slog.String("error", err.Error()))
	}

	result := &models.CheckoutResult{
		OrderID:      payload.UUID,
		PreferenceID: preference.PreferenceID(),
	}

	if result.PreferenceID == "" {
		result.Completed = true

		if _, err := s.carts.ClearCart(ctx, sessionID); err != nil {
			return nil, err
		}

		if s.notifier != nil {
			if err := s.notifier.SendOrderConfirmation(ctx, email, payload); err != nil {
				slog.Warn("Failed to send order confirmation", slog.String("order_id", payload.UUID), slog.String("error", err.Error()))
			}
		}
	}

	return result, nil
}
