package models

import (
	"bytes"
	"strconv"
	"time"
)

type OrderStatus string

const (
	OrderStatusNuevo           OrderStatus = "NUEVO"
	OrderStatusPagado          OrderStatus = "PAGADO"
	OrderStatusCocina          OrderStatus = "COCINA"
	OrderStatusEmpaquetamiento OrderStatus = "EMPAQUETAMIENTO"
	OrderStatusDelivery        OrderStatus = "DELIVERY"
	OrderStatusEntregado       OrderStatus = "ENTREGADO"
)

// FlexFloat tolerates the order backend sending numeric fields as numbers or
// as quoted strings depending on which endpoint produced the record.
// Unparsable input decodes to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0

		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0

		return nil
	}

	*f = FlexFloat(v)

	return nil
}

// Hamburguesa is the burger slot of an order element.
type Hamburguesa struct {
	Nombre       string   `json:"nombre"`
	Ingredientes []string `json:"ingredientes"`
	Tamano       string   `json:"tamaño"`
	Extra        string   `json:"extra"`
}

// ElementoProductos is the fixed-slot structure the order backend expects for
// every element: burger, fries, complements, extras. All slots are always
// present, placeholder-filled when the cart line had no finer-grained data.
type ElementoProductos struct {
	Hamburguesa  []Hamburguesa `json:"hamburguesa"`
	Papas        []string      `json:"papas"`
	Complementos []string      `json:"complementos"`
	Adicionales  []string      `json:"adicionales"`
}

// Elemento is one cart line in the order payload, modeled by the backend as a
// combo regardless of whether the line was sold as one.
type Elemento struct {
	Combo         []string          `json:"combo"`
	CantidadCombo int               `json:"cantidad_combo"`
	Precio        float64           `json:"precio"`
	Productos     ElementoProductos `json:"productos"`
}

// OrderPayload is the structure submitted to the payment backend for one
// checkout attempt. Built once per submission, never mutated after.
type OrderPayload struct {
	TenantID              string     `json:"tenant_id"`
	UUID                  string     `json:"uuid"`
	ClienteEmail          string     `json:"cliente_email"`
	Origen                string     `json:"origen"`
	Destino               string     `json:"destino"`
	FechaPedido           time.Time  `json:"fecha_pedido"`
	FechaEntrega          time.Time  `json:"fecha_entrega"`
	EstadoPedido          string     `json:"estado_pedido"`
	MultiplicadorDePuntos float64    `json:"multiplicador_de_puntos"`
	Delivery              bool       `json:"delivery"`
	ImagenComboURL        string     `json:"imagen_combo_url,omitempty"`
	Elementos             []Elemento `json:"elementos"`
}

// OrderElement mirrors Elemento on the read side, tolerant of the backend's
// looser numeric typing.
type OrderElement struct {
	Combo         []string           `json:"combo"`
	CantidadCombo FlexFloat          `json:"cantidad_combo"`
	Precio        FlexFloat          `json:"precio"`
	Productos     *ElementoProductos `json:"productos,omitempty"`
}

// OrderRecord is a backend-supplied order. Read-only to this service.
type OrderRecord struct {
	TenantID       string         `json:"tenant_id"`
	UUID           string         `json:"uuid"`
	ClienteEmail   string         `json:"cliente_email,omitempty"`
	EstadoPedido   OrderStatus    `json:"estado_pedido"`
	Origen         string         `json:"origen,omitempty"`
	Destino        string         `json:"destino,omitempty"`
	FechaPedido    string         `json:"fecha_pedido,omitempty"`
	FechaEntrega   string         `json:"fecha_entrega,omitempty"`
	Delivery       bool           `json:"delivery,omitempty"`
	ImagenComboURL string         `json:"imagen_combo_url,omitempty"`
	PrecioTotal    FlexFloat      `json:"precio_total,omitempty"`
	Total          FlexFloat      `json:"total,omitempty"`
	Elementos      []OrderElement `json:"elementos,omitempty"`
}

// LastOrderInfo is what checkout records for the status pages to poll with.
type LastOrderInfo struct {
	TenantID  string    `json:"tenant_id"`
	UUID      string    `json:"uuid"`
	Timestamp time.Time `json:"timestamp"`
}

type CheckoutRequest struct {
	Address       string `json:"address" validate:"required"`
	Reference     string `json:"reference,omitempty"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=CARD CASH"`
}

// CheckoutResult reports how a submission ended: either the payment widget
// must continue with the preference id, or the order completed directly.
type CheckoutResult struct {
	OrderID      string `json:"order_id"`
	PreferenceID string `json:"preference_id,omitempty"`
	Completed    bool   `json:"completed"`
}
