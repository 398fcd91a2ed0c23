package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rsalazarq/storefront/internal/models"
)

// OrdersGateway queries the order backend. Its responses are wrapped
// ("pedidos"/"pedido") on some endpoints and bare on others; both shapes are
// accepted.
type OrdersGateway interface {
	ListByEmail(ctx context.Context, email string) ([]models.OrderRecord, error)
	GetByID(ctx context.Context, tenantID, orderUUID string) (*models.OrderRecord, error)
}

type ordersGateway struct {
	baseURL string
	client  *http.Client
}

func NewOrdersGateway(baseURL string) OrdersGateway {
	return &ordersGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(),
	}
}

func (g *ordersGateway) ListByEmail(ctx context.Context, email string) ([]models.OrderRecord, error) {

	var raw json.RawMessage

	endpoint := fmt.Sprintf("%s/email?cliente_email=%s", g.baseURL, url.QueryEscape(email))

	if err := getJSON(ctx, g.client, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(raw))

	if strings.HasPrefix(trimmed, "[") {
		var records []models.OrderRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("failed to decode order list: %w", err)
		}

		return records, nil
	}

	var wrapped struct {
		Pedidos []models.OrderRecord `json:"pedidos"`
	}

	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode order list: %w", err)
	}

	return wrapped.Pedidos, nil
}

func (g *ordersGateway) GetByID(ctx context.Context, tenantID, orderUUID string) (*models.OrderRecord, error) {

	var raw json.RawMessage

	endpoint := fmt.Sprintf("%s/id?tenant_id=%s&uuid=%s", g.baseURL, url.QueryEscape(tenantID), url.QueryEscape(orderUUID))

	if err := getJSON(ctx, g.client, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Pedido *models.OrderRecord `json:"pedido"`
	}

	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Pedido != nil {
		return wrapped.Pedido, nil
	}

	record := &models.OrderRecord{}

	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("failed to decode order detail: %w", err)
	}

	return record, nil
}
