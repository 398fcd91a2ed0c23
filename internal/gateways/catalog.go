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

// CatalogGateway fetches product and combo records from the remote catalog
// backends. For empty categories the listing endpoints answer a 404, or a
// body carrying a "No se encontraron" message instead of an array; both map
// to an empty list, not an error.
type CatalogGateway interface {
	ListProducts(ctx context.Context, tenantID string) ([]models.CatalogProduct, error)
	GetProductDetail(ctx context.Context, tenantID, name string) (*models.CatalogProduct, error)
	ListCombos(ctx context.Context, tenantID string) ([]models.CatalogCombo, error)
	GetComboDetail(ctx context.Context, tenantID, name string) (*models.CatalogCombo, error)
}

type catalogGateway struct {
	productsURL string
	combosURL   string
	client      *http.Client
}

func NewCatalogGateway(productsURL, combosURL string) CatalogGateway {
	return &catalogGateway{
		productsURL: strings.TrimRight(productsURL, "/"),
		combosURL:   strings.TrimRight(combosURL, "/"),
		client:      newHTTPClient(),
	}
}

// messageBody is the error-ish shape the catalog backends return with a 200
// when a category has no rows.
type messageBody struct {
	Message string `json:"message"`
}

func decodeListOrMessage(raw json.RawMessage, dest any) (empty bool, err error) {

	trimmed := strings.TrimSpace(string(raw))

	if strings.HasPrefix(trimmed, "[") {
		return false, json.Unmarshal(raw, dest)
	}

	var msg messageBody
	if err := json.Unmarshal(raw, &msg); err == nil && strings.Contains(msg.Message, "No se encontraron") {
		return true, nil
	}

	return false, fmt.Errorf("unexpected catalog response shape: %s", trimmed)
}

func (g *catalogGateway) ListProducts(ctx context.Context, tenantID string) ([]models.CatalogProduct, error) {

	var raw json.RawMessage

	endpoint := fmt.Sprintf("%s/%s", g.productsURL, url.PathEscape(tenantID))

	if err := getJSON(ctx, g.client, endpoint, nil, &raw); err != nil {
		if isNotFound(err) {
			return []models.CatalogProduct{}, nil
		}

		return nil, err
	}

	var products []models.CatalogProduct

	empty, err := decodeListOrMessage(raw, &products)
	if err != nil {
		return nil, err
	}

	if empty {
		return []models.CatalogProduct{}, nil
	}

	return products, nil
}

func (g *catalogGateway) GetProductDetail(ctx context.Context, tenantID, name string) (*models.CatalogProduct, error) {

	product := &models.CatalogProduct{}

	endpoint := fmt.Sprintf("%s/%s/%s", g.productsURL, url.PathEscape(tenantID), url.PathEscape(name))

	if err := getJSON(ctx, g.client, endpoint, nil, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (g *catalogGateway) ListCombos(ctx context.Context, tenantID string) ([]models.CatalogCombo, error) {

	var raw json.RawMessage

	endpoint := fmt.Sprintf("%s/%s", g.combosURL, url.PathEscape(tenantID))

	if err := getJSON(ctx, g.client, endpoint, nil, &raw); err != nil {
		if isNotFound(err) {
			return []models.CatalogCombo{}, nil
		}

		return nil, err
	}

	var combos []models.CatalogCombo

	empty, err := decodeListOrMessage(raw, &combos)
	if err != nil {
		return nil, err
	}

	if empty {
		return []models.CatalogCombo{}, nil
	}

	return combos, nil
}

func (g *catalogGateway) GetComboDetail(ctx context.Context, tenantID, name string) (*models.CatalogCombo, error) {

	combo := &models.CatalogCombo{}

	endpoint := fmt.Sprintf("%s/%s/%s", g.combosURL, url.PathEscape(tenantID), url.PathEscape(name))

	if err := getJSON(ctx, g.client, endpoint, nil, combo); err != nil {
		return nil, err
	}

	return combo, nil
}
