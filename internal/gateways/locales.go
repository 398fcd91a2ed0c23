package gateways

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rsalazarq/storefront/internal/models"
)

// LocalesGateway fetches store locations. Location ids contain '#'
// ("LIMA#CENTRO"), so path segments are always escaped.
type LocalesGateway interface {
	List(ctx context.Context) ([]models.Locale, error)
	GetByID(ctx context.Context, tenantID string) (*models.Locale, error)
	Filter(ctx context.Context, query string) ([]models.Locale, error)
}

type localesGateway struct {
	baseURL string
	client  *http.Client
}

func NewLocalesGateway(baseURL string) LocalesGateway {
	return &localesGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(),
	}
}

func (g *localesGateway) List(ctx context.Context) ([]models.Locale, error) {

	var locales []models.Locale

	if err := getJSON(ctx, g.client, g.baseURL, nil, &locales); err != nil {
		return nil, err
	}

	return locales, nil
}

func (g *localesGateway) GetByID(ctx context.Context, tenantID string) (*models.Locale, error) {

	locale := &models.Locale{}

	endpoint := fmt.Sprintf("%s/%s", g.baseURL, url.PathEscape(tenantID))

	if err := getJSON(ctx, g.client, endpoint, nil, locale); err != nil {
		return nil, err
	}

	return locale, nil
}

func (g *localesGateway) Filter(ctx context.Context, query string) ([]models.Locale, error) {

	var wrapped struct {
		Results []models.Locale `json:"results"`
	}

	endpoint := fmt.Sprintf("%s/filtro?q=%s", g.baseURL, url.QueryEscape(query))

	if err := getJSON(ctx, g.client, endpoint, nil, &wrapped); err != nil {
		return nil, err
	}

	return wrapped.Results, nil
}
