package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rsalazarq/storefront/internal/models"
)

// FavoritosGateway talks to the favorites backend on behalf of the shopper.
// Every call forwards the shopper's bearer token; favorites are keyed by
// product name, and removal is a DELETE with a body, matching the backend.
type FavoritosGateway interface {
	List(ctx context.Context, token string) ([]models.Favorito, error)
	Add(ctx context.Context, token string, favorito *models.Favorito) error
	Remove(ctx context.Context, token string, favorito *models.Favorito) error
}

type favoritosGateway struct {
	baseURL string
	client  *http.Client
}

func NewFavoritosGateway(baseURL string) FavoritosGateway {
	return &favoritosGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(),
	}
}

func (g *favoritosGateway) List(ctx context.Context, token string) ([]models.Favorito, error) {

	var favoritos []models.Favorito

	headers := map[string]string{"Authorization": "Bearer " + token}

	if err := getJSON(ctx, g.client, g.baseURL, headers, &favoritos); err != nil {
		return nil, err
	}

	return favoritos, nil
}

func (g *favoritosGateway) Add(ctx context.Context, token string, favorito *models.Favorito) error {
	return g.send(ctx, http.MethodPost, token, favorito)
}

func (g *favoritosGateway) Remove(ctx context.Context, token string, favorito *models.Favorito) error {
	return g.send(ctx, http.MethodDelete, token, favorito)
}

func (g *favoritosGateway) send(ctx context.Context, method, token string, favorito *models.Favorito) error {

	body, err := json.Marshal(map[string]*models.Favorito{"favorito": favorito})
	if err != nil {
		return fmt.Errorf("failed to marshal favorito: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build favoritos request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("favoritos request failed: %w", err)
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{StatusCode: resp.StatusCode, URL: g.baseURL}
	}

	return nil
}
