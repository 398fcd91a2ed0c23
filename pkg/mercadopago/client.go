package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rsalazarq/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client submits an order payload to the payment backend, which registers the
// order and answers with a Mercado Pago preference for the wallet widget, or
// with a direct success for flows that need no widget (cash).
type Client interface {
	CreatePreference(ctx context.Context, payload *models.OrderPayload) (*PreferenceResponse, error)
}

// PreferenceResponse tolerates both casings the backend has been seen using
// for the preference id.
type PreferenceResponse struct {
	PreferenceSnake string `json:"preference_id"`
	PreferenceCamel string `json:"preferenceId"`
	Message         string `json:"message,omitempty"`
}

// PreferenceID returns the preference id regardless of casing; empty when the
// backend answered with a direct success instead.
func (r *PreferenceResponse) PreferenceID() string {
	if r.PreferenceSnake != "" {
		return r.PreferenceSnake
	}

	return r.PreferenceCamel
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *client) CreatePreference(ctx context.Context, payload *models.OrderPayload) (*PreferenceResponse, error) {

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pagar", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	preference := &PreferenceResponse{}

	if err := json.Unmarshal(respBody, preference); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return preference, nil
}
