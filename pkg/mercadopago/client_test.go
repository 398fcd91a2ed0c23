package mercadopago_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/pkg/mercadopago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePreference(t *testing.T) {
	ctx := context.Background()
	payload := &models.OrderPayload{
		TenantID:     "restaurante_central_01",
		UUID:         "abc-123",
		ClienteEmail: "ana@example.com",
		EstadoPedido: "NUEVO",
	}

	t.Run("Success - Snake Case Preference ID", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/pagar", r.URL.Path)

			var received models.OrderPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Equal(t, "abc-123", received.UUID)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"preference_id": "pref-123"}`))
		}))
		defer server.Close()

		client := mercadopago.NewClient(server.URL)

		// Act
		preference, err := client.CreatePreference(ctx, payload)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pref-123", preference.PreferenceID())
	})

	t.Run("Success - Camel Case Preference ID", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"preferenceId": "pref-456"}`))
		}))
		defer server.Close()

		client := mercadopago.NewClient(server.URL)

		// Act
		preference, err := client.CreatePreference(ctx, payload)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pref-456", preference.PreferenceID())
	})

	t.Run("Success - Direct Completion Has No Preference ID", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message": "Pedido registrado"}`))
		}))
		defer server.Close()

		client := mercadopago.NewClient(server.URL)

		// Act
		preference, err := client.CreatePreference(ctx, payload)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, preference.PreferenceID())
		assert.Equal(t, "Pedido registrado", preference.Message)
	})

	t.Run("Failure - Error Status Surfaces", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error": "upstream"}`))
		}))
		defer server.Close()

		client := mercadopago.NewClient(server.URL)

		// Act
		preference, err := client.CreatePreference(ctx, payload)

		// Assert
		require.Error(t, err)
		assert.Nil(t, preference)
		assert.Contains(t, err.Error(), "502")
	})
}
