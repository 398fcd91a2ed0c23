package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartTTL = 30 * 24 * time.Hour

func TestLoadLines(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Round Trip", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		lines := []models.CartLine{{ID: "l1", Name: "Royal", UnitPrice: 9.90, Quantity: 2}}
		envelope, err := json.Marshal(models.PersistedCart{Version: models.PersistedCartVersion, Lines: lines})
		require.NoError(t, err)

		mock.ExpectGet("cart:session-1").SetVal(string(envelope))

		// Act
		loaded, err := cartStore.LoadLines(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, lines, loaded)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing Key Is An Empty Cart", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		mock.ExpectGet("cart:session-1").RedisNil()

		// Act
		loaded, err := cartStore.LoadLines(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, loaded)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Corrupt Snapshot Is An Empty Cart", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		mock.ExpectGet("cart:session-1").SetVal("{not json")

		// Act
		loaded, err := cartStore.LoadLines(ctx, "session-1")

		// Assert
		require.NoError(t, err, "corrupt data degrades to empty, never errors")
		assert.Empty(t, loaded)
	})

	t.Run("Success - Unknown Version Is An Empty Cart", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		envelope, err := json.Marshal(models.PersistedCart{Version: 99, Lines: []models.CartLine{{ID: "l1"}}})
		require.NoError(t, err)

		mock.ExpectGet("cart:session-1").SetVal(string(envelope))

		// Act
		loaded, err := cartStore.LoadLines(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestSaveLines(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Writes Versioned Envelope", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		lines := []models.CartLine{{ID: "l1", Name: "Royal", UnitPrice: 9.90, Quantity: 2}}
		envelope, err := json.Marshal(models.PersistedCart{Version: models.PersistedCartVersion, Lines: lines})
		require.NoError(t, err)

		mock.ExpectSet("cart:session-1", envelope, cartTTL).SetVal("OK")

		// Act
		err = cartStore.SaveLines(ctx, "session-1", lines)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Write Error Surfaces", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		envelope, err := json.Marshal(models.PersistedCart{Version: models.PersistedCartVersion, Lines: nil})
		require.NoError(t, err)

		mock.ExpectSet("cart:session-1", envelope, cartTTL).SetErr(assert.AnError)

		// Act
		err = cartStore.SaveLines(ctx, "session-1", nil)

		// Assert
		require.Error(t, err)
	})
}

func TestLastOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Round Trip", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		info := &models.LastOrderInfo{
			TenantID:  "restaurante_central_01",
			UUID:      "abc-123",
			Timestamp: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		}
		data, err := json.Marshal(info)
		require.NoError(t, err)

		mock.ExpectSet("last_order:session-1", data, cartTTL).SetVal("OK")
		mock.ExpectGet("last_order:session-1").SetVal(string(data))

		// Act
		require.NoError(t, cartStore.SaveLastOrder(ctx, "session-1", info))
		loaded, err := cartStore.LoadLastOrder(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, info, loaded)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing Key Is Nil", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		cartStore := store.NewRedisCartStore(client)

		mock.ExpectGet("last_order:session-1").RedisNil()

		// Act
		loaded, err := cartStore.LoadLastOrder(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}
