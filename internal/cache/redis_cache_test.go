package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rsalazarq/storefront/internal/cache"
	"github.com/rsalazarq/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	Field1 string `json:"field1"`
	Field2 int    `json:"field2"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	testKey := cache.Key(cache.ProductKeyPrefix, "restaurante_central_01")
	testValue := testData{Field1: "value1", Field2: 123}

	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result testData

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Missing", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result testData

		mock.ExpectGet(testKey).RedisNil()

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result testData

		mock.ExpectGet(testKey).SetVal("{not json")

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	testKey := cache.Key(cache.ComboKeyPrefix, "restaurante_central_01")
	testValue := testData{Field1: "value1", Field2: 123}

	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 5*time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, testKey, testValue, 5*time.Minute)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Uses Default", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 10*time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, testKey, testValue, 0)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	testKey := cache.Key(cache.LocaleKeyPrefix, "all")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		// Act
		err := redisCache.Delete(ctx, testKey)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
