package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rsalazarq/storefront/internal/models"
)

// CartStore persists the full cart line collection under one fixed key per
// session. The snapshot is the unit of persistence: written whole, read whole.
type CartStore interface {
	LoadLines(ctx context.Context, sessionID string) ([]models.CartLine, error)
	SaveLines(ctx context.Context, sessionID string, lines []models.CartLine) error
	SaveLastOrder(ctx context.Context, sessionID string, info *models.LastOrderInfo) error
	LoadLastOrder(ctx context.Context, sessionID string) (*models.LastOrderInfo, error)
}

const (
	cartKeyPrefix      = "cart"
	lastOrderKeyPrefix = "last_order"

	// carts outlive idle sessions for a month, like a browser's local storage
	// would, then expire
	cartTTL = 30 * 24 * time.Hour
)

func cartKey(sessionID string) string {
	return cartKeyPrefix + ":" + sessionID
}

func lastOrderKey(sessionID string) string {
	return lastOrderKeyPrefix + ":" + sessionID
}

type redisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

// LoadLines returns the stored line collection. Absence, corrupt data and a
// version mismatch all fall back to an empty cart; only transport errors
// surface.
func (s *redisCartStore) LoadLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {

	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read cart for session %s: %w", sessionID, err)
	}

	var envelope models.PersistedCart

	if err := json.Unmarshal(data, &envelope); err != nil {
		slog.Warn("Discarding unreadable cart snapshot", slog.String("session_id", sessionID), slog.String("error", err.Error()))

		return nil, nil
	}

	if envelope.Version != models.PersistedCartVersion {
		slog.Warn("Discarding cart snapshot with unknown version", slog.String("session_id", sessionID), slog.Int("version", envelope.Version))

		return nil, nil
	}

	return envelope.Lines, nil
}

func (s *redisCartStore) SaveLines(ctx context.Context, sessionID string, lines []models.CartLine) error {

	envelope := models.PersistedCart{
		Version: models.PersistedCartVersion,
		Lines:   lines,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for session %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to write cart for session %s: %w", sessionID, err)
	}

	return nil
}

func (s *redisCartStore) SaveLastOrder(ctx context.Context, sessionID string, info *models.LastOrderInfo) error {

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal last order for session %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, lastOrderKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to write last order for session %s: %w", sessionID, err)
	}

	return nil
}

func (s *redisCartStore) LoadLastOrder(ctx context.Context, sessionID string) (*models.LastOrderInfo, error) {

	data, err := s.client.Get(ctx, lastOrderKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read last order for session %s: %w", sessionID, err)
	}

	info := &models.LastOrderInfo{}

	if err := json.Unmarshal(data, info); err != nil {
		return nil, nil
	}

	return info, nil
}
