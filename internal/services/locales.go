package service

import (
	"context"
	"log/slog"

	"github.com/rsalazarq/storefront/internal/cache"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/gateways"
	"github.com/rsalazarq/storefront/internal/models"
)

// LocalesService fronts the store-locations backend. Locations change rarely,
// so the full list is cached under one key.
type LocalesService struct {
	gateway gateways.LocalesGateway
	cache   cache.Cache
}

func NewLocalesService(gateway gateways.LocalesGateway, cacheStore cache.Cache) *LocalesService {
	return &LocalesService{
		gateway: gateway,
		cache:   cacheStore,
	}
}

func (s *LocalesService) List(ctx context.Context) ([]models.Locale, error) {

	key := cache.Key(cache.LocaleKeyPrefix, "all")

	if s.cache != nil {
		var cached []models.Locale

		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Locales cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return cached, nil
		}
	}

	locales, err := s.gateway.List(ctx)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch store locations").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, locales, 0); err != nil {
			slog.Warn("Locales cache write failed", slog.String("error", err.Error()))
		}
	}

	return locales, nil
}

func (s *LocalesService) GetByID(ctx context.Context, tenantID string) (*models.Locale, error) {

	locale, err := s.gateway.GetByID(ctx, tenantID)
	if err != nil {
		return nil, errors.NotFoundError("Store location not found").WithError(err)
	}

	return locale, nil
}

func (s *LocalesService) Filter(ctx context.Context, query string) ([]models.Locale, error) {

	locales, err := s.gateway.Filter(ctx, query)
	if err != nil {
		return nil, errors.GatewayError("Failed to filter store locations").WithError(err)
	}

	return locales, nil
}
