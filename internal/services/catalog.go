package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rsalazarq/storefront/internal/cache"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/gateways"
	"github.com/rsalazarq/storefront/internal/models"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService fronts the product and combo backends with a read-through
// cache. Cache failures degrade to a direct fetch, never to an error.
type CatalogService struct {
	gateway gateways.CatalogGateway
	cache   cache.Cache
}

func NewCatalogService(gateway gateways.CatalogGateway, cacheStore cache.Cache) *CatalogService {
	return &CatalogService{
		gateway: gateway,
		cache:   cacheStore,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, tenantID string) ([]models.CatalogProduct, error) {

	key := cache.Key(cache.ProductKeyPrefix, tenantID)

	var cached []models.CatalogProduct
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return cached, nil
	}

	products, err := s.gateway.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch products").WithError(err)
	}

	s.cacheSet(ctx, key, products)

	return products, nil
}

func (s *CatalogService) GetProductDetail(ctx context.Context, tenantID, name string) (*models.CatalogProduct, error) {

	product, err := s.gateway.GetProductDetail(ctx, tenantID, name)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *CatalogService) ListCombos(ctx context.Context, tenantID string) ([]models.CatalogCombo, error) {

	key := cache.Key(cache.ComboKeyPrefix, tenantID)

	var cached []models.CatalogCombo
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return cached, nil
	}

	combos, err := s.gateway.ListCombos(ctx, tenantID)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch combos").WithError(err)
	}

	s.cacheSet(ctx, key, combos)

	return combos, nil
}

func (s *CatalogService) GetComboDetail(ctx context.Context, tenantID, name string) (*models.CatalogCombo, error) {

	combo, err := s.gateway.GetComboDetail(ctx, tenantID, name)
	if err != nil {
		return nil, errors.NotFoundError("Combo not found").WithError(err)
	}

	return combo, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest any) bool {

	if s.cache == nil {
		return false
	}

	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))

		return false
	}

	return hit
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value, catalogCacheTTL); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
