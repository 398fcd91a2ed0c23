package service

import (
	"context"

	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/gateways"
	"github.com/rsalazarq/storefront/internal/models"
)

// FavoritosService manages the shopper's saved products. Every call requires
// the shopper's own bearer token; the backend scopes favorites by it.
type FavoritosService struct {
	gateway gateways.FavoritosGateway
}

func NewFavoritosService(gateway gateways.FavoritosGateway) *FavoritosService {
	return &FavoritosService{gateway: gateway}
}

func (s *FavoritosService) List(ctx context.Context, token string) ([]models.Favorito, error) {

	if token == "" {
		return nil, errors.UnauthorizedError("Favorites require a signed-in shopper")
	}

	favoritos, err := s.gateway.List(ctx, token)
	if err != nil {
		return nil, errors.GatewayError("Failed to fetch favorites").WithError(err)
	}

	if favoritos == nil {
		favoritos = []models.Favorito{}
	}

	return favoritos, nil
}

func (s *FavoritosService) Add(ctx context.Context, token string, favorito *models.Favorito) error {

	if token == "" {
		return errors.UnauthorizedError("Favorites require a signed-in shopper")
	}

	if err := s.gateway.Add(ctx, token, favorito); err != nil {
		return errors.GatewayError("Failed to save favorite").WithError(err)
	}

	return nil
}

// Toggle adds the product when it is not yet a favorite and removes it when
// it is. The backend has no toggle endpoint, so membership is resolved with a
// list call first.
func (s *FavoritosService) Toggle(ctx context.Context, token string, favorito *models.Favorito) (added bool, err error) {

	favoritos, err := s.List(ctx, token)
	if err != nil {
		return false, err
	}

	for i := range favoritos {
		if favoritos[i].Nombre == favorito.Nombre {
			return false, s.Remove(ctx, token, favorito)
		}
	}

	return true, s.Add(ctx, token, favorito)
}

func (s *FavoritosService) Remove(ctx context.Context, token string, favorito *models.Favorito) error {

	if token == "" {
		return errors.UnauthorizedError("Favorites require a signed-in shopper")
	}

	if err := s.gateway.Remove(ctx, token, favorito); err != nil {
		return errors.GatewayError("Failed to remove favorite").WithError(err)
	}

	return nil
}
