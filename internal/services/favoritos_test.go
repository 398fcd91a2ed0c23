package service_test

import (
	"context"
	"testing"

	appErrors "github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFavoritosGateway struct {
	mock.Mock
}

func (m *mockFavoritosGateway) List(ctx context.Context, token string) ([]models.Favorito, error) {
	args := m.Called(ctx, token)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Favorito), args.Error(1)
}

func (m *mockFavoritosGateway) Add(ctx context.Context, token string, favorito *models.Favorito) error {
	return m.Called(ctx, token, favorito).Error(0)
}

func (m *mockFavoritosGateway) Remove(ctx context.Context, token string, favorito *models.Favorito) error {
	return m.Called(ctx, token, favorito).Error(0)
}

func TestFavoritosList(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Missing Token", func(t *testing.T) {
		// Arrange
		favoritosService := service.NewFavoritosService(new(mockFavoritosGateway))

		// Act
		favoritos, err := favoritosService.List(ctx, "")

		// Assert
		require.Error(t, err)
		assert.Nil(t, favoritos)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Success - Nil Backend Response Becomes Empty List", func(t *testing.T) {
		// Arrange
		gateway := new(mockFavoritosGateway)
		gateway.On("List", ctx, "token-1").Return([]models.Favorito(nil), nil).Once()
		favoritosService := service.NewFavoritosService(gateway)

		// Act
		favoritos, err := favoritosService.List(ctx, "token-1")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, favoritos)
		assert.Empty(t, favoritos)
	})
}

func TestFavoritosToggle(t *testing.T) {
	ctx := context.Background()
	favorito := &models.Favorito{Nombre: "Queso Tocino", Precio: 12.90}

	t.Run("Success - Adds When Absent", func(t *testing.T) {
		// Arrange
		gateway := new(mockFavoritosGateway)
		gateway.On("List", ctx, "token-1").Return([]models.Favorito{{Nombre: "Royal"}}, nil).Once()
		gateway.On("Add", ctx, "token-1", favorito).Return(nil).Once()
		favoritosService := service.NewFavoritosService(gateway)

		// Act
		added, err := favoritosService.Toggle(ctx, "token-1", favorito)

		// Assert
		require.NoError(t, err)
		assert.True(t, added)
		gateway.AssertExpectations(t)
	})

	t.Run("Success - Removes When Present", func(t *testing.T) {
		// Arrange
		gateway := new(mockFavoritosGateway)
		gateway.On("List", ctx, "token-1").Return([]models.Favorito{{Nombre: "Queso Tocino"}}, nil).Once()
		gateway.On("Remove", ctx, "token-1", favorito).Return(nil).Once()
		favoritosService := service.NewFavoritosService(gateway)

		// Act
		added, err := favoritosService.Toggle(ctx, "token-1", favorito)

		// Assert
		require.NoError(t, err)
		assert.False(t, added)
		gateway.AssertExpectations(t)
	})
}
