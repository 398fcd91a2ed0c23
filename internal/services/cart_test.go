package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

func newCartService() (*service.CartService, *store.MemoryCartStore) {
	memStore := store.NewMemoryCartStore()

	return service.NewCartService(memStore), memStore
}

func TestAddLine(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New Line Gets Fresh ID", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 12.90}, 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.NotEmpty(t, snapshot.Lines[0].ID)
		assert.Equal(t, 1, snapshot.Lines[0].Quantity)
		assert.True(t, snapshot.CartOpen, "adding should open the cart drawer")
	})

	t.Run("Success - Same Identity Merges Quantities", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		_, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 12.90, Description: "first"}, 1)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 12.90, Description: "second"}, 2)

		// Assert
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1, "same identity must collapse into one line")
		assert.Equal(t, 3, snapshot.Lines[0].Quantity)
		assert.Equal(t, "first", snapshot.Lines[0].Description, "merge keeps the first-inserted line's metadata")
		assert.InDelta(t, 38.70, snapshot.Total, 0.001)
		assert.Equal(t, 3, snapshot.Count)
	})

	t.Run("Success - Different Sizes Stay Distinct", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		_, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 12.90, SelectedSize: "Regular"}, 1)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 15.90, SelectedSize: "Grande"}, 1)

		// Assert
		require.NoError(t, err)
		assert.Len(t, snapshot.Lines, 2, "size is part of the line identity")
	})

	t.Run("Success - Non-Positive Quantity Defaults To One", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 0)
		require.NoError(t, err)
		snapshot, err = cartService.AddLine(ctx, "other-session", models.CartLine{Name: "Royal", UnitPrice: 9.90}, -3)

		// Assert
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 1, snapshot.Lines[0].Quantity)
	})

	t.Run("Success - Total Prefers Per-Unit Total Price", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Doble Grande", UnitPrice: 12.90, TotalPrice: 16.90}, 2)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 33.80, snapshot.Total, 0.001)
	})

	t.Run("Failure - Write Error Surfaces As Storage Error", func(t *testing.T) {
		// Arrange
		cartService, memStore := newCartService()
		memStore.FailWrites = errors.New("redis: connection refused")

		// Act
		snapshot, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 1)

		// Assert
		require.Error(t, err)
		assert.Nil(t, snapshot)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorage, appErr.Code)
	})
}

func TestAddInput(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Detail Selection Carries Size Surcharge", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		input := models.DetailSelection{
			Product:      models.CatalogProduct{NombreProducto: "Queso Tocino", Precio: 12.90, PrecioExtra: 2.00},
			SelectedSize: "Grande",
		}

		// Act
		snapshot, err := cartService.AddInput(ctx, testSession, input, 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, "Grande", snapshot.Lines[0].SelectedSize)
		assert.InDelta(t, 16.90, snapshot.Lines[0].EffectiveUnitPrice(), 0.001)
	})

	t.Run("Success - Product And Sized Detail Do Not Merge", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		_, err := cartService.AddInput(ctx, testSession, models.CatalogProduct{NombreProducto: "Queso Tocino", Precio: 12.90}, 1)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.AddInput(ctx, testSession, models.DetailSelection{
			Product:      models.CatalogProduct{NombreProducto: "Queso Tocino", Precio: 12.90},
			SelectedSize: "Grande",
		}, 1)

		// Assert
		require.NoError(t, err)
		assert.Len(t, snapshot.Lines, 2)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sets Exact Quantity", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		added, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 1)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.UpdateQuantity(ctx, testSession, added.Lines[0].ID, 5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 5, snapshot.Lines[0].Quantity)
		assert.Equal(t, 5, snapshot.Count)
	})

	t.Run("Success - Quantity Below One Removes The Line", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			// Arrange
			cartService, _ := newCartService()
			added, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 2)
			require.NoError(t, err)

			// Act
			snapshot, err := cartService.UpdateQuantity(ctx, testSession, added.Lines[0].ID, quantity)

			// Assert
			require.NoError(t, err)
			assert.Empty(t, snapshot.Lines)
			assert.Equal(t, 0, snapshot.Count)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Removes Only The Named Line", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		_, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 1)
		require.NoError(t, err)
		added, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Queso Tocino", UnitPrice: 12.90}, 1)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.RemoveItem(ctx, testSession, added.Lines[1].ID)

		// Assert
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, "Royal", snapshot.Lines[0].Name)
	})

	t.Run("Success - Unknown ID Is A No-Op", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		added, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 2)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.RemoveItem(ctx, testSession, "no-such-id")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, added.Lines, snapshot.Lines)
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Empties And Stays Empty", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		_, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 9.90}, 2)
		require.NoError(t, err)

		// Act
		first, err := cartService.ClearCart(ctx, testSession)
		require.NoError(t, err)
		second, err := cartService.ClearCart(ctx, testSession)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, first.Lines)
		assert.Equal(t, first.Lines, second.Lines, "clearing twice is the same as clearing once")
		assert.Equal(t, 0, second.Count)
		assert.Equal(t, float64(0), second.Total)
	})
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Totals Derive From Lines", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()
		_, err := cartService.AddLine(ctx, testSession, models.CartLine{Name: "Combo Familiar", UnitPrice: 10.50}, 1)
		require.NoError(t, err)
		_, err = cartService.AddLine(ctx, testSession, models.CartLine{Name: "Royal", UnitPrice: 7.50}, 2)
		require.NoError(t, err)

		// Act
		snapshot, err := cartService.GetCart(ctx, testSession)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, snapshot.Count)
		assert.InDelta(t, 25.50, snapshot.Total, 0.001)
	})

	t.Run("Success - Empty Session Yields Empty Snapshot", func(t *testing.T) {
		// Arrange
		cartService, _ := newCartService()

		// Act
		snapshot, err := cartService.GetCart(ctx, "fresh-session")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, snapshot.Lines)
		assert.Empty(t, snapshot.Lines)
		assert.False(t, snapshot.CartOpen)
	})
}

func TestToggleCart(t *testing.T) {
	// Arrange
	cartService, _ := newCartService()

	// Act & Assert
	assert.True(t, cartService.ToggleCart(testSession))
	assert.False(t, cartService.ToggleCart(testSession))

	// drawer state is per session
	assert.True(t, cartService.ToggleCart("other-session"))
}
