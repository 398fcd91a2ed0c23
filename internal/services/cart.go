package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/internal/store"
)

// CartService owns what the shopper intends to buy: the merge/update/removal
// rules, the derived totals and the snapshot persisted after every mutation.
type CartService struct {
	store store.CartStore

	// drawer-open flags are per-session UI state, held in memory only; they
	// were never persisted in the storefront and are not persisted here
	mu         sync.Mutex
	drawerOpen map[string]bool
}

func NewCartService(cartStore store.CartStore) *CartService {
	return &CartService{
		store:      cartStore,
		drawerOpen: make(map[string]bool),
	}
}

// GetCart loads the session's lines and derives totals from them.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartSnapshot, error) {

	lines, err := s.store.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	return s.snapshot(sessionID, lines), nil
}

// AddInput maps a catalog item variant to a normalized line and merges it in.
func (s *CartService) AddInput(ctx context.Context, sessionID string, input models.CartInput, quantity int) (*models.CartSnapshot, error) {
	return s.AddLine(ctx, sessionID, input.ToCartLine(), quantity)
}

// AddLine merges an incoming line into the cart. The identity of the incoming
// line and of every stored line is re-derived with the same rule on each
// check; a match sums quantities and keeps the first-inserted line's metadata,
// otherwise a new line is appended with a fresh display id. Every successful
// add opens the cart drawer.
func (s *CartService) AddLine(ctx context.Context, sessionID string, line models.CartLine, quantity int) (*models.CartSnapshot, error) {

	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.store.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	identity := line.Identity()
	merged := false

	for i := range lines {
		if lines[i].Identity() == identity {
			lines[i].Quantity += quantity
			merged = true

			break
		}
	}

	if !merged {
		line.ID = uuid.NewString()
		line.Quantity = quantity
		lines = append(lines, line)
	}

	if err := s.store.SaveLines(ctx, sessionID, lines); err != nil {
		return nil, errors.StorageError("Failed to save cart").WithError(err)
	}

	s.setDrawerOpen(sessionID, true)

	return s.snapshot(sessionID, lines), nil
}

// UpdateQuantity replaces the quantity of the line with the given display id.
// A requested quantity below one removes the line; a non-positive quantity is
// never stored.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.CartSnapshot, error) {

	if quantity < 1 {
		return s.RemoveItem(ctx, sessionID, lineID)
	}

	lines, err := s.store.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity = quantity

			break
		}
	}

	if err := s.store.SaveLines(ctx, sessionID, lines); err != nil {
		return nil, errors.StorageError("Failed to save cart").WithError(err)
	}

	return s.snapshot(sessionID, lines), nil
}

// RemoveItem deletes the line with the given display id. An unknown id is a
// no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*models.CartSnapshot, error) {

	lines, err := s.store.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	kept := lines[:0]

	for _, line := range lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}

	if err := s.store.SaveLines(ctx, sessionID, kept); err != nil {
		return nil, errors.StorageError("Failed to save cart").WithError(err)
	}

	return s.snapshot(sessionID, kept), nil
}

// ClearCart empties the line collection unconditionally.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*models.CartSnapshot, error) {

	if err := s.store.SaveLines(ctx, sessionID, nil); err != nil {
		return nil, errors.StorageError("Failed to clear cart").WithError(err)
	}

	return s.snapshot(sessionID, nil), nil
}

// ToggleCart flips the drawer-open flag and returns the new value.
func (s *CartService) ToggleCart(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawerOpen[sessionID] = !s.drawerOpen[sessionID]

	return s.drawerOpen[sessionID]
}

func (s *CartService) setDrawerOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawerOpen[sessionID] = open
}

func (s *CartService) isDrawerOpen(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.drawerOpen[sessionID]
}

// snapshot recomputes total and count from the lines on every read so they
// can never drift from the underlying collection.
func (s *CartService) snapshot(sessionID string, lines []models.CartLine) *models.CartSnapshot {

	snap := &models.CartSnapshot{
		Lines:    lines,
		CartOpen: s.isDrawerOpen(sessionID),
	}

	if snap.Lines == nil {
		snap.Lines = []models.CartLine{}
	}

	for i := range snap.Lines {
		snap.Total += snap.Lines[i].EffectiveUnitPrice() * float64(snap.Lines[i].Quantity)
		snap.Count += snap.Lines[i].Quantity
	}

	return snap
}
