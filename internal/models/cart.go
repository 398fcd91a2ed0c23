package models

import "strings"

// SubItem is one chosen sub-option of a cart line (a sauce, a side, a drink).
// Pricing is already resolved into the line's unit price at add time.
type SubItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CartLine is one purchasable entry in the cart, unique per identity.
type CartLine struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	UnitPrice     float64              `json:"price"`
	TotalPrice    float64              `json:"total_price,omitempty"`
	Quantity      int                  `json:"quantity"`
	SelectedSize  string               `json:"selected_size,omitempty"`
	Selections    map[string][]SubItem `json:"selections,omitempty"`
	Ingredients   []string             `json:"ingredientes,omitempty"`
	Observaciones string               `json:"observaciones,omitempty"`
	ImageURL      string               `json:"image_url,omitempty"`
}

// Identity returns the deduplication key for the line: the name, suffixed with
// the selected size when one is set. It is derived on every comparison, never
// stored, so lines added from differently shaped inputs still collide.
func (l *CartLine) Identity() string {
	name := l.Name
	if name == "" {
		name = l.ID
	}

	if l.SelectedSize != "" {
		return name + "-" + l.SelectedSize
	}

	return name
}

// EffectiveUnitPrice prefers the precomputed per-unit total (size surcharge
// folded in) over the plain unit price.
func (l *CartLine) EffectiveUnitPrice() float64 {
	if l.TotalPrice > 0 {
		return l.TotalPrice
	}

	return l.UnitPrice
}

// CartSnapshot is the full cart state plus totals derived from the lines on
// every read.
type CartSnapshot struct {
	Lines    []CartLine `json:"lines"`
	Total    float64    `json:"total"`
	Count    int        `json:"count"`
	CartOpen bool       `json:"cart_open"`
}

// PersistedCartVersion guards the stored snapshot format. A stored envelope
// with a different version is treated like corrupt data: empty cart.
const PersistedCartVersion = 1

// PersistedCart is the envelope written to the snapshot store. Only the lines
// are persisted; totals are recomputed on load.
type PersistedCart struct {
	Version int        `json:"version"`
	Lines   []CartLine `json:"lines"`
}

type UpdateQuantityRequest struct {
	LineID   string `json:"line_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// AddItemRequest is the discriminated add-to-cart body. Exactly one of the
// variant fields must be set, named by Type.
type AddItemRequest struct {
	Type     string           `json:"type" validate:"required,oneof=product combo detail"`
	Quantity int              `json:"quantity"`
	Product  *CatalogProduct  `json:"product,omitempty"`
	Combo    *CatalogCombo    `json:"combo,omitempty"`
	Detail   *DetailSelection `json:"detail,omitempty"`
}

// Input resolves the variant named by Type, or nil when the named field is
// missing.
func (r *AddItemRequest) Input() CartInput {
	switch r.Type {
	case "product":
		if r.Product != nil {
			return *r.Product
		}
	case "combo":
		if r.Combo != nil {
			return *r.Combo
		}
	case "detail":
		if r.Detail != nil {
			return *r.Detail
		}
	}

	return nil
}

// NormalizeSize lowercases a size discriminator so "Grande" and "grande"
// surcharge the same way.
func NormalizeSize(size string) string {
	return strings.ToLower(strings.TrimSpace(size))
}
