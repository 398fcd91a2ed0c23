package models

// Favorito is one saved product in the favorites backend, keyed by name.
type Favorito struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio" validate:"gte=0"`
}
