package models

// The catalog backends return three different shapes for "a thing you can add
// to the cart": a raw product row, a raw combo row, and the richer item the
// detail page assembles (size picked, surcharge applied). Instead of probing
// field names at runtime, each shape is a named variant with one explicit
// mapping to a CartLine.

// CartInput is the tagged union of addable item shapes.
type CartInput interface {
	// ToCartLine maps the variant to a normalized line. The returned line has
	// no ID and no quantity; the cart core assigns both.
	ToCartLine() CartLine
}

// CatalogProduct is a product row as the products backend returns it.
type CatalogProduct struct {
	NombreProducto string   `json:"nombre_producto"`
	TenantID       string   `json:"tenant_id,omitempty"`
	Descripcion    string   `json:"descripcion,omitempty"`
	Precio         float64  `json:"precio"`
	PrecioExtra    float64  `json:"precio_extra,omitempty"`
	Tamano         []string `json:"tamano,omitempty"`
	Stock          int      `json:"stock"`
	Imagen         string   `json:"imagen,omitempty"`
	Ingredientes   []string `json:"ingredientes,omitempty"`
}

func (p CatalogProduct) ToCartLine() CartLine {
	return CartLine{
		Name:        p.NombreProducto,
		Description: p.Descripcion,
		UnitPrice:   p.Precio,
		ImageURL:    p.Imagen,
		Ingredients: p.Ingredientes,
	}
}

// ComboComponent is one constituent product of a combo.
type ComboComponent struct {
	Nombre   string `json:"Nombre"`
	Tamano   string `json:"tamano,omitempty"`
	Cantidad int    `json:"cantidad_de_ese_producto_que_usa,omitempty"`
}

// CatalogCombo is a combo row as the combos backend returns it.
type CatalogCombo struct {
	NombreCombo string           `json:"nombre"`
	TenantID    string           `json:"tenant_id,omitempty"`
	Descripcion string           `json:"descripcion,omitempty"`
	Precio      float64          `json:"precio"`
	Stock       int              `json:"stock"`
	Imagen      string           `json:"imagen,omitempty"`
	Productos   []ComboComponent `json:"Productos,omitempty"`
}

func (c CatalogCombo) ToCartLine() CartLine {
	line := CartLine{
		Name:        c.NombreCombo,
		Description: c.Descripcion,
		UnitPrice:   c.Precio,
		ImageURL:    c.Imagen,
	}

	if len(c.Productos) > 0 {
		line.Selections = map[string][]SubItem{"combo": {}}
		for _, comp := range c.Productos {
			qty := comp.Cantidad
			if qty < 1 {
				qty = 1
			}
			line.Selections["combo"] = append(line.Selections["combo"], SubItem{Name: comp.Nombre, Quantity: qty})
		}
	}

	return line
}

// DetailSelection is the item the product detail page assembles: a product
// with a chosen size and the size surcharge folded into the per-unit total.
type DetailSelection struct {
	Product       CatalogProduct
	SelectedSize  string
	Observaciones string
}

func (d DetailSelection) ToCartLine() CartLine {
	line := d.Product.ToCartLine()
	line.SelectedSize = d.SelectedSize
	line.Observaciones = d.Observaciones
	line.TotalPrice = line.UnitPrice + d.sizeSurcharge()

	return line
}

// Medium sizes carry the surcharge once, large twice. Anything else is the
// base price.
func (d DetailSelection) sizeSurcharge() float64 {
	switch NormalizeSize(d.SelectedSize) {
	case "mediano", "mediana":
		return d.Product.PrecioExtra
	case "grande":
		return d.Product.PrecioExtra * 2
	default:
		return 0
	}
}
