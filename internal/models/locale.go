package models

// Locale is a physical store as the locations backend returns it. Tenant ids
// contain '#' (e.g. "LIMA#CENTRO") and must be URL-escaped in paths.
type Locale struct {
	TenantID     string   `json:"tenant_id"`
	Direccion    string   `json:"direccion"`
	Telefono     string   `json:"telefono,omitempty"`
	TipoDespacho []string `json:"tipo_despacho,omitempty"`
	Latitud      string   `json:"latitud,omitempty"`
	Longitud     string   `json:"longitud,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}
