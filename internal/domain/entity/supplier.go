package entity

import "time"

// Supplier representa un proveedor de repuestos. Address y Phone son opcionales.
type Supplier struct {
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
	UpdatedAt  time.Time `json:"updated_at,omitzero"`
}

// Key devuelve la clave primaria.
func (s Supplier) Key() string { return s.SupplierID }

// SupplierPatch campos modificables en una actualización parcial.
type SupplierPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
