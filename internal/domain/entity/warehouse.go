package entity

import "time"

// Warehouse representa un almacén de la fábrica. Lo referencian Staff,
// Inventory, Purchase y AppUser.
type Warehouse struct {
	WarehouseID string    `json:"warehouse_id"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// Key devuelve la clave primaria.
func (w Warehouse) Key() string { return w.WarehouseID }

// WarehousePatch campos modificables en una actualización parcial.
type WarehousePatch struct {
	Address *string `json:"address,omitempty"`
}
