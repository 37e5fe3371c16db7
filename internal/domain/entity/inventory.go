package entity

import "time"

// Inventory representa la existencia de una pieza en un almacén.
// La clave es compuesta (warehouse_id, part_id) y es inmutable: a lo sumo
// una fila por par; StockQuantity nunca es negativo.
type Inventory struct {
	WarehouseID   string    `json:"warehouse_id"`
	PartID        string    `json:"part_id"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// Key devuelve la clave compuesta.
func (i Inventory) Key() InventoryKey {
	return InventoryKey{WarehouseID: i.WarehouseID, PartID: i.PartID}
}

// InventoryKey clave compuesta de una fila de inventario.
type InventoryKey struct {
	WarehouseID string
	PartID      string
}

func (k InventoryKey) String() string { return k.WarehouseID + "/" + k.PartID }

// InventoryPatch campos modificables; la clave compuesta no se puede tocar.
type InventoryPatch struct {
	StockQuantity *int `json:"stock_quantity,omitempty"`
}
