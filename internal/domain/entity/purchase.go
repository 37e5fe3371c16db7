package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra de piezas a un proveedor con destino a un
// almacén. Quantity es positiva y ActualPrice no negativa (valida el servidor).
type Purchase struct {
	PurchaseID   string          `json:"purchase_id"`
	PartID       string          `json:"part_id"`
	SupplierID   string          `json:"supplier_id"`
	WarehouseID  string          `json:"warehouse_id"`
	PurchaseDate Date            `json:"purchase_date"`
	Quantity     int             `json:"quantity"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	CreatedAt    time.Time       `json:"created_at,omitzero"`
	UpdatedAt    time.Time       `json:"updated_at,omitzero"`
}

// Key devuelve la clave primaria.
func (p Purchase) Key() string { return p.PurchaseID }

// PurchasePatch campos modificables en una actualización parcial.
type PurchasePatch struct {
	PartID       *string          `json:"part_id,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	WarehouseID  *string          `json:"warehouse_id,omitempty"`
	PurchaseDate *Date            `json:"purchase_date,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	ActualPrice  *decimal.Decimal `json:"actual_price,omitempty"`
}
