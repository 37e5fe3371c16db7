package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// InventoryFilter filtros opcionales del listado de inventario.
type InventoryFilter struct {
	WarehouseID string
	PartID      string
}

// InventoryRepository define el puerto de acceso a datos para Inventory.
// La clave es compuesta: Update y Delete reciben ambos componentes explícitos.
type InventoryRepository interface {
	List(ctx context.Context, filter InventoryFilter) ([]entity.Inventory, error)
	Create(ctx context.Context, inventory entity.Inventory) (*entity.Inventory, error)
	Update(ctx context.Context, warehouseID, partID string, patch entity.InventoryPatch) (*entity.Inventory, error)
	Delete(ctx context.Context, warehouseID, partID string) error
}
