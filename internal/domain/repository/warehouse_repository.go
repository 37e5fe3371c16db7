package repository

import (
	"context"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// WarehouseRepository define el puerto de acceso a datos para Warehouse.
type WarehouseRepository interface {
	List(ctx context.Context) ([]entity.Warehouse, error)
	Create(ctx context.Context, warehouse entity.Warehouse) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouseID string, patch entity.WarehousePatch) (*entity.Warehouse, error)
	Delete(ctx context.Context, warehouseID string) error
}
