package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// WarehouseRepository implementación REST del puerto repository.WarehouseRepository.
type WarehouseRepository struct {
	c *Client
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(c *Client) *WarehouseRepository {
	return &WarehouseRepository{c: c}
}

// List trae todos los almacenes.
func (r *WarehouseRepository) List(ctx context.Context) ([]entity.Warehouse, error) {
	var out []entity.Warehouse
	if err := r.c.Get(ctx, "/factory/warehouses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un almacén nuevo.
func (r *WarehouseRepository) Create(ctx context.Context, warehouse entity.Warehouse) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := r.c.Post(ctx, "/factory/warehouses", warehouse, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía solo los campos cambiados de un almacén existente.
func (r *WarehouseRepository) Update(ctx context.Context, warehouseID string, patch entity.WarehousePatch) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := r.c.Put(ctx, "/factory/warehouses/"+url.PathEscape(warehouseID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un almacén por clave.
func (r *WarehouseRepository) Delete(ctx context.Context, warehouseID string) error {
	return r.c.Delete(ctx, "/factory/warehouses/"+url.PathEscape(warehouseID))
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)
