package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// InventoryRepository implementación REST del puerto repository.InventoryRepository.
// Trabaja con la clave compuesta (warehouse_id, part_id) en la ruta.
type InventoryRepository struct {
	c *Client
}

// NewInventoryRepository construye el repositorio.
func NewInventoryRepository(c *Client) *InventoryRepository {
	return &InventoryRepository{c: c}
}

func inventoryPath(warehouseID, partID string) string {
	return "/factory/inventory/" + url.PathEscape(warehouseID) + "/" + url.PathEscape(partID)
}

// List trae las existencias (filtros opcionales por almacén y pieza).
func (r *InventoryRepository) List(ctx context.Context, filter repository.InventoryFilter) ([]entity.Inventory, error) {
	query := url.Values{}
	if filter.WarehouseID != "" {
		query.Set("warehouse_id", filter.WarehouseID)
	}
	if filter.PartID != "" {
		query.Set("part_id", filter.PartID)
	}
	var out []entity.Inventory
	if err := r.c.Get(ctx, "/factory/inventory", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra una fila de inventario; el servidor responde 409 si el par
// (warehouse_id, part_id) ya existe.
func (r *InventoryRepository) Create(ctx context.Context, inventory entity.Inventory) (*entity.Inventory, error) {
	var out entity.Inventory
	if err := r.c.Post(ctx, "/factory/inventory", inventory, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifica el stock de una fila; la clave compuesta viaja en la ruta
// con ambos componentes explícitos y no es modificable.
func (r *InventoryRepository) Update(ctx context.Context, warehouseID, partID string, patch entity.InventoryPatch) (*entity.Inventory, error) {
	var out entity.Inventory
	if err := r.c.Put(ctx, inventoryPath(warehouseID, partID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una fila por su clave compuesta.
func (r *InventoryRepository) Delete(ctx context.Context, warehouseID, partID string) error {
	return r.c.Delete(ctx, inventoryPath(warehouseID, partID))
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)
