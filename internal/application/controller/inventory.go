package controller

import (
	"context"
	"strconv"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/application/refs"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// InventoryScreen pantalla de existencias. La clave es compuesta
// (warehouse_id, part_id): ambos campos quedan deshabilitados en edición y
// el listado etiqueta almacén y pieza con sus resolvers.
type InventoryScreen struct {
	*Screen[entity.Inventory]
	warehouses *refs.Resolver[entity.Warehouse]
	parts      *refs.Resolver[entity.Part]
}

// WarehouseLabel etiqueta legible del almacén; fallback a la clave cruda.
func (s *InventoryScreen) WarehouseLabel(warehouseID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Resolve(warehouseID)
}

// PartLabel etiqueta legible de la pieza; fallback a la clave cruda.
func (s *InventoryScreen) PartLabel(partID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parts.Resolve(partID)
}

// NewInventoryScreen construye la pantalla; al montar carga existencias,
// almacenes y piezas en paralelo (join lógico, sin resultados parciales).
func NewInventoryScreen(
	repo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
	partRepo repository.PartRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *InventoryScreen {
	warehouses := refs.NewResolver(refs.WarehouseFormat())
	parts := refs.NewResolver(refs.PartFormat())

	cfg := ScreenConfig[entity.Inventory]{
		Name: "inventory",
		Fields: []form.Field{
			{Name: "warehouse_id", Label: "Almacén", Kind: form.KindText, Required: true, Key: true},
			{Name: "part_id", Label: "Pieza", Kind: form.KindText, Required: true, Key: true},
			{Name: "stock_quantity", Label: "Cantidad en stock", Kind: form.KindInteger, Required: true, Sign: form.SignNonNegative},
		},
		List: func(ctx context.Context) ([]entity.Inventory, error) {
			return repo.List(ctx, repository.InventoryFilter{})
		},
		Refs: []RefLoader{
			Ref(warehouseRepo.List, warehouses.Set),
			Ref(func(ctx context.Context) ([]entity.Part, error) {
				return partRepo.List(ctx, repository.PartFilter{})
			}, parts.Set),
		},
		Create: func(ctx context.Context, f *form.Form) error {
			inventory := entity.Inventory{
				WarehouseID:   f.Get("warehouse_id"),
				PartID:        f.Get("part_id"),
				StockQuantity: f.Int("stock_quantity"),
			}
			_, err := repo.Create(ctx, inventory)
			return err
		},
		Update: func(ctx context.Context, row entity.Inventory, f *form.Form) error {
			patch := entity.InventoryPatch{
				StockQuantity: changedInt(row.StockQuantity, f.Get("stock_quantity")),
			}
			_, err := repo.Update(ctx, row.WarehouseID, row.PartID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Inventory) error {
			return repo.Delete(ctx, row.WarehouseID, row.PartID)
		},
		Fill: func(row entity.Inventory, f *form.Form) {
			f.Populate(map[string]string{
				"warehouse_id":   row.WarehouseID,
				"part_id":        row.PartID,
				"stock_quantity": strconv.Itoa(row.StockQuantity),
			})
		},
	}

	return &InventoryScreen{
		Screen:     NewScreen(cfg, notifier, log),
		warehouses: warehouses,
		parts:      parts,
	}
}
