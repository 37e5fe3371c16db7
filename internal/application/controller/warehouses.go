package controller

import (
	"context"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// NewWarehousesScreen pantalla de almacenes.
func NewWarehousesScreen(repo repository.WarehouseRepository, notifier notify.Notifier, log *logger.Logger) *Screen[entity.Warehouse] {
	cfg := ScreenConfig[entity.Warehouse]{
		Name: "warehouses",
		Fields: []form.Field{
			{Name: "warehouse_id", Label: "ID de almacén", Kind: form.KindText, Required: true, Key: true},
			{Name: "address", Label: "Dirección", Kind: form.KindText, Required: true},
		},
		List: repo.List,
		Create: func(ctx context.Context, f *form.Form) error {
			warehouse := entity.Warehouse{
				WarehouseID: f.Get("warehouse_id"),
				Address:     f.Get("address"),
			}
			_, err := repo.Create(ctx, warehouse)
			return err
		},
		Update: func(ctx context.Context, row entity.Warehouse, f *form.Form) error {
			patch := entity.WarehousePatch{
				Address: changedString(row.Address, f.Get("address")),
			}
			_, err := repo.Update(ctx, row.WarehouseID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Warehouse) error {
			return repo.Delete(ctx, row.WarehouseID)
		},
		Fill: func(row entity.Warehouse, f *form.Form) {
			f.Populate(map[string]string{
				"warehouse_id": row.WarehouseID,
				"address":      row.Address,
			})
		},
	}
	return NewScreen(cfg, notifier, log)
}
