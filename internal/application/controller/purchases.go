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

// PurchasesScreen pantalla de compras: referencia pieza, proveedor y almacén
// a la vez, con tres resolvers independientes cargados en paralelo.
type PurchasesScreen struct {
	*Screen[entity.Purchase]
	parts      *refs.Resolver[entity.Part]
	suppliers  *refs.Resolver[entity.Supplier]
	warehouses *refs.Resolver[entity.Warehouse]
}

// PartLabel etiqueta legible de la pieza.
func (s *PurchasesScreen) PartLabel(partID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parts.Resolve(partID)
}

// SupplierLabel etiqueta legible del proveedor.
func (s *PurchasesScreen) SupplierLabel(supplierID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppliers.Resolve(supplierID)
}

// WarehouseLabel etiqueta legible del almacén.
func (s *PurchasesScreen) WarehouseLabel(warehouseID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Resolve(warehouseID)
}

// NewPurchasesScreen construye la pantalla de compras.
func NewPurchasesScreen(
	repo repository.PurchaseRepository,
	partRepo repository.PartRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *PurchasesScreen {
	parts := refs.NewResolver(refs.PartFormat())
	suppliers := refs.NewResolver(refs.SupplierFormat())
	warehouses := refs.NewResolver(refs.WarehouseFormat())

	cfg := ScreenConfig[entity.Purchase]{
		Name: "purchases",
		Fields: []form.Field{
			{Name: "purchase_id", Label: "ID de compra", Kind: form.KindText, Required: true, Key: true},
			{Name: "part_id", Label: "Pieza", Kind: form.KindText, Required: true},
			{Name: "supplier_id", Label: "Proveedor", Kind: form.KindText, Required: true},
			{Name: "warehouse_id", Label: "Almacén", Kind: form.KindText, Required: true},
			{Name: "purchase_date", Label: "Fecha de compra", Kind: form.KindDate, Required: true},
			{Name: "quantity", Label: "Cantidad", Kind: form.KindInteger, Required: true, Sign: form.SignPositive},
			{Name: "actual_price", Label: "Precio real", Kind: form.KindNumber, Required: true, Sign: form.SignNonNegative},
		},
		List: repo.List,
		Refs: []RefLoader{
			Ref(func(ctx context.Context) ([]entity.Part, error) {
				return partRepo.List(ctx, repository.PartFilter{})
			}, parts.Set),
			Ref(supplierRepo.List, suppliers.Set),
			Ref(warehouseRepo.List, warehouses.Set),
		},
		Create: func(ctx context.Context, f *form.Form) error {
			purchase := entity.Purchase{
				PurchaseID:   f.Get("purchase_id"),
				PartID:       f.Get("part_id"),
				SupplierID:   f.Get("supplier_id"),
				WarehouseID:  f.Get("warehouse_id"),
				PurchaseDate: f.Date("purchase_date"),
				Quantity:     f.Int("quantity"),
				ActualPrice:  f.Decimal("actual_price"),
			}
			_, err := repo.Create(ctx, purchase)
			return err
		},
		Update: func(ctx context.Context, row entity.Purchase, f *form.Form) error {
			patch := entity.PurchasePatch{
				PartID:       changedString(row.PartID, f.Get("part_id")),
				SupplierID:   changedString(row.SupplierID, f.Get("supplier_id")),
				WarehouseID:  changedString(row.WarehouseID, f.Get("warehouse_id")),
				PurchaseDate: changedDate(row.PurchaseDate, f.Get("purchase_date")),
				Quantity:     changedInt(row.Quantity, f.Get("quantity")),
				ActualPrice:  changedDecimal(row.ActualPrice, f.Get("actual_price")),
			}
			_, err := repo.Update(ctx, row.PurchaseID, patch)
			return err
		},
		Remove: func(ctx context.Context, row entity.Purchase) error {
			return repo.Delete(ctx, row.PurchaseID)
		},
		Fill: func(row entity.Purchase, f *form.Form) {
			f.Populate(map[string]string{
				"purchase_id":   row.PurchaseID,
				"part_id":       row.PartID,
				"supplier_id":   row.SupplierID,
				"warehouse_id":  row.WarehouseID,
				"purchase_date": row.PurchaseDate.String(),
				"quantity":      strconv.Itoa(row.Quantity),
				"actual_price":  row.ActualPrice.String(),
			})
		},
	}

	return &PurchasesScreen{
		Screen:     NewScreen(cfg, notifier, log),
		parts:      parts,
		suppliers:  suppliers,
		warehouses: warehouses,
	}
}
