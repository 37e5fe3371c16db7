package controller_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/application/controller"
	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de almacenes e inventario
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouses struct {
	mu      sync.Mutex
	rows    []entity.Warehouse
	listErr error
}

func (f *fakeWarehouses) List(ctx context.Context) ([]entity.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Warehouse, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeWarehouses) Create(ctx context.Context, w entity.Warehouse) (*entity.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, w)
	return &w, nil
}

func (f *fakeWarehouses) Update(context.Context, string, entity.WarehousePatch) (*entity.Warehouse, error) {
	return nil, domain.NewServerFailure(500, "no implementado en el fake")
}

func (f *fakeWarehouses) Delete(context.Context, string) error {
	return domain.NewServerFailure(500, "no implementado en el fake")
}

var _ repository.WarehouseRepository = (*fakeWarehouses)(nil)

type fakeInventory struct {
	mu   sync.Mutex
	rows []entity.Inventory
}

func (f *fakeInventory) List(ctx context.Context, _ repository.InventoryFilter) ([]entity.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Inventory, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeInventory) Create(ctx context.Context, inv entity.Inventory) (*entity.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Key() == inv.Key() {
			return nil, domain.NewServerFailure(409, "Inventory row already exists")
		}
	}
	f.rows = append(f.rows, inv)
	return &inv, nil
}

func (f *fakeInventory) Update(ctx context.Context, warehouseID, partID string, patch entity.InventoryPatch) (*entity.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].WarehouseID == warehouseID && f.rows[i].PartID == partID {
			if patch.StockQuantity != nil {
				f.rows[i].StockQuantity = *patch.StockQuantity
			}
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, domain.NewServerFailure(404, "Inventory not found")
}

func (f *fakeInventory) Delete(ctx context.Context, warehouseID, partID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].WarehouseID == warehouseID && f.rows[i].PartID == partID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.NewServerFailure(404, "Inventory not found")
}

var _ repository.InventoryRepository = (*fakeInventory)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Pantalla de inventario: join de carga y etiquetado de referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryScreen_EtiquetaReferencias(t *testing.T) {
	warehouses := &fakeWarehouses{rows: []entity.Warehouse{{WarehouseID: "W1", Address: "Muelle 3"}}}
	parts := seedRepo("P1")
	inventory := &fakeInventory{rows: []entity.Inventory{
		{WarehouseID: "W1", PartID: "P1", StockQuantity: 100},
	}}

	s := controller.NewInventoryScreen(inventory, warehouses, parts, nil, nil)
	s.Mount(context.Background())

	require.Equal(t, controller.StateReady, s.State())
	require.Len(t, s.Rows(), 1)
	assert.Equal(t, "W1 - Muelle 3", s.WarehouseLabel("W1"))
	assert.Equal(t, "P1 - Pieza P1", s.PartLabel("P1"))
	// Clave fuera de las colecciones cargadas: cruda, nunca rompe la tabla.
	assert.Equal(t, "W9", s.WarehouseLabel("W9"))
}

func TestInventoryScreen_FalloDeUnaReferenciaFallaElJoin(t *testing.T) {
	warehouses := &fakeWarehouses{listErr: domain.NewServerFailure(500, "Internal error")}
	parts := seedRepo("P1")
	inventory := &fakeInventory{rows: []entity.Inventory{
		{WarehouseID: "W1", PartID: "P1", StockQuantity: 100},
	}}
	rec := &recorder{}

	s := controller.NewInventoryScreen(inventory, warehouses, parts, rec, nil)
	s.Mount(context.Background())

	assert.Equal(t, controller.StateError, s.State(),
		"el join es lógico: sin todas las colecciones no hay resultados parciales")
	assert.Empty(t, s.Rows())
	assert.Equal(t, 1, rec.errorCount())
	assert.Equal(t, "P1", s.PartLabel("P1"),
		"tras un join fallido no queda ninguna colección a medio aplicar")
}

func TestInventoryScreen_ClaveCompuestaDeshabilitadaEnEdicion(t *testing.T) {
	warehouses := &fakeWarehouses{rows: []entity.Warehouse{{WarehouseID: "W1", Address: "Muelle 3"}}}
	parts := seedRepo("P1")
	inventory := &fakeInventory{rows: []entity.Inventory{
		{WarehouseID: "W1", PartID: "P1", StockQuantity: 100},
	}}

	s := controller.NewInventoryScreen(inventory, warehouses, parts, nil, nil)
	s.Mount(context.Background())

	require.NoError(t, s.OpenEdit(s.Rows()[0]))
	require.Error(t, s.SetField("warehouse_id", "W2"))
	require.Error(t, s.SetField("part_id", "P2"))

	require.NoError(t, s.SetField("stock_quantity", "80"))
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, 80, s.Rows()[0].StockQuantity)
}

func TestUsersScreen_NoOfreceAltas(t *testing.T) {
	users := &fakeUsers{}
	warehouses := &fakeWarehouses{}
	s := controller.NewUsersScreen(users, warehouses, nil, nil)
	s.Mount(context.Background())

	err := s.OpenCreate()
	require.Error(t, err, "el alta de usuarios pertenece al proveedor de identidad")
}

type fakeUsers struct {
	mu   sync.Mutex
	rows []entity.AppUser
}

func (f *fakeUsers) List(ctx context.Context, filter repository.UserFilter) ([]entity.AppUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.AppUser, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeUsers) Update(ctx context.Context, id string, patch entity.AppUserPatch) (*entity.AppUser, error) {
	return nil, domain.NewServerFailure(404, "User not found")
}

var _ repository.UserRepository = (*fakeUsers)(nil)
