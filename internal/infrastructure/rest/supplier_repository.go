package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// SupplierRepository implementación REST del puerto repository.SupplierRepository.
type SupplierRepository struct {
	c *Client
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(c *Client) *SupplierRepository {
	return &SupplierRepository{c: c}
}

// List trae todos los proveedores.
func (r *SupplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := r.c.Get(ctx, "/factory/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un proveedor nuevo.
func (r *SupplierRepository) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := r.c.Post(ctx, "/factory/suppliers", supplier, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía solo los campos cambiados de un proveedor existente.
func (r *SupplierRepository) Update(ctx context.Context, supplierID string, patch entity.SupplierPatch) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := r.c.Put(ctx, "/factory/suppliers/"+url.PathEscape(supplierID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un proveedor por clave.
func (r *SupplierRepository) Delete(ctx context.Context, supplierID string) error {
	return r.c.Delete(ctx, "/factory/suppliers/"+url.PathEscape(supplierID))
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)
