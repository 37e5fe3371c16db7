package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// PurchaseRepository implementación REST del puerto repository.PurchaseRepository.
type PurchaseRepository struct {
	c *Client
}

// NewPurchaseRepository construye el repositorio.
func NewPurchaseRepository(c *Client) *PurchaseRepository {
	return &PurchaseRepository{c: c}
}

// List trae todas las compras.
func (r *PurchaseRepository) List(ctx context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	if err := r.c.Get(ctx, "/factory/purchases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra una compra nueva.
func (r *PurchaseRepository) Create(ctx context.Context, purchase entity.Purchase) (*entity.Purchase, error) {
	var out entity.Purchase
	if err := r.c.Post(ctx, "/factory/purchases", purchase, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía solo los campos cambiados de una compra existente.
func (r *PurchaseRepository) Update(ctx context.Context, purchaseID string, patch entity.PurchasePatch) (*entity.Purchase, error) {
	var out entity.Purchase
	if err := r.c.Put(ctx, "/factory/purchases/"+url.PathEscape(purchaseID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una compra por clave.
func (r *PurchaseRepository) Delete(ctx context.Context, purchaseID string) error {
	return r.c.Delete(ctx, "/factory/purchases/"+url.PathEscape(purchaseID))
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)
