package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// PartRepository implementación REST del puerto repository.PartRepository.
type PartRepository struct {
	c *Client
}

// NewPartRepository construye el repositorio.
func NewPartRepository(c *Client) *PartRepository {
	return &PartRepository{c: c}
}

// List trae el catálogo completo de piezas (filtro opcional por tipo).
func (r *PartRepository) List(ctx context.Context, filter repository.PartFilter) ([]entity.Part, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	var out []entity.Part
	if err := r.c.Get(ctx, "/factory/parts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra una pieza nueva.
func (r *PartRepository) Create(ctx context.Context, part entity.Part) (*entity.Part, error) {
	var out entity.Part
	if err := r.c.Post(ctx, "/factory/parts", part, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía solo los campos cambiados de una pieza existente.
func (r *PartRepository) Update(ctx context.Context, partID string, patch entity.PartPatch) (*entity.Part, error) {
	var out entity.Part
	if err := r.c.Put(ctx, "/factory/parts/"+url.PathEscape(partID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una pieza por clave.
func (r *PartRepository) Delete(ctx context.Context, partID string) error {
	return r.c.Delete(ctx, "/factory/parts/"+url.PathEscape(partID))
}

var _ repository.PartRepository = (*PartRepository)(nil)
