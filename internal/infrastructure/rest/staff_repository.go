package rest

import (
	"context"
	"net/url"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/domain/repository"
)

// StaffRepository implementación REST del puerto repository.StaffRepository.
type StaffRepository struct {
	c *Client
}

// NewStaffRepository construye el repositorio.
func NewStaffRepository(c *Client) *StaffRepository {
	return &StaffRepository{c: c}
}

// List trae toda la plantilla.
func (r *StaffRepository) List(ctx context.Context) ([]entity.Staff, error) {
	var out []entity.Staff
	if err := r.c.Get(ctx, "/factory/staff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un empleado nuevo.
func (r *StaffRepository) Create(ctx context.Context, staff entity.Staff) (*entity.Staff, error) {
	var out entity.Staff
	if err := r.c.Post(ctx, "/factory/staff", staff, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía solo los campos cambiados de un empleado existente.
func (r *StaffRepository) Update(ctx context.Context, staffID string, patch entity.StaffPatch) (*entity.Staff, error) {
	var out entity.Staff
	if err := r.c.Put(ctx, "/factory/staff/"+url.PathEscape(staffID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un empleado por clave.
func (r *StaffRepository) Delete(ctx context.Context, staffID string) error {
	return r.c.Delete(ctx, "/factory/staff/"+url.PathEscape(staffID))
}

var _ repository.StaffRepository = (*StaffRepository)(nil)
