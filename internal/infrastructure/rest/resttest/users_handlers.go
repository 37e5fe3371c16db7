package resttest

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// syncUser aprovisiona (o devuelve) el usuario de negocio de la identidad del
// token. Primera vez: alta con rol por defecto inventory_operator.
func (s *Server) syncUser(c *fiber.Ctx) error {
	id, ok := c.Locals("identity").(identity)
	if !ok || id.Sub == "" {
		return detail(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.AuthUserID == id.Sub {
			return c.JSON(u)
		}
	}
	u := entity.AppUser{
		ID:         uuid.NewString(),
		AuthUserID: id.Sub,
		Email:      id.Email,
		Role:       entity.RoleInventoryOperator,
		CreatedAt:  time.Now().UTC(),
	}
	s.users[u.ID] = u
	return c.JSON(u)
}

// listUsers filtra por subcadena de email y por rol/almacén exactos.
func (s *Server) listUsers(c *fiber.Ctx) error {
	email := strings.ToLower(c.Query("email"))
	role := c.Query("role")
	warehouseID := c.Query("warehouse_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AppUser, 0, len(s.users))
	for _, u := range s.users {
		if email != "" && !strings.Contains(strings.ToLower(u.Email), email) {
			continue
		}
		if role != "" && string(u.Role) != role {
			continue
		}
		if warehouseID != "" && u.WarehouseID != warehouseID {
			continue
		}
		out = append(out, u)
	}
	return c.JSON(out)
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	var patch entity.AppUserPatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Params("id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "User not found")
	}
	if patch.DisplayName != nil {
		u.DisplayName = *patch.DisplayName
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return detail(c, fiber.StatusUnprocessableEntity, "Invalid role")
		}
		u.Role = *patch.Role
	}
	if patch.WarehouseID != nil {
		if *patch.WarehouseID != "" {
			if _, ok := s.warehouses[*patch.WarehouseID]; !ok {
				return detail(c, fiber.StatusConflict, "Referenced warehouse does not exist")
			}
		}
		u.WarehouseID = *patch.WarehouseID
	}
	s.users[u.ID] = u
	return c.JSON(u)
}

// SeedUser inserta un usuario de negocio directamente (sin pasar por sync).
func (s *Server) SeedUser(u entity.AppUser) entity.AppUser {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return u
}
