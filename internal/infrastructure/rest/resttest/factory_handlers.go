package resttest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// Handlers de las entidades de fábrica. Mismas reglas que el backend real:
// 201 en alta, 204 en borrado, 404 en clave inexistente, 409 en clave
// duplicada o restricción referencial, 422 en payload inválido.

// ── Parts ─────────────────────────────────────────────────────────────────────

func (s *Server) listParts(c *fiber.Ctx) error {
	partType := c.Query("type")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Part, 0, len(s.parts))
	for _, p := range s.parts {
		if partType != "" && p.Type != partType {
			continue
		}
		out = append(out, p)
	}
	return c.JSON(out)
}

func (s *Server) createPart(c *fiber.Ctx) error {
	var in entity.Part
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.PartID == "" || in.Name == "" || in.Type == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "part_id, name and type are required")
	}
	if in.UnitPrice.IsNegative() {
		return detail(c, fiber.StatusUnprocessableEntity, "unit_price must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.parts[in.PartID]; exists {
		return detail(c, fiber.StatusConflict, "Part already exists")
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.parts[in.PartID] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updatePart(c *fiber.Ctx) error {
	var patch entity.PartPatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parts[c.Params("part_id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Part not found")
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.UnitPrice != nil {
		if patch.UnitPrice.IsNegative() {
			return detail(c, fiber.StatusUnprocessableEntity, "unit_price must be non-negative")
		}
		p.UnitPrice = *patch.UnitPrice
	}
	p.UpdatedAt = time.Now().UTC()
	s.parts[p.PartID] = p
	return c.JSON(p)
}

func (s *Server) deletePart(c *fiber.Ctx) error {
	partID := c.Params("part_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[partID]; !ok {
		return detail(c, fiber.StatusNotFound, "Part not found")
	}
	for key := range s.inventory {
		if key.PartID == partID {
			return detail(c, fiber.StatusConflict, "Part is referenced by inventory")
		}
	}
	for _, purchase := range s.purchases {
		if purchase.PartID == partID {
			return detail(c, fiber.StatusConflict, "Part is referenced by purchases")
		}
	}
	delete(s.parts, partID)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *Server) listSuppliers(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		out = append(out, sup)
	}
	return c.JSON(out)
}

func (s *Server) createSupplier(c *fiber.Ctx) error {
	var in entity.Supplier
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.SupplierID == "" || in.Name == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "supplier_id and name are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.suppliers[in.SupplierID]; exists {
		return detail(c, fiber.StatusConflict, "Supplier already exists")
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.suppliers[in.SupplierID] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updateSupplier(c *fiber.Ctx) error {
	var patch entity.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sup, ok := s.suppliers[c.Params("supplier_id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Supplier not found")
	}
	if patch.Name != nil {
		sup.Name = *patch.Name
	}
	if patch.Address != nil {
		sup.Address = *patch.Address
	}
	if patch.Phone != nil {
		sup.Phone = *patch.Phone
	}
	sup.UpdatedAt = time.Now().UTC()
	s.suppliers[sup.SupplierID] = sup
	return c.JSON(sup)
}

func (s *Server) deleteSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("supplier_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[supplierID]; !ok {
		return detail(c, fiber.StatusNotFound, "Supplier not found")
	}
	for _, purchase := range s.purchases {
		if purchase.SupplierID == supplierID {
			return detail(c, fiber.StatusConflict, "Supplier is referenced by purchases")
		}
	}
	delete(s.suppliers, supplierID)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Warehouses ────────────────────────────────────────────────────────────────

func (s *Server) listWarehouses(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Warehouse, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		out = append(out, w)
	}
	return c.JSON(out)
}

func (s *Server) createWarehouse(c *fiber.Ctx) error {
	var in entity.Warehouse
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.WarehouseID == "" || in.Address == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "warehouse_id and address are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.warehouses[in.WarehouseID]; exists {
		return detail(c, fiber.StatusConflict, "Warehouse already exists")
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.warehouses[in.WarehouseID] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updateWarehouse(c *fiber.Ctx) error {
	var patch entity.WarehousePatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.warehouses[c.Params("warehouse_id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Warehouse not found")
	}
	if patch.Address != nil {
		w.Address = *patch.Address
	}
	w.UpdatedAt = time.Now().UTC()
	s.warehouses[w.WarehouseID] = w
	return c.JSON(w)
}

func (s *Server) deleteWarehouse(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouse_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.warehouses[warehouseID]; !ok {
		return detail(c, fiber.StatusNotFound, "Warehouse not found")
	}
	for key := range s.inventory {
		if key.WarehouseID == warehouseID {
			return detail(c, fiber.StatusConflict, "Warehouse is referenced by inventory")
		}
	}
	for _, st := range s.staff {
		if st.WarehouseID == warehouseID {
			return detail(c, fiber.StatusConflict, "Warehouse is referenced by staff")
		}
	}
	for _, purchase := range s.purchases {
		if purchase.WarehouseID == warehouseID {
			return detail(c, fiber.StatusConflict, "Warehouse is referenced by purchases")
		}
	}
	delete(s.warehouses, warehouseID)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Staff ─────────────────────────────────────────────────────────────────────

func (s *Server) listStaff(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Staff, 0, len(s.staff))
	for _, st := range s.staff {
		out = append(out, st)
	}
	return c.JSON(out)
}

func (s *Server) createStaff(c *fiber.Ctx) error {
	var in entity.Staff
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.StaffID == "" || in.Name == "" || in.HireDate.IsZero() {
		return detail(c, fiber.StatusUnprocessableEntity, "staff_id, name and hire_date are required")
	}
	if !in.Gender.Valid() {
		return detail(c, fiber.StatusUnprocessableEntity, "gender must be M or F")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.staff[in.StaffID]; exists {
		return detail(c, fiber.StatusConflict, "Staff already exists")
	}
	if in.WarehouseID != "" {
		if _, ok := s.warehouses[in.WarehouseID]; !ok {
			return detail(c, fiber.StatusConflict, "Referenced warehouse does not exist")
		}
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.staff[in.StaffID] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updateStaff(c *fiber.Ctx) error {
	var patch entity.StaffPatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.staff[c.Params("staff_id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Staff not found")
	}
	if patch.Name != nil {
		st.Name = *patch.Name
	}
	if patch.Gender != nil {
		if !patch.Gender.Valid() {
			return detail(c, fiber.StatusUnprocessableEntity, "gender must be M or F")
		}
		st.Gender = *patch.Gender
	}
	if patch.HireDate != nil {
		st.HireDate = *patch.HireDate
	}
	if patch.Title != nil {
		st.Title = *patch.Title
	}
	if patch.WarehouseID != nil {
		if *patch.WarehouseID != "" {
			if _, ok := s.warehouses[*patch.WarehouseID]; !ok {
				return detail(c, fiber.StatusConflict, "Referenced warehouse does not exist")
			}
		}
		st.WarehouseID = *patch.WarehouseID
	}
	st.UpdatedAt = time.Now().UTC()
	s.staff[st.StaffID] = st
	return c.JSON(st)
}

func (s *Server) deleteStaff(c *fiber.Ctx) error {
	staffID := c.Params("staff_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[staffID]; !ok {
		return detail(c, fiber.StatusNotFound, "Staff not found")
	}
	delete(s.staff, staffID)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *Server) listInventory(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	partID := c.Query("part_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Inventory, 0, len(s.inventory))
	for _, inv := range s.inventory {
		if warehouseID != "" && inv.WarehouseID != warehouseID {
			continue
		}
		if partID != "" && inv.PartID != partID {
			continue
		}
		out = append(out, inv)
	}
	return c.JSON(out)
}

func (s *Server) createInventory(c *fiber.Ctx) error {
	var in entity.Inventory
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.WarehouseID == "" || in.PartID == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "warehouse_id and part_id are required")
	}
	if in.StockQuantity < 0 {
		return detail(c, fiber.StatusUnprocessableEntity, "stock_quantity must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.warehouses[in.WarehouseID]; !ok {
		return detail(c, fiber.StatusConflict, "Referenced warehouse does not exist")
	}
	if _, ok := s.parts[in.PartID]; !ok {
		return detail(c, fiber.StatusConflict, "Referenced part does not exist")
	}
	key := in.Key()
	if _, exists := s.inventory[key]; exists {
		return detail(c, fiber.StatusConflict, "Inventory row already exists")
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.inventory[key] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updateInventory(c *fiber.Ctx) error {
	var patch entity.InventoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	key := entity.InventoryKey{
		WarehouseID: c.Params("warehouse_id"),
		PartID:      c.Params("part_id"),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.inventory[key]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Inventory not found")
	}
	if patch.StockQuantity != nil {
		if *patch.StockQuantity < 0 {
			return detail(c, fiber.StatusUnprocessableEntity, "stock_quantity must be non-negative")
		}
		inv.StockQuantity = *patch.StockQuantity
	}
	inv.UpdatedAt = time.Now().UTC()
	s.inventory[key] = inv
	return c.JSON(inv)
}

func (s *Server) deleteInventory(c *fiber.Ctx) error {
	key := entity.InventoryKey{
		WarehouseID: c.Params("warehouse_id"),
		PartID:      c.Params("part_id"),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[key]; !ok {
		return detail(c, fiber.StatusNotFound, "Inventory not found")
	}
	delete(s.inventory, key)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Purchases ─────────────────────────────────────────────────────────────────

func (s *Server) listPurchases(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	return c.JSON(out)
}

func (s *Server) createPurchase(c *fiber.Ctx) error {
	var in entity.Purchase
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	if in.PurchaseID == "" || in.PartID == "" || in.SupplierID == "" || in.WarehouseID == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "purchase_id, part_id, supplier_id and warehouse_id are required")
	}
	if in.Quantity <= 0 {
		return detail(c, fiber.StatusUnprocessableEntity, "quantity must be positive")
	}
	if in.ActualPrice.IsNegative() {
		return detail(c, fiber.StatusUnprocessableEntity, "actual_price must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.purchases[in.PurchaseID]; exists {
		return detail(c, fiber.StatusConflict, "Purchase already exists")
	}
	if _, ok := s.parts[in.PartID]; !ok {
		return detail(c, fiber.StatusConflict, "Referenced part does not exist")
	}
	if _, ok := s.suppliers[in.SupplierID]; !ok {
		return detail(c, fiber.StatusConflict, "Referenced supplier does not exist")
	}
	if _, ok := s.warehouses[in.WarehouseID]; !ok {
		return detail(c, fiber.StatusConflict, "Referenced warehouse does not exist")
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	s.purchases[in.PurchaseID] = in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) updatePurchase(c *fiber.Ctx) error {
	var patch entity.PurchasePatch
	if err := c.BodyParser(&patch); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "Invalid body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[c.Params("purchase_id")]
	if !ok {
		return detail(c, fiber.StatusNotFound, "Purchase not found")
	}
	if patch.PartID != nil {
		p.PartID = *patch.PartID
	}
	if patch.SupplierID != nil {
		p.SupplierID = *patch.SupplierID
	}
	if patch.WarehouseID != nil {
		p.WarehouseID = *patch.WarehouseID
	}
	if patch.PurchaseDate != nil {
		p.PurchaseDate = *patch.PurchaseDate
	}
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return detail(c, fiber.StatusUnprocessableEntity, "quantity must be positive")
		}
		p.Quantity = *patch.Quantity
	}
	if patch.ActualPrice != nil {
		if patch.ActualPrice.IsNegative() {
			return detail(c, fiber.StatusUnprocessableEntity, "actual_price must be non-negative")
		}
		p.ActualPrice = *patch.ActualPrice
	}
	p.UpdatedAt = time.Now().UTC()
	s.purchases[p.PurchaseID] = p
	return c.JSON(p)
}

func (s *Server) deletePurchase(c *fiber.Ctx) error {
	purchaseID := c.Params("purchase_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchases[purchaseID]; !ok {
		return detail(c, fiber.StatusNotFound, "Purchase not found")
	}
	delete(s.purchases, purchaseID)
	return c.SendStatus(fiber.StatusNoContent)
}
