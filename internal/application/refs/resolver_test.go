package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/factory-console/internal/application/refs"
	"github.com/jhoicas/factory-console/internal/domain/entity"
)

func TestResolver_EtiquetaYFallback(t *testing.T) {
	r := refs.NewResolver(refs.WarehouseFormat())
	r.Set([]entity.Warehouse{
		{WarehouseID: "W1", Address: "Muelle 3"},
		{WarehouseID: "W2", Address: "Nave norte"},
	})

	assert.Equal(t, "W1 - Muelle 3", r.Resolve("W1"))
	assert.Equal(t, "W2 - Nave norte", r.Resolve("W2"))
	// Clave fuera de la colección: se muestra cruda, nunca falla.
	assert.Equal(t, "W9", r.Resolve("W9"))
	assert.Equal(t, 2, r.Len())
}

func TestResolver_SinColeccionTodoCaeAlFallback(t *testing.T) {
	r := refs.NewResolver(refs.PartFormat())
	assert.Equal(t, "P1", r.Resolve("P1"))
	assert.Zero(t, r.Len())
}

func TestResolver_MemoizadoPorIdentidadDeColeccion(t *testing.T) {
	items := []entity.Part{{PartID: "P1", Name: "Tornillo"}}
	r := refs.NewResolver(refs.PartFormat())
	r.Set(items)
	assert.Equal(t, "P1 - Tornillo", r.Resolve("P1"))

	// Mutar la colección y volver a Set con el mismo slice no recompone:
	// misma identidad, mapa vigente.
	items[0].Name = "Tuerca"
	r.Set(items)
	assert.Equal(t, "P1 - Tornillo", r.Resolve("P1"))

	// Un slice nuevo sí reemplaza el mapa completo.
	r.Set([]entity.Part{{PartID: "P1", Name: "Tuerca"}})
	assert.Equal(t, "P1 - Tuerca", r.Resolve("P1"))
}

func TestResolver_ColeccionVaciaLimpiaElMapa(t *testing.T) {
	r := refs.NewResolver(refs.SupplierFormat())
	r.Set([]entity.Supplier{{SupplierID: "S1", Name: "Aceros del Norte"}})
	assert.Equal(t, "S1 - Aceros del Norte", r.Resolve("S1"))

	r.Set(nil)
	assert.Equal(t, "S1", r.Resolve("S1"))
	assert.Zero(t, r.Len())
}
