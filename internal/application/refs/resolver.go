// Package refs resuelve claves foráneas a etiquetas legibles sin viajes
// extra a la red: cada pantalla carga la colección relacionada una vez y
// el resolver arma el mapa clave→etiqueta.
package refs

import (
	"fmt"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// Format regla de extracción de clave y de formato de etiqueta para un tipo
// de entidad relacionada.
type Format[E any] struct {
	Key   func(E) string
	Label func(E) string
}

// Resolver mapa total de clave a etiqueta sobre una colección cargada.
// Memoizado por identidad de la colección: Set con el mismo slice no
// recompone nada; con uno nuevo reemplaza el mapa completo de una vez
// (nunca se escribe parcialmente).
type Resolver[E any] struct {
	format Format[E]
	labels map[string]string
	first  *E
	length int
}

// NewResolver construye un resolver vacío; sin colección todo Resolve cae
// al fallback de la clave cruda.
func NewResolver[E any](format Format[E]) *Resolver[E] {
	return &Resolver[E]{format: format, labels: map[string]string{}}
}

// Set fija la colección origen y recompone el mapa si su identidad cambió.
func (r *Resolver[E]) Set(items []E) {
	var first *E
	if len(items) > 0 {
		first = &items[0]
	}
	if first == r.first && len(items) == r.length {
		return // misma colección, mapa vigente
	}

	labels := make(map[string]string, len(items))
	for _, item := range items {
		labels[r.format.Key(item)] = r.format.Label(item)
	}
	r.labels = labels
	r.first = first
	r.length = len(items)
}

// Resolve devuelve la etiqueta de una clave; para claves fuera de la
// colección devuelve la clave tal cual, nunca falla.
func (r *Resolver[E]) Resolve(key string) string {
	if label, ok := r.labels[key]; ok {
		return label
	}
	return key
}

// Len cantidad de claves mapeadas.
func (r *Resolver[E]) Len() int { return len(r.labels) }

// ── Formatos de las entidades referenciadas ───────────────────────────────────

// PartFormat etiqueta "P1 - Tornillo".
func PartFormat() Format[entity.Part] {
	return Format[entity.Part]{
		Key:   func(p entity.Part) string { return p.PartID },
		Label: func(p entity.Part) string { return fmt.Sprintf("%s - %s", p.PartID, p.Name) },
	}
}

// SupplierFormat etiqueta "S1 - Aceros del Norte".
func SupplierFormat() Format[entity.Supplier] {
	return Format[entity.Supplier]{
		Key:   func(s entity.Supplier) string { return s.SupplierID },
		Label: func(s entity.Supplier) string { return fmt.Sprintf("%s - %s", s.SupplierID, s.Name) },
	}
}

// WarehouseFormat etiqueta "W1 - Muelle 3".
func WarehouseFormat() Format[entity.Warehouse] {
	return Format[entity.Warehouse]{
		Key:   func(w entity.Warehouse) string { return w.WarehouseID },
		Label: func(w entity.Warehouse) string { return fmt.Sprintf("%s - %s", w.WarehouseID, w.Address) },
	}
}
