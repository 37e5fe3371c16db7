// Package form modela el formulario de alta/edición de una pantalla: esquema
// de campos, valores en borrador y la validación local de "campo requerido /
// número válido". Un fallo de validación nunca sale de esta capa hacia la red.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// Kind tipo de dato de un campo a efectos de validación local.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number" // decimal
	KindInteger Kind = "integer"
	KindDate    Kind = "date" // YYYY-MM-DD
	KindChoice  Kind = "choice"
)

// Sign restricción de signo para campos numéricos.
type Sign string

const (
	SignAny         Sign = ""
	SignNonNegative Sign = "non_negative"
	SignPositive    Sign = "positive"
)

// Field definición de un campo del formulario.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	// Key marca un componente de la clave primaria: editable en alta,
	// deshabilitado en edición (las claves son inmutables).
	Key     bool
	Sign    Sign
	Choices []string // valores admitidos cuando Kind es KindChoice
}

// Form formulario en curso de una pantalla. No es seguro para uso
// concurrente: el controller lo serializa bajo su propio lock.
type Form struct {
	fields  []Field
	values  map[string]string
	editing bool
}

// New construye un formulario vacío sobre un esquema de campos.
func New(fields []Field) *Form {
	return &Form{fields: fields, values: map[string]string{}}
}

// Reset deja todos los campos en blanco y la clave editable (modo alta).
func (f *Form) Reset() {
	f.values = map[string]string{}
	f.editing = false
}

// Populate precarga los valores de la fila seleccionada y deshabilita los
// campos clave (modo edición).
func (f *Form) Populate(values map[string]string) {
	f.values = map[string]string{}
	for k, v := range values {
		f.values[k] = v
	}
	f.editing = true
}

// Editing indica si el formulario está en modo edición.
func (f *Form) Editing() bool { return f.editing }

// Disabled indica si un campo está deshabilitado (clave en modo edición).
func (f *Form) Disabled(name string) bool {
	field := f.field(name)
	return field != nil && field.Key && f.editing
}

// Set escribe el valor de un campo. Rechaza campos desconocidos y los campos
// clave deshabilitados en edición.
func (f *Form) Set(name, value string) error {
	field := f.field(name)
	if field == nil {
		return domain.NewValidationFailure(fmt.Sprintf("campo desconocido: %s", name))
	}
	if f.Disabled(name) {
		return domain.NewValidationFailure(fmt.Sprintf("%s es parte de la clave y no se puede modificar", field.Label))
	}
	f.values[name] = strings.TrimSpace(value)
	return nil
}

// Get devuelve el valor actual de un campo ("" si no fue escrito).
func (f *Form) Get(name string) string { return f.values[name] }

// Values copia de los valores actuales.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) field(name string) *Field {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// Validate aplica las comprobaciones locales: requerido no vacío, números
// válidos con su restricción de signo, fechas con formato y choices dentro
// del catálogo. Devuelve un *domain.Failure de validación con todos los
// problemas encontrados, o nil.
func (f *Form) Validate() error {
	var problems []string
	for _, field := range f.fields {
		value := f.values[field.Name]
		if value == "" {
			if field.Required {
				problems = append(problems, fmt.Sprintf("%s es requerido", field.Label))
			}
			continue
		}
		switch field.Kind {
		case KindNumber:
			d, err := decimal.NewFromString(value)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s debe ser un número", field.Label))
				continue
			}
			if msg := checkSign(field, d.Sign()); msg != "" {
				problems = append(problems, msg)
			}
		case KindInteger:
			n, err := strconv.Atoi(value)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s debe ser un entero", field.Label))
				continue
			}
			sign := 0
			if n > 0 {
				sign = 1
			} else if n < 0 {
				sign = -1
			}
			if msg := checkSign(field, sign); msg != "" {
				problems = append(problems, msg)
			}
		case KindDate:
			if _, err := entity.ParseDate(value); err != nil {
				problems = append(problems, fmt.Sprintf("%s debe tener formato AAAA-MM-DD", field.Label))
			}
		case KindChoice:
			if len(field.Choices) > 0 && !contains(field.Choices, value) {
				problems = append(problems, fmt.Sprintf("%s tiene un valor fuera de catálogo", field.Label))
			}
		}
	}
	if len(problems) > 0 {
		return domain.NewValidationFailure(strings.Join(problems, "; "))
	}
	return nil
}

func checkSign(field Field, sign int) string {
	switch field.Sign {
	case SignNonNegative:
		if sign < 0 {
			return fmt.Sprintf("%s no puede ser negativo", field.Label)
		}
	case SignPositive:
		if sign <= 0 {
			return fmt.Sprintf("%s debe ser mayor que cero", field.Label)
		}
	}
	return ""
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ── Lectura tipada (post-validación) ──────────────────────────────────────────

// Decimal devuelve el campo como decimal (cero si está vacío).
func (f *Form) Decimal(name string) decimal.Decimal {
	d, err := decimal.NewFromString(f.values[name])
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int devuelve el campo como entero (cero si está vacío).
func (f *Form) Int(name string) int {
	n, _ := strconv.Atoi(f.values[name])
	return n
}

// Date devuelve el campo como fecha calendario (cero si está vacío).
func (f *Form) Date(name string) entity.Date {
	d, _ := entity.ParseDate(f.values[name])
	return d
}
