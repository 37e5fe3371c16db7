package entity

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout formato de fecha calendario en el wire (ISO, sin hora).
const dateLayout = "2006-01-02"

// Date fecha calendario sin componente horario. En JSON viaja como "YYYY-MM-DD";
// el backend la trata igual (hire_date, purchase_date).
type Date struct {
	t time.Time
}

// NewDate construye una fecha a partir de año, mes y día.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// Today fecha calendario actual en UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// IsZero indica si la fecha no fue establecida.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal compara por día calendario.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Time devuelve la medianoche UTC del día.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON serializa como "YYYY-MM-DD" (null si es cero).
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD", timestamps ISO completos y null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	// Algunos backends devuelven la fecha con hora; nos quedamos con el día.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
