package controller

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// Helpers de parche: un update envía solo los campos cuyo valor del
// formulario difiere de la fila original (nil = campo sin cambios).

func changedString(current, value string) *string {
	if value == current {
		return nil
	}
	return &value
}

func changedDecimal(current decimal.Decimal, value string) *decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil || d.Equal(current) {
		return nil
	}
	return &d
}

func changedInt(current int, value string) *int {
	n, err := strconv.Atoi(value)
	if err != nil || n == current {
		return nil
	}
	return &n
}

func changedDate(current entity.Date, value string) *entity.Date {
	d, err := entity.ParseDate(value)
	if err != nil || d.Equal(current) {
		return nil
	}
	return &d
}

func changedGender(current entity.Gender, value string) *entity.Gender {
	g := entity.Gender(value)
	if g == current {
		return nil
	}
	return &g
}

func changedRole(current entity.Role, value string) *entity.Role {
	r := entity.Role(value)
	if r == current {
		return nil
	}
	return &r
}
