package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/domain/entity"
)

func TestDate_MarshalComoFechaCalendario(t *testing.T) {
	d := entity.NewDate(2024, time.March, 5)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(raw))
}

func TestDate_MarshalCeroComoNull(t *testing.T) {
	raw, err := json.Marshal(entity.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestDate_UnmarshalAceptaTimestampCompleto(t *testing.T) {
	// El backend a veces devuelve la fecha con componente horario.
	var d entity.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T14:22:01.000Z"`), &d))
	assert.Equal(t, "2024-03-05", d.String())
}

func TestDate_UnmarshalNullQuedaCero(t *testing.T) {
	var d entity.Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalRechazaFormatoInvalido(t *testing.T) {
	var d entity.Date
	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &d))
}

func TestParseDate_IdaYVuelta(t *testing.T) {
	d, err := entity.ParseDate("2023-11-29")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-29", d.String())
	assert.True(t, d.Equal(entity.NewDate(2023, time.November, 29)))
}

func TestInventoryKey_DesdeLaFila(t *testing.T) {
	inv := entity.Inventory{WarehouseID: "W1", PartID: "P1", StockQuantity: 100}
	key := inv.Key()
	assert.Equal(t, entity.InventoryKey{WarehouseID: "W1", PartID: "P1"}, key)
	assert.Equal(t, "W1/P1", key.String())
}

func TestRole_Catalogo(t *testing.T) {
	assert.True(t, entity.RoleAdmin.Valid())
	assert.True(t, entity.RoleInventoryOperator.Valid())
	assert.False(t, entity.Role("gerente").Valid())
}
