package service

import (
	"testing"
	"time"

	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func abonosDe(montos ...string) []model.Abono {
	out := make([]model.Abono, 0, len(montos))
	for _, m := range montos {
		out = append(out, model.Abono{MontoAbonado: d(m)})
	}
	return out
}

func TestMontoAbonadoSumaElLedger(t *testing.T) {
	assert.True(t, MontoAbonado(nil).IsZero())
	assert.True(t, d("1500.50").Equal(MontoAbonado(abonosDe("1000.00", "500.50"))))
}

func TestSaldoPendienteConservaElSobrepago(t *testing.T) {
	// El saldo crudo puede ser negativo: las reglas lo necesitan así.
	saldo := SaldoPendiente(d("1000.00"), abonosDe("600.00", "450.00"))
	assert.True(t, d("-50.00").Equal(saldo))

	// Pero nunca se muestra negativo.
	assert.True(t, SaldoVisible(saldo).IsZero())
	assert.True(t, d("400.00").Equal(SaldoVisible(d("400.00"))))
}

func TestVentaSaldadaUsaEpsilonDeUnCentavo(t *testing.T) {
	assert.True(t, VentaSaldada(d("0.00")))
	assert.True(t, VentaSaldada(d("0.01")))
	assert.True(t, VentaSaldada(d("-3.00")))
	assert.False(t, VentaSaldada(d("0.011")))
	assert.False(t, VentaSaldada(d("1.00")))
}

func TestUltimoAbono(t *testing.T) {
	assert.Nil(t, UltimoAbono(nil))

	viejo := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	nuevo := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	abonos := []model.Abono{
		{MontoAbonado: d("100"), FechaAbono: viejo},
		{MontoAbonado: d("200"), FechaAbono: nuevo},
		{MontoAbonado: d("50"), FechaAbono: viejo},
	}
	ultimo := UltimoAbono(abonos)
	assert.NotNil(t, ultimo)
	assert.True(t, ultimo.Equal(nuevo))
}

func TestResolverCapacidades(t *testing.T) {
	firmado := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	vendedor := []string{model.RolVendedor}
	admin := []string{model.RolAdmin}

	cases := []struct {
		name          string
		roles         []string
		estado        string
		fechaContrato *time.Time
		saldo         decimal.Decimal
		editar        bool
		cancelar      bool
		eliminar      bool
		abonar        bool
		fijarFecha    bool
	}{
		{
			name:  "pendiente con saldo, vendedor",
			roles: vendedor, estado: model.EstadoVentaPendiente, saldo: d("500.00"),
			editar: true, cancelar: true, eliminar: false, abonar: true, fijarFecha: false,
		},
		{
			name:  "pendiente con saldo, admin puede eliminar",
			roles: admin, estado: model.EstadoVentaPendiente, saldo: d("500.00"),
			editar: true, cancelar: true, eliminar: true, abonar: true, fijarFecha: false,
		},
		{
			name:  "pendiente saldada habilita fecha de contrato",
			roles: admin, estado: model.EstadoVentaPendiente, saldo: d("0.00"),
			editar: true, cancelar: true, eliminar: true, abonar: false, fijarFecha: true,
		},
		{
			name:  "saldo dentro del epsilon cuenta como saldada",
			roles: admin, estado: model.EstadoVentaPendiente, saldo: d("0.01"),
			editar: true, cancelar: true, eliminar: true, abonar: false, fijarFecha: true,
		},
		{
			name:  "fecha de contrato ya registrada no se repite",
			roles: admin, estado: model.EstadoVentaPendiente, fechaContrato: &firmado, saldo: d("0.00"),
			editar: true, cancelar: true, eliminar: true, abonar: false, fijarFecha: false,
		},
		{
			name:  "confirmada queda congelada",
			roles: admin, estado: model.EstadoVentaConfirmada, fechaContrato: &firmado, saldo: d("0.00"),
			editar: false, cancelar: false, eliminar: false, abonar: false, fijarFecha: false,
		},
		{
			name:  "confirmada saldada sin fecha tampoco reabre el contrato",
			roles: admin, estado: model.EstadoVentaConfirmada, saldo: d("0.00"),
			editar: false, cancelar: false, eliminar: false, abonar: false, fijarFecha: false,
		},
		{
			name:  "cancelada no admite nada, ni fecha aunque esté saldada",
			roles: admin, estado: model.EstadoVentaCancelada, saldo: d("0.00"),
			editar: false, cancelar: false, eliminar: false, abonar: false, fijarFecha: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cap := ResolverCapacidades(tc.roles, tc.estado, tc.fechaContrato, tc.saldo)
			assert.Equal(t, tc.editar, cap.PuedeEditar, "puedeEditar")
			assert.Equal(t, tc.cancelar, cap.PuedeCancelar, "puedeCancelar")
			assert.Equal(t, tc.eliminar, cap.PuedeEliminar, "puedeEliminar")
			assert.Equal(t, tc.abonar, cap.PuedeRegistrarAbono, "puedeRegistrarAbono")
			assert.Equal(t, tc.fijarFecha, cap.PuedeFijarFechaContrato, "puedeFijarFechaContrato")
		})
	}
}
