package service

import (
	"time"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
)

// saldoEpsilon absorbs rounding noise in stored amounts: any saldo at or
// below un centavo counts as saldado.
var saldoEpsilon = decimal.NewFromFloat(0.01)

// MontoAbonado suma el ledger completo de abonos de una venta.
func MontoAbonado(abonos []model.Abono) decimal.Decimal {
	total := decimal.Zero
	for _, a := range abonos {
		total = total.Add(a.MontoAbonado)
	}
	return total
}

// SaldoPendiente es montoTotal menos lo abonado, sin recortar: un valor
// negativo delata un sobrepago y las reglas de negocio lo necesitan intacto.
func SaldoPendiente(montoTotal decimal.Decimal, abonos []model.Abono) decimal.Decimal {
	return montoTotal.Sub(MontoAbonado(abonos))
}

// SaldoVisible recorta el saldo a cero para presentación; nunca se muestra
// un saldo negativo.
func SaldoVisible(saldo decimal.Decimal) decimal.Decimal {
	if saldo.IsNegative() {
		return decimal.Zero
	}
	return saldo
}

// VentaSaldada reporta si el saldo quedó dentro del epsilon de cierre.
func VentaSaldada(saldo decimal.Decimal) bool {
	return saldo.LessThanOrEqual(saldoEpsilon)
}

// estadoCongelado: una venta Confirmada o Cancelada no admite ediciones ni
// nuevos abonos.
func estadoCongelado(estadoNombre string) bool {
	return estadoNombre == model.EstadoVentaConfirmada || estadoNombre == model.EstadoVentaCancelada
}

func puedeEliminarVenta(roles []string) bool {
	for _, r := range roles {
		if r == model.RolPropietario || r == model.RolAdmin {
			return true
		}
	}
	return false
}

// ResolverCapacidades evalúa la tabla de decisión del ciclo de vida de una
// venta para el usuario actual:
//
//   - editar y cancelar se bloquean cuando la venta está congelada
//   - eliminar exige además rol PROPIETARIO o ADMIN
//   - registrar abono exige venta no congelada y saldo mayor al epsilon
//   - la fecha de contrato se fija una sola vez, con la venta saldada y
//     mientras no esté congelada
func ResolverCapacidades(roles []string, estadoNombre string, fechaContrato *time.Time, saldo decimal.Decimal) dto.VentaCapacidades {
	congelada := estadoCongelado(estadoNombre)
	return dto.VentaCapacidades{
		PuedeEditar:             !congelada,
		PuedeCancelar:           !congelada,
		PuedeEliminar:           !congelada && puedeEliminarVenta(roles),
		PuedeRegistrarAbono:     !congelada && saldo.GreaterThan(saldoEpsilon),
		PuedeFijarFechaContrato: !congelada && fechaContrato == nil && VentaSaldada(saldo),
	}
}

// UltimoAbono devuelve la fecha del abono más reciente, o nil si no hay.
func UltimoAbono(abonos []model.Abono) *time.Time {
	var ultimo *time.Time
	for i := range abonos {
		f := abonos[i].FechaAbono
		if ultimo == nil || f.After(*ultimo) {
			ultimo = &f
		}
	}
	return ultimo
}
