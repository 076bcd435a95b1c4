package service

import (
	"context"
	"errors"
	"time"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
	"inmobiliaria/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AbonoService interface {
	Registrar(ctx context.Context, req dto.AbonoRequest) (*dto.AbonoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AbonoResponse, error)
	ListarPorVenta(ctx context.Context, ventaID uuid.UUID) ([]dto.AbonoResponse, error)
}

type abonoService struct {
	repo       repository.AbonoRepository
	ventaRepo  repository.VentaRepository
	dispatcher *worker.Dispatcher
	now        func() time.Time
}

func NewAbonoService(repo repository.AbonoRepository, ventaRepo repository.VentaRepository, dispatcher *worker.Dispatcher) AbonoService {
	return &abonoService{repo: repo, ventaRepo: ventaRepo, dispatcher: dispatcher, now: time.Now}
}

// parseFechaAbono acepta fecha con hora o solo fecha.
func parseFechaAbono(raw string) (time.Time, error) {
	if f, err := time.Parse(dto.FormatoFechaHora, raw); err == nil {
		return f, nil
	}
	return time.Parse(dto.FormatoFecha, raw)
}

// ── Registrar ───────────────────────────────────────────────────────────────
// Reglas del ledger:
//   - el monto debe ser mayor a cero
//   - la fecha no puede ser futura (granularidad de día)
//   - la venta no debe estar Confirmada ni Cancelada
//   - debe quedar saldo por encima del epsilon
//
// Si con este abono la venta queda saldada se encola el aviso por correo.

func (s *abonoService) Registrar(ctx context.Context, req dto.AbonoRequest) (*dto.AbonoResponse, error) {
	ventaID, err := uuid.Parse(req.VentaID)
	if err != nil {
		return nil, errors.New("ventaId inválido")
	}
	if !req.MontoAbonado.IsPositive() {
		return nil, errors.New("el monto del abono debe ser mayor a cero")
	}
	fecha, err := parseFechaAbono(req.FechaAbono)
	if err != nil {
		return nil, errors.New("fechaAbono inválida")
	}
	hoy := s.now()
	if fecha.Year() > hoy.Year() ||
		(fecha.Year() == hoy.Year() && fecha.YearDay() > hoy.YearDay()) {
		return nil, errors.New("la fecha del abono no puede ser futura")
	}

	v, err := s.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("venta no encontrada")
		}
		return nil, err
	}
	if !v.Activo() {
		return nil, errors.New("venta no encontrada")
	}
	if estadoCongelado(v.EstadoNombre()) {
		return nil, errors.New("la venta está " + v.EstadoNombre() + " y no admite abonos")
	}

	saldo := SaldoPendiente(v.MontoTotal, v.Abonos)
	if !saldo.GreaterThan(saldoEpsilon) {
		return nil, errors.New("la venta ya está saldada")
	}

	a := &model.Abono{
		VentaID:      ventaID,
		MontoAbonado: req.MontoAbonado,
		FechaAbono:   fecha,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	// Con el ledger actualizado, avisar si la venta quedó saldada.
	if VentaSaldada(saldo.Sub(req.MontoAbonado)) && s.dispatcher != nil {
		payload := worker.AvisoVentaSaldadaPayload{
			VentaID:        ventaID.String(),
			MontoTotal:     v.MontoTotal.StringFixed(2),
			ProyectoNombre: nombreProyecto(v),
			LoteNombre:     nombreLote(v),
		}
		if v.Cliente != nil {
			payload.ClienteNombre = v.Cliente.NombreCompleto()
			payload.ClienteCorreo = v.Cliente.Correo
		}
		if err := s.dispatcher.EnqueueAvisoVentaSaldada(ctx, payload); err != nil {
			log.Error().Err(err).Str("venta_id", ventaID.String()).
				Msg("no se pudo encolar el aviso de venta saldada")
		}
	}

	resp := dto.AbonoToResponse(a)
	return &resp, nil
}

func nombreProyecto(v *model.Venta) string {
	if v.Proyecto != nil {
		return v.Proyecto.Nombre
	}
	return ""
}

func nombreLote(v *model.Venta) string {
	if v.Lote != nil {
		return v.Lote.Nombre
	}
	return ""
}

func (s *abonoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AbonoResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("abono no encontrado")
		}
		return nil, err
	}
	resp := dto.AbonoToResponse(a)
	return &resp, nil
}

func (s *abonoService) ListarPorVenta(ctx context.Context, ventaID uuid.UUID) ([]dto.AbonoResponse, error) {
	if _, err := s.ventaRepo.FindByID(ctx, ventaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("venta no encontrada")
		}
		return nil, err
	}
	abonos, err := s.repo.ListByVenta(ctx, ventaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AbonoResponse, 0, len(abonos))
	for i := range abonos {
		result = append(result, dto.AbonoToResponse(&abonos[i]))
	}
	return result, nil
}
