package service

import (
	"context"
	"errors"
	"time"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/infra"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.VentaRequest, roles []string) (*dto.VentaResponse, error)
	Listar(ctx context.Context, search string, roles []string) ([]dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID, roles []string) (*dto.VentaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.VentaRequest, roles []string) (*dto.VentaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID, roles []string) error
	// EstadoCuenta genera el PDF de estado de cuenta y devuelve su ruta.
	EstadoCuenta(ctx context.Context, id uuid.UUID) (string, error)
}

type ventaService struct {
	repo            repository.VentaRepository
	clienteRepo     repository.ClienteRepository
	loteRepo        repository.LoteRepository
	proyectoRepo    repository.ProyectoRepository
	estadoVentaRepo repository.CatalogoRepository[model.EstadoVenta]
	estadoLoteRepo  repository.CatalogoRepository[model.EstadoLote]
	monedaRepo      repository.CatalogoRepository[model.Moneda]
	pdf             *infra.PDFGenerator
}

func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	loteRepo repository.LoteRepository,
	proyectoRepo repository.ProyectoRepository,
	estadoVentaRepo repository.CatalogoRepository[model.EstadoVenta],
	estadoLoteRepo repository.CatalogoRepository[model.EstadoLote],
	monedaRepo repository.CatalogoRepository[model.Moneda],
	pdf *infra.PDFGenerator,
) VentaService {
	return &ventaService{
		repo:            repo,
		clienteRepo:     clienteRepo,
		loteRepo:        loteRepo,
		proyectoRepo:    proyectoRepo,
		estadoVentaRepo: estadoVentaRepo,
		estadoLoteRepo:  estadoLoteRepo,
		monedaRepo:      monedaRepo,
		pdf:             pdf,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *ventaService) toResponse(v *model.Venta, roles []string) dto.VentaResponse {
	saldo := SaldoPendiente(v.MontoTotal, v.Abonos)
	cap := ResolverCapacidades(roles, v.EstadoNombre(), v.FechaContrato, saldo)
	return dto.VentaToResponse(v, MontoAbonado(v.Abonos), SaldoVisible(saldo), UltimoAbono(v.Abonos), cap)
}

func (s *ventaService) estadoLotePorNombre(ctx context.Context, nombre string) (*model.EstadoLote, error) {
	e, err := s.estadoLoteRepo.FindByNombre(ctx, nombre)
	if err != nil {
		return nil, errors.New("estado de lote " + nombre + " no configurado")
	}
	return e, nil
}

// ── Crear ───────────────────────────────────────────────────────────────────
// Reglas de alta:
//   - el lote debe pertenecer al proyecto indicado y estar Disponible
//   - el monto total se fija desde el precio vigente del lote al momento de
//     la selección; cambios posteriores de precio no alteran la venta
//   - toda venta nace Pendiente y sin fecha de contrato
//   - el lote pasa a Reservado en la misma transacción

func (s *ventaService) Crear(ctx context.Context, req dto.VentaRequest, roles []string) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, errors.New("clienteId inválido")
	}
	loteID, err := uuid.Parse(req.LoteID)
	if err != nil {
		return nil, errors.New("loteId inválido")
	}
	proyectoID, err := uuid.Parse(req.ProyectoID)
	if err != nil {
		return nil, errors.New("proyectoId inválido")
	}
	monedaID, err := uuid.Parse(req.MonedaID)
	if err != nil {
		return nil, errors.New("monedaId inválido")
	}

	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if _, err := s.monedaRepo.FindByID(ctx, monedaID); err != nil {
		return nil, errors.New("moneda no encontrada")
	}

	lote, err := s.loteRepo.FindByID(ctx, loteID)
	if err != nil {
		return nil, errors.New("lote no encontrado")
	}
	if lote.ProyectoID != proyectoID {
		return nil, errors.New("el lote no pertenece al proyecto indicado")
	}
	if !lote.Activo() {
		return nil, errors.New("el lote está eliminado")
	}
	if lote.EstadoNombre() != model.EstadoLoteDisponible {
		return nil, errors.New("el lote no está disponible")
	}

	ocupado, err := s.repo.ExisteVentaVigentePorLote(ctx, loteID)
	if err != nil {
		return nil, err
	}
	if ocupado {
		return nil, errors.New("el lote ya tiene una venta vigente")
	}

	estadoPendiente, err := s.estadoVentaRepo.FindByNombre(ctx, model.EstadoVentaPendiente)
	if err != nil {
		return nil, errors.New("estado de venta Pendiente no configurado")
	}
	estadoReservado, err := s.estadoLotePorNombre(ctx, model.EstadoLoteReservado)
	if err != nil {
		return nil, err
	}

	v := &model.Venta{
		ClienteID:     clienteID,
		LoteID:        loteID,
		ProyectoID:    proyectoID,
		EstadoVentaID: estadoPendiente.ID,
		MonedaID:      monedaID,
		NroCuotas:     req.NroCuotas,
		MontoTotal:    lote.Precio,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, v); err != nil {
			return err
		}
		return s.loteRepo.UpdateEstadoTx(tx, loteID, estadoReservado.ID)
	})
	if err != nil {
		return nil, err
	}

	creada, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(creada, roles)
	return &resp, nil
}

func (s *ventaService) Listar(ctx context.Context, search string, roles []string) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		result = append(result, s.toResponse(&ventas[i], roles))
	}
	return result, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uuid.UUID, roles []string) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("venta no encontrada")
		}
		return nil, err
	}
	resp := s.toResponse(v, roles)
	return &resp, nil
}

// ── Actualizar ──────────────────────────────────────────────────────────────
// Campos de escritura única: cliente, lote, proyecto, moneda, nro de cuotas
// y monto total quedan fijos desde el alta. Lo único editable es el estado
// de la venta y, bajo sus propias reglas, la fecha de contrato:
//
//   - una venta Confirmada o Cancelada no admite ningún cambio
//   - pasar a Cancelada libera el lote (vuelve a Disponible)
//   - la fecha de contrato se registra una sola vez, requiere saldo dentro
//     del epsilon y congela el lote en Vendido

func (s *ventaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.VentaRequest, roles []string) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("venta no encontrada")
		}
		return nil, err
	}

	if estadoCongelado(v.EstadoNombre()) {
		return nil, errors.New("la venta está " + v.EstadoNombre() + " y no admite modificaciones")
	}

	if req.ClienteID != v.ClienteID.String() {
		return nil, errors.New("el cliente de una venta no se puede modificar")
	}
	if req.LoteID != v.LoteID.String() {
		return nil, errors.New("el lote de una venta no se puede modificar")
	}
	if req.ProyectoID != v.ProyectoID.String() {
		return nil, errors.New("el proyecto de una venta no se puede modificar")
	}
	if req.MonedaID != v.MonedaID.String() {
		return nil, errors.New("la moneda de una venta no se puede modificar")
	}
	if !cuotasIguales(req.NroCuotas, v.NroCuotas) {
		return nil, errors.New("el número de cuotas de una venta no se puede modificar")
	}
	if !req.MontoTotal.IsZero() && !req.MontoTotal.Equal(v.MontoTotal) {
		return nil, errors.New("el monto total de una venta no se puede modificar")
	}

	estadoID, err := uuid.Parse(req.EstadoVentaID)
	if err != nil {
		return nil, errors.New("estadoVentaId inválido")
	}
	nuevoEstado, err := s.estadoVentaRepo.FindByID(ctx, estadoID)
	if err != nil {
		return nil, errors.New("estado de venta no encontrado")
	}
	cancelando := nuevoEstado.Nombre == model.EstadoVentaCancelada && v.EstadoNombre() != model.EstadoVentaCancelada

	var nuevaFecha *time.Time
	if req.FechaContrato != nil {
		f, err := time.Parse(dto.FormatoFecha, *req.FechaContrato)
		if err != nil {
			return nil, errors.New("fechaContrato inválida, se espera YYYY-MM-DD")
		}
		switch {
		case v.FechaContrato != nil && f.Equal(*v.FechaContrato):
			// sin cambio
		case v.FechaContrato != nil:
			return nil, errors.New("la fecha de contrato ya fue registrada y no se puede modificar")
		case cancelando || nuevoEstado.Nombre == model.EstadoVentaCancelada:
			return nil, errors.New("una venta cancelada no admite fecha de contrato")
		case !VentaSaldada(SaldoPendiente(v.MontoTotal, v.Abonos)):
			return nil, errors.New("la fecha de contrato requiere la venta saldada")
		default:
			nuevaFecha = &f
		}
	}

	v.EstadoVentaID = estadoID
	if nuevaFecha != nil {
		v.FechaContrato = nuevaFecha
	}
	// Save must touch only the root row; clear preloads so GORM does not
	// upsert associations, least of all the abonos ledger.
	v.Cliente, v.Lote, v.Proyecto, v.EstadoVenta, v.Moneda, v.Abonos = nil, nil, nil, nil, nil, nil

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, v); err != nil {
			return err
		}
		if cancelando {
			estadoDisponible, err := s.estadoLotePorNombre(ctx, model.EstadoLoteDisponible)
			if err != nil {
				return err
			}
			return s.loteRepo.UpdateEstadoTx(tx, v.LoteID, estadoDisponible.ID)
		}
		if nuevaFecha != nil {
			estadoVendido, err := s.estadoLotePorNombre(ctx, model.EstadoLoteVendido)
			if err != nil {
				return err
			}
			return s.loteRepo.UpdateEstadoTx(tx, v.LoteID, estadoVendido.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actualizada, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(actualizada, roles)
	return &resp, nil
}

func cuotasIguales(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID, roles []string) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("venta no encontrada")
		}
		return err
	}
	if !puedeEliminarVenta(roles) {
		return errors.New("solo PROPIETARIO o ADMIN pueden eliminar ventas")
	}
	if estadoCongelado(v.EstadoNombre()) {
		return errors.New("la venta está " + v.EstadoNombre() + " y no se puede eliminar")
	}

	estadoDisponible, err := s.estadoLotePorNombre(ctx, model.EstadoLoteDisponible)
	if err != nil {
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SoftDeleteTx(tx, id); err != nil {
			return err
		}
		// Eliminar la venta libera el lote.
		return s.loteRepo.UpdateEstadoTx(tx, v.LoteID, estadoDisponible.ID)
	})
}

func (s *ventaService) EstadoCuenta(ctx context.Context, id uuid.UUID) (string, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("venta no encontrada")
		}
		return "", err
	}
	saldo := SaldoVisible(SaldoPendiente(v.MontoTotal, v.Abonos))
	return s.pdf.GenerarEstadoCuenta(v, MontoAbonado(v.Abonos), saldo)
}
