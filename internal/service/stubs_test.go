package service

import (
	"context"
	"errors"
	"time"

	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories so the business rules run without Postgres.
// DB() returns nil, which makes runTx call the closure directly.

var errStubNotFound = gorm.ErrRecordNotFound

// stubCatalogoRepo serves any catalog model that embeds CatalogoBase.
type stubCatalogoRepo[M any, PM interface {
	*M
	Base() *model.CatalogoBase
}] struct {
	items map[uuid.UUID]*M
}

func newStubCatalogoRepo[M any, PM interface {
	*M
	Base() *model.CatalogoBase
}](nombres ...string) *stubCatalogoRepo[M, PM] {
	r := &stubCatalogoRepo[M, PM]{items: make(map[uuid.UUID]*M)}
	for _, nombre := range nombres {
		m := PM(new(M))
		m.Base().ID = uuid.New()
		m.Base().Nombre = nombre
		r.items[m.Base().ID] = (*M)(m)
	}
	return r
}

func (r *stubCatalogoRepo[M, PM]) Create(_ context.Context, m *M) error {
	if PM(m).Base().ID == uuid.Nil {
		PM(m).Base().ID = uuid.New()
	}
	r.items[PM(m).Base().ID] = m
	return nil
}

func (r *stubCatalogoRepo[M, PM]) FindByID(_ context.Context, id uuid.UUID) (*M, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, errStubNotFound
	}
	return m, nil
}

func (r *stubCatalogoRepo[M, PM]) FindByNombre(_ context.Context, nombre string) (*M, error) {
	for _, m := range r.items {
		if PM(m).Base().Nombre == nombre {
			return m, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubCatalogoRepo[M, PM]) List(_ context.Context) ([]M, error) {
	out := make([]M, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubCatalogoRepo[M, PM]) Update(_ context.Context, m *M) error {
	r.items[PM(m).Base().ID] = m
	return nil
}

func (r *stubCatalogoRepo[M, PM]) SoftDelete(_ context.Context, id uuid.UUID) error {
	m, ok := r.items[id]
	if !ok {
		return errStubNotFound
	}
	now := time.Now()
	PM(m).Base().FechaEliminacion = &now
	return nil
}

func (r *stubCatalogoRepo[M, PM]) DB() *gorm.DB { return nil }

func (r *stubCatalogoRepo[M, PM]) mustByNombre(nombre string) *M {
	m, err := r.FindByNombre(context.Background(), nombre)
	if err != nil {
		panic("stub catalogo sin " + nombre)
	}
	return m
}

// stubVentaRepo keeps sales in memory. resolver re-attaches associations the
// way the GORM preloads would, so EstadoNombre() and friends work after a
// reload.
type stubVentaRepo struct {
	ventas   map[uuid.UUID]*model.Venta
	resolver func(v *model.Venta)
}

func newStubVentaRepo(resolver func(v *model.Venta)) *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta), resolver: resolver}
}

func (r *stubVentaRepo) Create(_ context.Context, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	return r.Create(context.Background(), v)
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errStubNotFound
	}
	copia := *v
	if r.resolver != nil {
		r.resolver(&copia)
	}
	return &copia, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ string) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		copia := *v
		if r.resolver != nil {
			r.resolver(&copia)
		}
		out = append(out, copia)
	}
	return out, nil
}

func (r *stubVentaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ExisteVentaVigentePorLote(_ context.Context, loteID uuid.UUID) (bool, error) {
	for _, v := range r.ventas {
		if v.LoteID != loteID || v.FechaEliminacion != nil {
			continue
		}
		copia := *v
		if r.resolver != nil {
			r.resolver(&copia)
		}
		if copia.EstadoNombre() != model.EstadoVentaCancelada {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVentaRepo) Update(_ context.Context, v *model.Venta) error {
	if _, ok := r.ventas[v.ID]; !ok {
		return errStubNotFound
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) UpdateTx(_ *gorm.DB, v *model.Venta) error {
	return r.Update(context.Background(), v)
}

func (r *stubVentaRepo) SoftDeleteTx(_ *gorm.DB, id uuid.UUID) error {
	v, ok := r.ventas[id]
	if !ok {
		return errStubNotFound
	}
	now := time.Now()
	v.FechaEliminacion = &now
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubAbonoRepo is the in-memory payment ledger.
type stubAbonoRepo struct {
	abonos map[uuid.UUID]*model.Abono
}

func newStubAbonoRepo() *stubAbonoRepo {
	return &stubAbonoRepo{abonos: make(map[uuid.UUID]*model.Abono)}
}

func (r *stubAbonoRepo) Create(_ context.Context, a *model.Abono) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.abonos[a.ID] = a
	return nil
}

func (r *stubAbonoRepo) CreateTx(_ *gorm.DB, a *model.Abono) error {
	return r.Create(context.Background(), a)
}

func (r *stubAbonoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Abono, error) {
	a, ok := r.abonos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return a, nil
}

func (r *stubAbonoRepo) ListByVenta(_ context.Context, ventaID uuid.UUID) ([]model.Abono, error) {
	var out []model.Abono
	for _, a := range r.abonos {
		if a.VentaID == ventaID {
			out = append(out, *a)
		}
	}
	// newest first, like the SQL ordering
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].FechaAbono.After(out[i].FechaAbono) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *stubAbonoRepo) DB() *gorm.DB { return nil }

var _ repository.AbonoRepository = (*stubAbonoRepo)(nil)

// stubClienteRepo only needs FindByID for venta tests.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo(clientes ...*model.Cliente) *stubClienteRepo {
	r := &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
	for _, c := range clientes {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clientes[c.ID] = c
	}
	return r
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByNumeroDocumento(_ context.Context, numero string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.NumeroDocumento == numero {
			return c, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubClienteRepo) List(_ context.Context, _ string) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.clientes[id]
	if !ok {
		return errStubNotFound
	}
	now := time.Now()
	c.FechaEliminacion = &now
	return nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubLoteRepo tracks estado transitions so the cascade rules can be asserted.
type stubLoteRepo struct {
	lotes   map[uuid.UUID]*model.Lote
	estados *stubCatalogoRepo[model.EstadoLote, *model.EstadoLote]
}

func newStubLoteRepo(estados *stubCatalogoRepo[model.EstadoLote, *model.EstadoLote], lotes ...*model.Lote) *stubLoteRepo {
	r := &stubLoteRepo{lotes: make(map[uuid.UUID]*model.Lote), estados: estados}
	for _, l := range lotes {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.lotes[l.ID] = l
	}
	return r
}

func (r *stubLoteRepo) Create(_ context.Context, l *model.Lote) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lotes[l.ID] = l
	return nil
}

func (r *stubLoteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lote, error) {
	l, ok := r.lotes[id]
	if !ok {
		return nil, errStubNotFound
	}
	copia := *l
	if e, err := r.estados.FindByID(context.Background(), l.EstadoLoteID); err == nil {
		copia.EstadoLote = e
	}
	return &copia, nil
}

func (r *stubLoteRepo) List(_ context.Context) ([]model.Lote, error) { return r.all(), nil }

func (r *stubLoteRepo) ListActivos(_ context.Context, _ string) ([]model.Lote, error) {
	return r.all(), nil
}

func (r *stubLoteRepo) ListByProyecto(_ context.Context, proyectoID uuid.UUID) ([]model.Lote, error) {
	var out []model.Lote
	for _, l := range r.all() {
		if l.ProyectoID == proyectoID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoteRepo) ListByEstado(_ context.Context, estadoID uuid.UUID) ([]model.Lote, error) {
	var out []model.Lote
	for _, l := range r.all() {
		if l.EstadoLoteID == estadoID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoteRepo) ListByEstadoNombre(_ context.Context, nombre string) ([]model.Lote, error) {
	var out []model.Lote
	for _, l := range r.all() {
		if l.FechaEliminacion == nil && l.EstadoNombre() == nombre {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoteRepo) ListDisponibles(_ context.Context, proyectoID uuid.UUID) ([]model.Lote, error) {
	var out []model.Lote
	for _, l := range r.all() {
		if proyectoID != uuid.Nil && l.ProyectoID != proyectoID {
			continue
		}
		if l.FechaEliminacion == nil && l.EstadoNombre() == model.EstadoLoteDisponible {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoteRepo) Update(_ context.Context, l *model.Lote) error {
	r.lotes[l.ID] = l
	return nil
}

func (r *stubLoteRepo) UpdateEstadoTx(_ *gorm.DB, id, estadoLoteID uuid.UUID) error {
	l, ok := r.lotes[id]
	if !ok {
		return errors.New("lote no encontrado")
	}
	l.EstadoLoteID = estadoLoteID
	l.EstadoLote = nil
	return nil
}

func (r *stubLoteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	l, ok := r.lotes[id]
	if !ok {
		return errStubNotFound
	}
	now := time.Now()
	l.FechaEliminacion = &now
	return nil
}

func (r *stubLoteRepo) DB() *gorm.DB { return nil }

func (r *stubLoteRepo) all() []model.Lote {
	out := make([]model.Lote, 0, len(r.lotes))
	for _, l := range r.lotes {
		copia := *l
		if e, err := r.estados.FindByID(context.Background(), l.EstadoLoteID); err == nil {
			copia.EstadoLote = e
		}
		out = append(out, copia)
	}
	return out
}

var _ repository.LoteRepository = (*stubLoteRepo)(nil)

// stubProyectoRepo only needs FindByID and CountLotes here.
type stubProyectoRepo struct {
	proyectos map[uuid.UUID]*model.Proyecto
}

func newStubProyectoRepo(proyectos ...*model.Proyecto) *stubProyectoRepo {
	r := &stubProyectoRepo{proyectos: make(map[uuid.UUID]*model.Proyecto)}
	for _, p := range proyectos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.proyectos[p.ID] = p
	}
	return r
}

func (r *stubProyectoRepo) Create(_ context.Context, p *model.Proyecto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proyectos[p.ID] = p
	return nil
}

func (r *stubProyectoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proyecto, error) {
	p, ok := r.proyectos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubProyectoRepo) List(_ context.Context) ([]model.Proyecto, error) {
	out := make([]model.Proyecto, 0, len(r.proyectos))
	for _, p := range r.proyectos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProyectoRepo) ListActivos(ctx context.Context) ([]model.Proyecto, error) {
	return r.List(ctx)
}

func (r *stubProyectoRepo) Update(_ context.Context, p *model.Proyecto) error {
	r.proyectos[p.ID] = p
	return nil
}

func (r *stubProyectoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.proyectos[id]
	if !ok {
		return errStubNotFound
	}
	now := time.Now()
	p.FechaEliminacion = &now
	return nil
}

func (r *stubProyectoRepo) CountLotes(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *stubProyectoRepo) DB() *gorm.DB { return nil }

var _ repository.ProyectoRepository = (*stubProyectoRepo)(nil)
