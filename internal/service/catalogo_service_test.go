package service

import (
	"context"
	"testing"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonedaSvc() (CatalogoService[model.Moneda], *stubCatalogoRepo[model.Moneda, *model.Moneda]) {
	repo := newStubCatalogoRepo[model.Moneda, *model.Moneda]()
	return NewCatalogoService[model.Moneda, *model.Moneda](repo, nil, "monedas"), repo
}

func TestCatalogoCrearRechazaNombreDuplicado(t *testing.T) {
	svc, _ := newMonedaSvc()
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CatalogoRequest{Nombre: "Sol", Simbolo: "S/"})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, dto.CatalogoRequest{Nombre: "Sol", Simbolo: "S/"})
	assert.EqualError(t, err, "ya existe un registro con ese nombre")
}

func TestCatalogoCrearAplicaSimboloSoloEnMonedas(t *testing.T) {
	svc, _ := newMonedaSvc()
	m, err := svc.Crear(context.Background(), dto.CatalogoRequest{Nombre: "Dólar", Simbolo: "$"})
	require.NoError(t, err)
	assert.Equal(t, "$", m.Simbolo)

	// un catálogo sin símbolo ignora el campo sin quejarse
	rolRepo := newStubCatalogoRepo[model.Rol, *model.Rol]()
	rolSvc := NewCatalogoService[model.Rol, *model.Rol](rolRepo, nil, "roles")
	rol, err := rolSvc.Crear(context.Background(), dto.CatalogoRequest{Nombre: "AUDITOR", Simbolo: "$"})
	require.NoError(t, err)
	assert.Equal(t, "AUDITOR", rol.Nombre)
}

func TestCatalogoActualizar(t *testing.T) {
	svc, _ := newMonedaSvc()
	ctx := context.Background()

	sol, err := svc.Crear(ctx, dto.CatalogoRequest{Nombre: "Sol", Simbolo: "S/"})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.CatalogoRequest{Nombre: "Dólar", Simbolo: "$"})
	require.NoError(t, err)

	// renombrar sobre un nombre ocupado falla
	_, err = svc.Actualizar(ctx, sol.ID, dto.CatalogoRequest{Nombre: "Dólar", Simbolo: "S/"})
	assert.EqualError(t, err, "ya existe un registro con ese nombre")

	// conservar el propio nombre está permitido
	actualizado, err := svc.Actualizar(ctx, sol.ID, dto.CatalogoRequest{Nombre: "Sol", Descripcion: "Sol peruano", Simbolo: "S/"})
	require.NoError(t, err)
	assert.Equal(t, "Sol peruano", actualizado.Descripcion)
}

func TestCatalogoEliminarNoEncontrado(t *testing.T) {
	svc, _ := newMonedaSvc()
	err := svc.Eliminar(context.Background(), uuid.New())
	assert.EqualError(t, err, "registro no encontrado")
}

func TestCatalogoEliminarEsSoftDelete(t *testing.T) {
	svc, repo := newMonedaSvc()
	ctx := context.Background()

	m, err := svc.Crear(ctx, dto.CatalogoRequest{Nombre: "Sol", Simbolo: "S/"})
	require.NoError(t, err)
	require.NoError(t, svc.Eliminar(ctx, m.ID))

	guardado, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.NotNil(t, guardado.FechaEliminacion)
}
