//go:build integration

package router

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v
//
// Covered flows:
//   - registro/login y acceso con rol
//   - alta de cliente, proyecto y lote con geografía sembrada
//   - ciclo de venta: crear → abonar → saldar → fecha de contrato
//   - cascada de estados del lote (Disponible → Reservado → Vendido)
//   - cancelación libera el lote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inmobiliaria/internal/config"
	"inmobiliaria/internal/infra"
	"inmobiliaria/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("inmobiliaria_test"),
		tcPostgres.WithUsername("inmobiliaria"),
		tcPostgres.WithPassword("inmobiliaria"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	// NewDatabase corre migraciones y siembra catálogos y geografía
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	mailer := infra.NewMailer(cfg)
	srv := httptest.NewServer(New(cfg, db, rdb, mailer))
	t.Cleanup(srv.Close)

	// Registrar y loguear un admin
	regResp := do(t, srv, "POST", "/auth/register",
		jsonBody(t, map[string]any{
			"username": "admin-e2e",
			"password": "clave-segura-e2e",
			"roles":    []string{model.RolAdmin},
		}), "")
	require.Equal(t, http.StatusCreated, regResp.StatusCode)
	regResp.Body.Close()

	loginResp := do(t, srv, "POST", "/auth/login",
		jsonBody(t, map[string]string{"username": "admin-e2e", "password": "clave-segura-e2e"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &login)
	require.NotEmpty(t, login.Token)

	return &testEnv{server: srv, token: login.Token}
}

// catalogoID busca por nombre en un catálogo y devuelve el valor de idKey.
func catalogoID(t *testing.T, env *testEnv, path, nombre, idKey string) string {
	t.Helper()
	resp := do(t, env.server, "GET", path, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	decodeJSON(t, resp, &items)
	for _, item := range items {
		if item["nombre"] == nombre {
			id, _ := item[idKey].(string)
			require.NotEmpty(t, id)
			return id
		}
	}
	t.Fatalf("catálogo %s sin %q", path, nombre)
	return ""
}

// primerDistritoID recorre la cascada departamento → provincia → distrito.
func primerDistritoID(t *testing.T, env *testEnv) string {
	t.Helper()
	resp := do(t, env.server, "GET", "/api/departamentos", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deps []struct {
		DepartamentoID string `json:"departamentoId"`
	}
	decodeJSON(t, resp, &deps)
	require.NotEmpty(t, deps)

	resp = do(t, env.server, "GET", "/api/provincias/departamento/"+deps[0].DepartamentoID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var provs []struct {
		ProvinciaID string `json:"provinciaId"`
	}
	decodeJSON(t, resp, &provs)
	require.NotEmpty(t, provs)

	resp = do(t, env.server, "GET", "/api/distritos/provincia/"+provs[0].ProvinciaID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dists []struct {
		DistritoID string `json:"distritoId"`
	}
	decodeJSON(t, resp, &dists)
	require.NotEmpty(t, dists)
	return dists[0].DistritoID
}

// armarEscenario crea cliente, proyecto y lote Disponible de precio 50000.
func armarEscenario(t *testing.T, env *testEnv) (clienteID, proyectoID, loteID string) {
	t.Helper()

	tipoDocID := catalogoID(t, env, "/api/tipos-documento", "DNI", "tipoDocumentoId")
	cliResp := do(t, env.server, "POST", "/api/clientes",
		jsonBody(t, map[string]any{
			"primerNombre":      "María",
			"apellidoPaterno":   "Quispe",
			"apellidoMaterno":   "Huamán",
			"tipoDocumentoId":   tipoDocID,
			"numeroDocumento":   "45879632",
			"correo":            "maria@example.com",
			"ingresosMensuales": "3500.00",
		}), env.token)
	require.Equal(t, http.StatusCreated, cliResp.StatusCode)
	var cli struct {
		ClienteID string `json:"clienteId"`
	}
	decodeJSON(t, cliResp, &cli)

	proResp := do(t, env.server, "POST", "/api/proyectos",
		jsonBody(t, map[string]any{
			"nombre":     "Las Lomas E2E",
			"distritoId": primerDistritoID(t, env),
		}), env.token)
	require.Equal(t, http.StatusCreated, proResp.StatusCode)
	var pro struct {
		ProyectoID string `json:"proyectoId"`
	}
	decodeJSON(t, proResp, &pro)

	disponibleID := catalogoID(t, env, "/api/estados-lote", model.EstadoLoteDisponible, "estadoLoteId")
	loteResp := do(t, env.server, "POST", "/api/lotes",
		jsonBody(t, map[string]any{
			"nombre":       "Mz A Lt 12",
			"precio":       "50000.00",
			"area":         "120.00",
			"estadoLoteId": disponibleID,
			"proyectoId":   pro.ProyectoID,
		}), env.token)
	require.Equal(t, http.StatusCreated, loteResp.StatusCode)
	var lote struct {
		LoteID string `json:"loteId"`
	}
	decodeJSON(t, loteResp, &lote)

	return cli.ClienteID, pro.ProyectoID, lote.LoteID
}

func estadoLoteActual(t *testing.T, env *testEnv, loteID string) string {
	t.Helper()
	resp := do(t, env.server, "GET", "/api/lotes/"+loteID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lote struct {
		EstadoLoteNombre string `json:"estadoLoteNombre"`
	}
	decodeJSON(t, resp, &lote)
	return lote.EstadoLoteNombre
}

type ventaJSON struct {
	VentaID           string  `json:"ventaId"`
	EstadoVentaID     string  `json:"estadoVentaId"`
	EstadoVentaNombre string  `json:"estadoVentaNombre"`
	MontoTotal        string  `json:"montoTotal"`
	MontoAbonado      string  `json:"montoAbonado"`
	SaldoPendiente    string  `json:"saldoPendiente"`
	FechaContrato     *string `json:"fechaContrato"`
	Capacidades       struct {
		PuedeRegistrarAbono     bool `json:"puedeRegistrarAbono"`
		PuedeFijarFechaContrato bool `json:"puedeFijarFechaContrato"`
	} `json:"capacidades"`
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_AuthYRoles(t *testing.T) {
	env := setupTestEnv(t)

	// sin token no se entra
	resp := do(t, env.server, "GET", "/api/clientes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/auth/validate-token", nil, "")
	// validate-token lee el header Authorization por su cuenta
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/api/clientes", nil, env.token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// gestión da de alta usuarios con roles por nombre
	resp = do(t, env.server, "POST", "/api/usuarios",
		jsonBody(t, map[string]any{
			"username": "vendedor-alta-e2e",
			"password": "clave-segura-1",
			"roles":    []string{model.RolVendedor},
		}), env.token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_CicloCompletoDeVenta(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, proyectoID, loteID := armarEscenario(t, env)

	// el lote figura entre los disponibles del proyecto
	dispResp := do(t, env.server, "GET", "/api/lotes/disponibles/"+proyectoID, nil, env.token)
	require.Equal(t, http.StatusOK, dispResp.StatusCode)
	var disponibles []struct {
		LoteID string `json:"loteId"`
	}
	decodeJSON(t, dispResp, &disponibles)
	require.Len(t, disponibles, 1)
	require.Equal(t, loteID, disponibles[0].LoteID)

	// la forma con query del frontend devuelve lo mismo
	dispResp = do(t, env.server, "GET", "/api/lotes/disponibles?proyectoId="+proyectoID, nil, env.token)
	require.Equal(t, http.StatusOK, dispResp.StatusCode)
	decodeJSON(t, dispResp, &disponibles)
	require.Len(t, disponibles, 1)

	monedaID := catalogoID(t, env, "/api/monedas", "Sol", "monedaId")
	pendienteID := catalogoID(t, env, "/api/estados-venta", model.EstadoVentaPendiente, "estadoVentaId")

	ventaResp := do(t, env.server, "POST", "/api/ventas",
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": pendienteID,
			"monedaId":      monedaID,
			"nroCuotas":     12,
			"montoTotal":    "1.00", // se ignora: manda el precio del lote
		}), env.token)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta ventaJSON
	decodeJSON(t, ventaResp, &venta)
	assert.Equal(t, model.EstadoVentaPendiente, venta.EstadoVentaNombre)
	assert.Equal(t, "50000", venta.MontoTotal)
	assert.Nil(t, venta.FechaContrato)
	assert.True(t, venta.Capacidades.PuedeRegistrarAbono)

	// la venta reserva el lote y lo saca de los disponibles
	assert.Equal(t, model.EstadoLoteReservado, estadoLoteActual(t, env, loteID))

	// y la búsqueda por nombre de estado lo encuentra como Reservado
	reservadosResp := do(t, env.server, "GET", "/api/lotes/buscar/estado?estado="+model.EstadoLoteReservado, nil, env.token)
	require.Equal(t, http.StatusOK, reservadosResp.StatusCode)
	var reservados []struct {
		LoteID string `json:"loteId"`
	}
	decodeJSON(t, reservadosResp, &reservados)
	require.Len(t, reservados, 1)
	require.Equal(t, loteID, reservados[0].LoteID)
	dispResp = do(t, env.server, "GET", "/api/lotes/disponibles/"+proyectoID, nil, env.token)
	require.Equal(t, http.StatusOK, dispResp.StatusCode)
	disponibles = nil
	decodeJSON(t, dispResp, &disponibles)
	assert.Empty(t, disponibles)

	// abono parcial
	abonoResp := do(t, env.server, "POST", "/api/abonos",
		jsonBody(t, map[string]any{
			"ventaId":      venta.VentaID,
			"montoAbonado": "20000.00",
			"fechaAbono":   "2026-08-01",
		}), env.token)
	require.Equal(t, http.StatusCreated, abonoResp.StatusCode)
	abonoResp.Body.Close()

	// la fecha de contrato aún no procede
	fecha := "2026-08-27"
	fcResp := do(t, env.server, "PUT", "/api/ventas/"+venta.VentaID,
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": venta.EstadoVentaID,
			"monedaId":      monedaID,
			"nroCuotas":     12,
			"fechaContrato": fecha,
		}), env.token)
	assert.Equal(t, http.StatusBadRequest, fcResp.StatusCode)
	fcResp.Body.Close()

	// saldar
	abonoResp = do(t, env.server, "POST", "/api/abonos",
		jsonBody(t, map[string]any{
			"ventaId":      venta.VentaID,
			"montoAbonado": "30000.00",
			"fechaAbono":   "2026-08-15T10:30:00",
		}), env.token)
	require.Equal(t, http.StatusCreated, abonoResp.StatusCode)
	abonoResp.Body.Close()

	getResp := do(t, env.server, "GET", "/api/ventas/"+venta.VentaID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var saldada ventaJSON
	decodeJSON(t, getResp, &saldada)
	assert.Equal(t, "50000", saldada.MontoAbonado)
	assert.Equal(t, "0", saldada.SaldoPendiente)
	assert.False(t, saldada.Capacidades.PuedeRegistrarAbono)
	assert.True(t, saldada.Capacidades.PuedeFijarFechaContrato)

	// un abono extra sobre la venta saldada se rechaza
	abonoResp = do(t, env.server, "POST", "/api/abonos",
		jsonBody(t, map[string]any{
			"ventaId":      venta.VentaID,
			"montoAbonado": "5.00",
			"fechaAbono":   "2026-08-16",
		}), env.token)
	assert.Equal(t, http.StatusBadRequest, abonoResp.StatusCode)
	abonoResp.Body.Close()

	// ahora sí: fecha de contrato, y el lote queda Vendido
	fcResp = do(t, env.server, "PUT", "/api/ventas/"+venta.VentaID,
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": venta.EstadoVentaID,
			"monedaId":      monedaID,
			"nroCuotas":     12,
			"fechaContrato": fecha,
		}), env.token)
	require.Equal(t, http.StatusOK, fcResp.StatusCode)
	var firmada ventaJSON
	decodeJSON(t, fcResp, &firmada)
	require.NotNil(t, firmada.FechaContrato)
	assert.Equal(t, fecha, *firmada.FechaContrato)
	assert.Equal(t, model.EstadoLoteVendido, estadoLoteActual(t, env, loteID))

	// el ledger quedó con los dos abonos, el más reciente primero
	listResp := do(t, env.server, "GET", "/api/abonos/venta/"+venta.VentaID, nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var abonos []struct {
		MontoAbonado string `json:"montoAbonado"`
	}
	decodeJSON(t, listResp, &abonos)
	require.Len(t, abonos, 2)
	assert.Equal(t, "30000", abonos[0].MontoAbonado)

	// estado de cuenta en PDF
	pdfResp := do(t, env.server, "GET", "/api/ventas/"+venta.VentaID+"/estado-cuenta", nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	pdfResp.Body.Close()
}

func TestE2E_CancelarVentaLiberaElLote(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, proyectoID, loteID := armarEscenario(t, env)

	monedaID := catalogoID(t, env, "/api/monedas", "Sol", "monedaId")
	pendienteID := catalogoID(t, env, "/api/estados-venta", model.EstadoVentaPendiente, "estadoVentaId")
	canceladaID := catalogoID(t, env, "/api/estados-venta", model.EstadoVentaCancelada, "estadoVentaId")

	ventaResp := do(t, env.server, "POST", "/api/ventas",
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": pendienteID,
			"monedaId":      monedaID,
		}), env.token)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta ventaJSON
	decodeJSON(t, ventaResp, &venta)
	require.Equal(t, model.EstadoLoteReservado, estadoLoteActual(t, env, loteID))

	cancelResp := do(t, env.server, "PUT", "/api/ventas/"+venta.VentaID,
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": canceladaID,
			"monedaId":      monedaID,
		}), env.token)
	require.Equal(t, http.StatusOK, cancelResp.StatusCode)
	var cancelada ventaJSON
	decodeJSON(t, cancelResp, &cancelada)
	assert.Equal(t, model.EstadoVentaCancelada, cancelada.EstadoVentaNombre)
	assert.Equal(t, model.EstadoLoteDisponible, estadoLoteActual(t, env, loteID))

	// la venta cancelada queda congelada
	editResp := do(t, env.server, "PUT", "/api/ventas/"+venta.VentaID,
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": pendienteID,
			"monedaId":      monedaID,
		}), env.token)
	assert.Equal(t, http.StatusBadRequest, editResp.StatusCode)
	editResp.Body.Close()
}

func TestE2E_EliminarVentaSoloGestion(t *testing.T) {
	env := setupTestEnv(t)
	clienteID, proyectoID, loteID := armarEscenario(t, env)

	monedaID := catalogoID(t, env, "/api/monedas", "Sol", "monedaId")
	pendienteID := catalogoID(t, env, "/api/estados-venta", model.EstadoVentaPendiente, "estadoVentaId")

	ventaResp := do(t, env.server, "POST", "/api/ventas",
		jsonBody(t, map[string]any{
			"clienteId":     clienteID,
			"loteId":        loteID,
			"proyectoId":    proyectoID,
			"estadoVentaId": pendienteID,
			"monedaId":      monedaID,
		}), env.token)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta ventaJSON
	decodeJSON(t, ventaResp, &venta)

	// un vendedor no pasa el middleware de rol
	regResp := do(t, env.server, "POST", "/auth/register",
		jsonBody(t, map[string]any{"username": "vendedor-e2e", "password": "clave-segura-e2e"}), "")
	require.Equal(t, http.StatusCreated, regResp.StatusCode)
	regResp.Body.Close()
	loginResp := do(t, env.server, "POST", "/auth/login",
		jsonBody(t, map[string]string{"username": "vendedor-e2e", "password": "clave-segura-e2e"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &login)

	delResp := do(t, env.server, "DELETE", "/api/ventas/"+venta.VentaID, nil, login.Token)
	assert.Equal(t, http.StatusForbidden, delResp.StatusCode)
	delResp.Body.Close()

	// el admin sí, y el lote vuelve a Disponible
	delResp = do(t, env.server, "DELETE", "/api/ventas/"+venta.VentaID, nil, env.token)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()
	assert.Equal(t, model.EstadoLoteDisponible, estadoLoteActual(t, env, loteID))
}
