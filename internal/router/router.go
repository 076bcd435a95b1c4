package router

import (
	"time"

	"inmobiliaria/internal/config"
	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/handler"
	"inmobiliaria/internal/infra"
	"inmobiliaria/internal/middleware"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
	"inmobiliaria/internal/service"
	"inmobiliaria/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	pdfGen := infra.NewPDFGenerator(cfg.PDFStoragePath)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	geografiaRepo := repository.NewGeografiaRepository(db)
	proyectoRepo := repository.NewProyectoRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	abonoRepo := repository.NewAbonoRepository(db)

	tipoDocumentoRepo := repository.NewCatalogoRepository[model.TipoDocumento](db)
	tipoLoteRepo := repository.NewCatalogoRepository[model.TipoLote](db)
	estadoLoteRepo := repository.NewCatalogoRepository[model.EstadoLote](db)
	estadoVentaRepo := repository.NewCatalogoRepository[model.EstadoVenta](db)
	monedaRepo := repository.NewCatalogoRepository[model.Moneda](db)
	rolRepo := repository.NewCatalogoRepository[model.Rol](db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	geografiaSvc := service.NewGeografiaService(geografiaRepo)
	proyectoSvc := service.NewProyectoService(proyectoRepo, geografiaRepo)
	loteSvc := service.NewLoteService(loteRepo, proyectoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, loteRepo, proyectoRepo, estadoVentaRepo, estadoLoteRepo, monedaRepo, pdfGen)
	abonoSvc := service.NewAbonoService(abonoRepo, ventaRepo, dispatcher)

	tipoDocumentoSvc := service.NewCatalogoService[model.TipoDocumento, *model.TipoDocumento](tipoDocumentoRepo, rdb, "tipos_documento")
	tipoLoteSvc := service.NewCatalogoService[model.TipoLote, *model.TipoLote](tipoLoteRepo, rdb, "tipos_lote")
	estadoLoteSvc := service.NewCatalogoService[model.EstadoLote, *model.EstadoLote](estadoLoteRepo, rdb, "estados_lote")
	estadoVentaSvc := service.NewCatalogoService[model.EstadoVenta, *model.EstadoVenta](estadoVentaRepo, rdb, "estados_venta")
	monedaSvc := service.NewCatalogoService[model.Moneda, *model.Moneda](monedaRepo, rdb, "monedas")
	rolSvc := service.NewCatalogoService[model.Rol, *model.Rol](rolRepo, rdb, "roles")

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	geografiaH := handler.NewGeografiaHandler(geografiaSvc)
	proyectosH := handler.NewProyectosHandler(proyectoSvc)
	lotesH := handler.NewLotesHandler(loteSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	abonosH := handler.NewAbonosHandler(abonoSvc)

	tipoDocumentoH := handler.NewCatalogoHandler(tipoDocumentoSvc, dto.TipoDocumentoToResponse)
	tipoLoteH := handler.NewCatalogoHandler(tipoLoteSvc, dto.TipoLoteToResponse)
	estadoLoteH := handler.NewCatalogoHandler(estadoLoteSvc, dto.EstadoLoteToResponse)
	estadoVentaH := handler.NewCatalogoHandler(estadoVentaSvc, dto.EstadoVentaToResponse)
	monedaH := handler.NewCatalogoHandler(monedaSvc, dto.MonedaToResponse)
	rolH := handler.NewCatalogoHandler(rolSvc, dto.RolToResponse)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))

	// Auth (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.GET("/validate-token", authH.ValidateToken)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequireRole(model.RolPropietario, model.RolAdmin, model.RolVendedor)
	gestion := middleware.RequireRole(model.RolPropietario, model.RolAdmin)

	api := r.Group("/api", jwtMW)
	{
		clientes := api.Group("/clientes")
		{
			clientes.GET("", todos, clientesH.Listar)
			clientes.GET("/:id", todos, clientesH.ObtenerPorID)
			clientes.POST("", todos, clientesH.Crear)
			clientes.PUT("/:id", todos, clientesH.Actualizar)
			clientes.DELETE("/:id", gestion, clientesH.Eliminar)
		}

		proyectos := api.Group("/proyectos")
		{
			proyectos.GET("", todos, proyectosH.Listar)
			proyectos.GET("/activos", todos, proyectosH.ListarActivos)
			proyectos.GET("/:id", todos, proyectosH.ObtenerPorID)
			proyectos.POST("", gestion, proyectosH.Crear)
			proyectos.PUT("/:id", gestion, proyectosH.Actualizar)
			proyectos.DELETE("/:id", gestion, proyectosH.Eliminar)
		}

		lotes := api.Group("/lotes")
		{
			lotes.GET("", todos, lotesH.Listar)
			lotes.GET("/activos", todos, lotesH.ListarActivos)
			lotes.GET("/disponibles", todos, lotesH.ListarDisponibles)
			lotes.GET("/disponibles/:proyectoId", todos, lotesH.ListarDisponibles)
			lotes.GET("/buscar/proyecto/:proyectoId", todos, lotesH.BuscarPorProyecto)
			lotes.GET("/buscar/estado", todos, lotesH.BuscarPorEstado)
			lotes.GET("/buscar/estado/:estadoLoteId", todos, lotesH.BuscarPorEstado)
			lotes.GET("/:id", todos, lotesH.ObtenerPorID)
			lotes.POST("", gestion, lotesH.Crear)
			lotes.PUT("/:id", gestion, lotesH.Actualizar)
			lotes.DELETE("/:id", gestion, lotesH.Eliminar)
		}

		ventas := api.Group("/ventas")
		{
			ventas.GET("", todos, ventasH.Listar)
			ventas.GET("/:id", todos, ventasH.ObtenerPorID)
			ventas.GET("/:id/estado-cuenta", todos, ventasH.EstadoCuenta)
			ventas.POST("", todos, ventasH.Crear)
			ventas.PUT("/:id", todos, ventasH.Actualizar)
			// El servicio vuelve a validar el rol; la ruta corta antes.
			ventas.DELETE("/:id", gestion, ventasH.Eliminar)
		}

		abonos := api.Group("/abonos")
		{
			abonos.POST("", todos, abonosH.Registrar)
			abonos.GET("/:id", todos, abonosH.ObtenerPorID)
			abonos.GET("/venta/:ventaId", todos, abonosH.ListarPorVenta)
		}

		// Geografía — lectura para los selectores en cascada
		api.GET("/departamentos", todos, geografiaH.ListarDepartamentos)
		api.GET("/provincias/departamento/:departamentoId", todos, geografiaH.ListarProvincias)
		api.GET("/distritos/provincia/:provinciaId", todos, geografiaH.ListarDistritos)

		// Catálogos — escritura restringida a gestión
		registrarCatalogo(api, "/tipos-documento", tipoDocumentoH, todos, gestion)
		registrarCatalogo(api, "/tipos-lote", tipoLoteH, todos, gestion)
		registrarCatalogo(api, "/estados-lote", estadoLoteH, todos, gestion)
		registrarCatalogo(api, "/estados-venta", estadoVentaH, todos, gestion)
		registrarCatalogo(api, "/monedas", monedaH, todos, gestion)
		registrarCatalogo(api, "/roles", rolH, todos, gestion)

		usuarios := api.Group("/usuarios", gestion)
		{
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.POST("", authH.CrearUsuario)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.EliminarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// registrarCatalogo monta el CRUD estándar de un catálogo.
func registrarCatalogo[M any](api *gin.RouterGroup, path string, h *handler.CatalogoHandler[M], lectura, escritura gin.HandlerFunc) {
	g := api.Group(path)
	g.GET("", lectura, h.Listar)
	g.GET("/:id", lectura, h.ObtenerPorID)
	g.POST("", escritura, h.Crear)
	g.PUT("/:id", escritura, h.Actualizar)
	g.DELETE("/:id", escritura, h.Eliminar)
}
