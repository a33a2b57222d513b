package router

import (
	"time"

	"cuadre/internal/config"
	"cuadre/internal/handler"
	"cuadre/internal/infra"
	"cuadre/internal/middleware"
	"cuadre/internal/recon"
	"cuadre/internal/repository"
	"cuadre/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/Generador ← DB/Redis
func New(cfg *config.Config, posDB, localDB *gorm.DB, rdb *redis.Client, posCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	fuentePOS := repository.NewFuentePOS(posDB, posCB, time.Duration(cfg.POSQueryTimeoutSeconds)*time.Second)
	usuarioRepo := repository.NewUsuarioRepository(localDB)
	descuentoRepo := repository.NewDescuentoRepository(localDB)

	// ── Services ─────────────────────────────────────────────────────────────
	generador := recon.NewGenerador(fuentePOS)
	reporteSvc := service.NewReporteService(generador, rdb)
	descuentoSvc := service.NewDescuentoService(descuentoRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cuadreH := handler.NewCuadreHandler(reporteSvc)
	descuentosH := handler.NewDescuentosHandler(descuentoSvc)
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(posDB, localDB, rdb, posCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Reconciliation reports — auditor and administrador
		cuadre := v1.Group("/cuadre", middleware.RequireRole("auditor", "administrador"))
		{
			cuadre.GET("/:fecha", cuadreH.Reporte)
			cuadre.GET("/:fecha/resumen", cuadreH.Resumen)
			cuadre.GET("/:fecha/detalle", cuadreH.Detalle)
			cuadre.GET("/:fecha/pdf", cuadreH.PDF)
		}

		// Manual adjustments — auditor and administrador
		descuentos := v1.Group("/descuentos", middleware.RequireRole("auditor", "administrador"))
		{
			descuentos.GET("/:fecha", descuentosH.ListarPorFecha)
			descuentos.POST("", descuentosH.Crear)
			descuentos.PUT("/:id", descuentosH.Actualizar)
			descuentos.DELETE("/:id", descuentosH.Eliminar)
		}

		// User management — administrador only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
