package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sales-invoicing/internal/handler/api"
	reqdto "sales-invoicing/internal/handler/dto/request"
	"sales-invoicing/internal/handler/middleware"
	"sales-invoicing/internal/infra/metrics"
	"sales-invoicing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type routerDeps struct {
	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	InvoiceHandler *api.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	invoiceHandler *api.InvoiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	p := routerDeps{
		Engine:         engine,
		Config:         cfg,
		Logger:         logger,
		Metrics:        m,
		InvoiceHandler: invoiceHandler,
		AuthMiddleware: authMiddleware,
	}
	setupMiddleware(p)
	setupRoutes(p)
	return nil
}

func setupMiddleware(p routerDeps) {
	timezone := time.FixedZone(p.Config.Log.TimeZone, p.Config.Log.TimeZoneOffset)

	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery(p.Logger))
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS, p.Logger))
	p.Engine.Use(middleware.LoggingMiddleware(p.Logger, timezone))
	p.Engine.Use(middleware.MetricsMiddleware(p.Metrics))
	p.Engine.Use(middleware.ErrorHandler(p.Logger))
}

func setupRoutes(p routerDeps) {
	p.Engine.GET("/health", healthCheck)
	p.Engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := p.Engine.Group("/api")
	{
		invoices := apiGroup.Group("/invoices")
		invoices.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: p.InvoiceHandler.IssueInvoice},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
