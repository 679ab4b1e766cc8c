package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"admin-dashboard/internal/handler/api"
	"admin-dashboard/internal/handler/middleware"
	"admin-dashboard/internal/pkg/config"
	"admin-dashboard/internal/ws"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	dashboardHandler *api.DashboardHandler,
	customerHandler *api.CustomerHandler,
	orderHandler *api.OrderHandler,
	wsHandler *ws.Handler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, dashboardHandler, customerHandler, orderHandler, wsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	dashboardHandler *api.DashboardHandler,
	customerHandler *api.CustomerHandler,
	orderHandler *api.OrderHandler,
	wsHandler *ws.Handler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws", wsHandler.Serve)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.Snapshot},
		})

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: customerHandler.List},
				{Method: http.MethodGet, Path: "/recent", Handler: customerHandler.Recent},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.Delete},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/recent", Handler: orderHandler.Recent},
				{Method: http.MethodPut, Path: "/:id", Handler: orderHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: orderHandler.Delete},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
