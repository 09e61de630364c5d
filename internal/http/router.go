package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/orbital-nexus-backend/internal/http/handlers"
	httpMW "github.com/yungbote/orbital-nexus-backend/internal/http/middleware"
	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/observability"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORSOrigins []string
	ServiceName string
	Tracing     bool

	MissionHandler        *httpH.MissionHandler
	CostHandler           *httpH.CostHandler
	SustainabilityHandler *httpH.SustainabilityHandler
	RealtimeHandler       *httpH.RealtimeHandler
	HealthHandler         *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.NoRoute(response.NoRoute)

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Realtime (WebSocket)
	if cfg.RealtimeHandler != nil {
		r.GET("/ws", cfg.RealtimeHandler.Connect)
	}

	api := r.Group("/api")

	// Missions
	if cfg.MissionHandler != nil {
		missions := api.Group("/missions")
		missions.POST("/create", cfg.MissionHandler.Create)
		missions.GET("/:id", cfg.MissionHandler.Get)
		missions.PUT("/:id/update", cfg.MissionHandler.Update)
		missions.DELETE("/:id", cfg.MissionHandler.Delete)
		missions.POST("/:id/simulate", cfg.MissionHandler.Simulate)
		missions.GET("/:id/report", cfg.MissionHandler.Report)
		missions.POST("/:id/optimize", cfg.MissionHandler.Optimize)
	}

	// Calculator
	if cfg.CostHandler != nil {
		calc := api.Group("/calculator")
		calc.POST("/estimate", cfg.CostHandler.Estimate)
		calc.GET("/components", cfg.CostHandler.Components)
		calc.POST("/insurance-quote", cfg.CostHandler.InsuranceQuote)
	}

	// Sustainability
	if cfg.SustainabilityHandler != nil {
		sus := api.Group("/sustainability")
		sus.POST("/collision-risk", cfg.SustainabilityHandler.CollisionRisk)
		sus.GET("/debris-density/:altitude", cfg.SustainabilityHandler.DebrisDensity)
		sus.POST("/deorbit-analysis", cfg.SustainabilityHandler.DeorbitAnalysis)
		sus.GET("/active-satellites", cfg.SustainabilityHandler.ActiveSatellites)
	}

	return r
}
