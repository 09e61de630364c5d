package app

import (
	apphttp "github.com/yungbote/orbital-nexus-backend/internal/http"
	"github.com/yungbote/orbital-nexus-backend/internal/observability"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, h Handlers) *apphttp.Server {
	return apphttp.NewServer(":"+cfg.Port, apphttp.RouterConfig{
		Log:         log,
		Metrics:     metrics,
		CORSOrigins: cfg.CORSOrigins,
		ServiceName: cfg.Otel.ServiceName,
		Tracing:     cfg.Otel.Enabled,

		MissionHandler:        h.Mission,
		CostHandler:           h.Cost,
		SustainabilityHandler: h.Sustainability,
		RealtimeHandler:       h.Realtime,
		HealthHandler:         h.Health,
	})
}
