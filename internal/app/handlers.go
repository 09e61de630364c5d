package app

import (
	"context"

	httpH "github.com/yungbote/orbital-nexus-backend/internal/http/handlers"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Mission        *httpH.MissionHandler
	Cost           *httpH.CostHandler
	Sustainability *httpH.SustainabilityHandler
	Realtime       *httpH.RealtimeHandler
}

func wireHandlers(ctx context.Context, log *logger.Logger, cfg Config, s Services, hub *realtime.Hub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(cfg.Environment),
		Mission:        httpH.NewMissionHandler(log, s.Missions),
		Cost:           httpH.NewCostHandler(log, s.Costs),
		Sustainability: httpH.NewSustainabilityHandler(log, s.Sustainability),
		Realtime:       httpH.NewRealtimeHandler(ctx, log, hub, cfg.CORSOrigins),
	}
}
