package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/services"
)

type SustainabilityHandler struct {
	log            *logger.Logger
	sustainability services.SustainabilityService
}

func NewSustainabilityHandler(baseLog *logger.Logger, sustainability services.SustainabilityService) *SustainabilityHandler {
	return &SustainabilityHandler{
		log:            baseLog.With("handler", "SustainabilityHandler"),
		sustainability: sustainability,
	}
}

// POST /api/sustainability/collision-risk
func (h *SustainabilityHandler) CollisionRisk(c *gin.Context) {
	var in services.CollisionRiskInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	assessment, err := h.sustainability.AssessCollisionRisk(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Collision risk assessment completed successfully", assessment)
}

// GET /api/sustainability/debris-density/:altitude
func (h *SustainabilityHandler) DebrisDensity(c *gin.Context) {
	altitude, err := altitudeParam(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	density, err := h.sustainability.DebrisDensity(c.Request.Context(), altitude)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Debris density information retrieved successfully", density)
}

// POST /api/sustainability/deorbit-analysis
func (h *SustainabilityHandler) DeorbitAnalysis(c *gin.Context) {
	var in services.DeorbitInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	analysis, err := h.sustainability.AnalyzeDeorbit(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Deorbit analysis completed successfully", analysis)
}

// GET /api/sustainability/active-satellites
func (h *SustainabilityHandler) ActiveSatellites(c *gin.Context) {
	sats, err := h.sustainability.ActiveSatellites(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Active satellites retrieved successfully", sats)
}
