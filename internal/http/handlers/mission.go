package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/services"
)

type MissionHandler struct {
	log      *logger.Logger
	missions services.MissionService
}

func NewMissionHandler(baseLog *logger.Logger, missions services.MissionService) *MissionHandler {
	return &MissionHandler{
		log:      baseLog.With("handler", "MissionHandler"),
		missions: missions,
	}
}

// POST /api/missions/create
func (h *MissionHandler) Create(c *gin.Context) {
	var in services.CreateMissionInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	mission, err := h.missions.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, "Mission created successfully", mission)
}

// GET /api/missions/:id
func (h *MissionHandler) Get(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	mission, err := h.missions.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Mission retrieved successfully", mission)
}

// PUT /api/missions/:id/update
func (h *MissionHandler) Update(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var in services.UpdateMissionInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	mission, err := h.missions.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Mission updated successfully", mission)
}

// DELETE /api/missions/:id
func (h *MissionHandler) Delete(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.missions.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	h.log.Info("mission deleted", "mission_id", id)
	response.RespondOK(c, "Mission deleted successfully", nil)
}

// POST /api/missions/:id/simulate
func (h *MissionHandler) Simulate(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	sim, err := h.missions.Simulate(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Mission simulation completed successfully", sim)
}

// GET /api/missions/:id/report
func (h *MissionHandler) Report(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	report, err := h.missions.Report(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Mission report generated successfully", report)
}

// POST /api/missions/:id/optimize
func (h *MissionHandler) Optimize(c *gin.Context) {
	id, err := missionID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	opt, err := h.missions.Optimize(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Mission optimization completed successfully", opt)
}
