package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/services"
)

type CostHandler struct {
	log   *logger.Logger
	costs services.CostService
}

func NewCostHandler(baseLog *logger.Logger, costs services.CostService) *CostHandler {
	return &CostHandler{
		log:   baseLog.With("handler", "CostHandler"),
		costs: costs,
	}
}

// POST /api/calculator/estimate
func (h *CostHandler) Estimate(c *gin.Context) {
	var in services.CostEstimateInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	est, err := h.costs.Estimate(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Cost estimate generated successfully", est)
}

// GET /api/calculator/components
func (h *CostHandler) Components(c *gin.Context) {
	components, err := h.costs.Components(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Cost components retrieved successfully", components)
}

// POST /api/calculator/insurance-quote
func (h *CostHandler) InsuranceQuote(c *gin.Context) {
	var in services.InsuranceQuoteInput
	if err := bind(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	quote, err := h.costs.QuoteInsurance(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, "Insurance quote generated successfully", quote)
}
