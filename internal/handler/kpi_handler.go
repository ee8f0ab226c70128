package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/response"
)

// KPIHandler handles the dashboard's headline KPI endpoints
type KPIHandler struct {
	kpiService service.KPIService
}

// NewKPIHandler creates a new KPIHandler
func NewKPIHandler(kpiService service.KPIService) *KPIHandler {
	return &KPIHandler{kpiService: kpiService}
}

// Overview handles GET /api/kpi/overview
func (h *KPIHandler) Overview(c *gin.Context) {
	overview, err := h.kpiService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute overview", err))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// MonthlyProfit handles GET /api/kpi/monthly-profit
func (h *KPIHandler) MonthlyProfit(c *gin.Context) {
	profit, err := h.kpiService.MonthlyProfit(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute monthly profit", err))
		return
	}
	c.JSON(http.StatusOK, profit)
}

// MonthlyInsights handles GET /api/kpi/monthly-insights
func (h *KPIHandler) MonthlyInsights(c *gin.Context) {
	insights, err := h.kpiService.MonthlyInsights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute monthly insights", err))
		return
	}
	c.JSON(http.StatusOK, insights)
}

// FeaturedTours handles GET /api/kpi/featured-tours
func (h *KPIHandler) FeaturedTours(c *gin.Context) {
	featured, err := h.kpiService.FeaturedTours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute featured tours", err))
		return
	}
	c.JSON(http.StatusOK, featured)
}
