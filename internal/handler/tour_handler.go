package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/response"
)

// TourHandler handles tour-level report endpoints
type TourHandler struct {
	tourService service.TourService
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tourService service.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// OccupancyAlerts handles GET /api/alerts/critical-occupancy
func (h *TourHandler) OccupancyAlerts(c *gin.Context) {
	alerts, err := h.tourService.OccupancyAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute occupancy alerts", err))
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// TypeStats handles GET /api/tours/type-stats
func (h *TourHandler) TypeStats(c *gin.Context) {
	stats, err := h.tourService.TypeStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute type stats", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PopularTypes handles GET /api/tours/popular-types
func (h *TourHandler) PopularTypes(c *gin.Context) {
	types, err := h.tourService.PopularTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute popular types", err))
		return
	}
	c.JSON(http.StatusOK, types)
}

// OccupancyByType handles GET /api/tours/occupancy-by-type
func (h *TourHandler) OccupancyByType(c *gin.Context) {
	types, err := h.tourService.OccupancyByType(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute occupancy by type", err))
		return
	}
	c.JSON(http.StatusOK, types)
}

// TypeLeaders handles GET /api/tours/type-leaders
func (h *TourHandler) TypeLeaders(c *gin.Context) {
	leaders, err := h.tourService.TypeLeaders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute type leaders", err))
		return
	}
	c.JSON(http.StatusOK, leaders)
}

// DurationInsights handles GET /api/tours/duration-insights
func (h *TourHandler) DurationInsights(c *gin.Context) {
	insights, err := h.tourService.DurationInsights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute duration insights", err))
		return
	}
	c.JSON(http.StatusOK, insights)
}

// MonthlyTrends handles GET /api/tours/monthly-trends
func (h *TourHandler) MonthlyTrends(c *gin.Context) {
	trends, err := h.tourService.MonthlyTrends(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute monthly trends", err))
		return
	}
	c.JSON(http.StatusOK, trends)
}

// TourDetail handles GET /api/tours/:turId
func (h *TourHandler) TourDetail(c *gin.Context) {
	tourID, err := strconv.ParseInt(c.Param("turId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Tour id must be numeric"))
		return
	}

	detail, err := h.tourService.TourDetail(c.Request.Context(), tourID)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Tour not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to load tour", err))
		return
	}
	c.JSON(http.StatusOK, detail)
}
