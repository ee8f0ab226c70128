package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/response"
)

// CampaignHandler handles campaign analytics endpoints
type CampaignHandler struct {
	campaignService service.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// KPIs handles GET /api/campaigns/kpis
func (h *CampaignHandler) KPIs(c *gin.Context) {
	kpis, err := h.campaignService.KPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute campaign KPIs", err))
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// Comparison handles GET /api/campaigns/comparison?metric=
func (h *CampaignHandler) Comparison(c *gin.Context) {
	comparison, err := h.campaignService.Comparison(c.Request.Context(), c.Query("metric"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownMetric) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Unknown comparison metric"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute comparison", err))
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// ROIRanking handles GET /api/campaigns/roi-ranking
func (h *CampaignHandler) ROIRanking(c *gin.Context) {
	ranking, err := h.campaignService.ROIRanking(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute ROI ranking", err))
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// campaignIDQuery parses the mandatory campaign_id query parameter
func campaignIDQuery(c *gin.Context) (int64, bool) {
	raw := c.Query("campaign_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("campaign_id is required"))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("campaign_id must be numeric"))
		return 0, false
	}
	return id, true
}

// OccupancyImpact handles GET /api/campaigns/occupancy-impact?campaign_id=
func (h *CampaignHandler) OccupancyImpact(c *gin.Context) {
	campaignID, ok := campaignIDQuery(c)
	if !ok {
		return
	}

	impact, err := h.campaignService.OccupancyImpact(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Campaign not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute occupancy impact", err))
		return
	}
	c.JSON(http.StatusOK, impact)
}

// OccupancyImpactTable handles GET /api/campaigns/occupancy-impact-table
func (h *CampaignHandler) OccupancyImpactTable(c *gin.Context) {
	table, err := h.campaignService.OccupancyImpactTable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute occupancy impact table", err))
		return
	}
	c.JSON(http.StatusOK, table)
}

// WhatIf handles GET /api/campaigns/what-if?campaign_id=&simulated_discount=
func (h *CampaignHandler) WhatIf(c *gin.Context) {
	campaignID, ok := campaignIDQuery(c)
	if !ok {
		return
	}

	discount, err := strconv.ParseFloat(c.Query("simulated_discount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("simulated_discount must be numeric"))
		return
	}

	result, err := h.campaignService.WhatIfDiscount(c.Request.Context(), campaignID, discount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, response.BadRequest("simulated_discount must be between 0 and 50"))
		case errors.Is(err, service.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Campaign not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to run what-if simulation", err))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// WhatIfRemoval handles GET /api/campaigns/what-if-removal?campaign_id=
func (h *CampaignHandler) WhatIfRemoval(c *gin.Context) {
	campaignID, ok := campaignIDQuery(c)
	if !ok {
		return
	}

	result, err := h.campaignService.WhatIfRemoval(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Campaign not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to run removal simulation", err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// ImpactMatrix handles GET /api/campaigns/impact-matrix?metric=
func (h *CampaignHandler) ImpactMatrix(c *gin.Context) {
	matrix, err := h.campaignService.ImpactMatrix(c.Request.Context(), c.Query("metric"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute impact matrix", err))
		return
	}
	c.JSON(http.StatusOK, matrix)
}
