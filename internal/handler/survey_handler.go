package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/response"
)

// SurveyHandler handles survey analytics endpoints
type SurveyHandler struct {
	surveyService service.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(surveyService service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// AgeDistribution handles GET /api/surveys/age-distribution
func (h *SurveyHandler) AgeDistribution(c *gin.Context) {
	distribution, err := h.surveyService.AgeDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute age distribution", err))
		return
	}
	c.JSON(http.StatusOK, distribution)
}

// AgeTourHeatmap handles GET /api/surveys/age-tour-heatmap
func (h *SurveyHandler) AgeTourHeatmap(c *gin.Context) {
	heatmap, err := h.surveyService.AgeTourHeatmap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute age-tour heatmap", err))
		return
	}
	c.JSON(http.StatusOK, heatmap)
}

// AgeCampaignSensitivity handles GET /api/surveys/age-campaign-sensitivity
func (h *SurveyHandler) AgeCampaignSensitivity(c *gin.Context) {
	sensitivity, err := h.surveyService.AgeCampaignSensitivity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute campaign sensitivity", err))
		return
	}
	c.JSON(http.StatusOK, sensitivity)
}

// PriorityFeatures handles GET /api/surveys/priority-features
func (h *SurveyHandler) PriorityFeatures(c *gin.Context) {
	features, err := h.surveyService.PriorityFeatures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to tally priority features", err))
		return
	}
	c.JSON(http.StatusOK, features)
}

// ActivityPreferences handles GET /api/surveys/activity-preferences
func (h *SurveyHandler) ActivityPreferences(c *gin.Context) {
	preferences, err := h.surveyService.ActivityPreferences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to tally activity preferences", err))
		return
	}
	c.JSON(http.StatusOK, preferences)
}

// CampaignImpactDistribution handles GET /api/surveys/campaign-impact-distribution
func (h *SurveyHandler) CampaignImpactDistribution(c *gin.Context) {
	distribution, err := h.surveyService.CampaignImpactDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute impact distribution", err))
		return
	}
	c.JSON(http.StatusOK, distribution)
}

// VacationFrequency handles GET /api/surveys/vacation-frequency
func (h *SurveyHandler) VacationFrequency(c *gin.Context) {
	frequency, err := h.surveyService.VacationFrequency(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute vacation frequency", err))
		return
	}
	c.JSON(http.StatusOK, frequency)
}
