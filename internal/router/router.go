package router

import (
	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/config"
	"github.com/unalcansuu/kds-jolly/internal/di"
	"github.com/unalcansuu/kds-jolly/pkg/middleware"
)

// New builds the gin engine with all middleware and report routes
func New(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLog(middleware.DefaultRequestLogConfig()))
	engine.Use(middleware.Metrics())

	engine.GET("/health", c.HealthHandler.Health)

	api := engine.Group("/api")
	{
		api.POST("/login", c.AuthHandler.Login)

		kpi := api.Group("/kpi")
		{
			kpi.GET("/overview", c.KPIHandler.Overview)
			kpi.GET("/monthly-profit", c.KPIHandler.MonthlyProfit)
			kpi.GET("/monthly-insights", c.KPIHandler.MonthlyInsights)
			kpi.GET("/featured-tours", c.KPIHandler.FeaturedTours)
		}

		api.GET("/alerts/critical-occupancy", c.TourHandler.OccupancyAlerts)

		tours := api.Group("/tours")
		{
			tours.GET("/type-stats", c.TourHandler.TypeStats)
			tours.GET("/popular-types", c.TourHandler.PopularTypes)
			tours.GET("/occupancy-by-type", c.TourHandler.OccupancyByType)
			tours.GET("/type-leaders", c.TourHandler.TypeLeaders)
			tours.GET("/duration-insights", c.TourHandler.DurationInsights)
			tours.GET("/monthly-trends", c.TourHandler.MonthlyTrends)
			tours.GET("/:turId", c.TourHandler.TourDetail)
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("/kpis", c.CampaignHandler.KPIs)
			campaigns.GET("/comparison", c.CampaignHandler.Comparison)
			campaigns.GET("/roi-ranking", c.CampaignHandler.ROIRanking)
			campaigns.GET("/occupancy-impact", c.CampaignHandler.OccupancyImpact)
			campaigns.GET("/occupancy-impact-table", c.CampaignHandler.OccupancyImpactTable)
			campaigns.GET("/what-if", c.CampaignHandler.WhatIf)
			campaigns.GET("/what-if-removal", c.CampaignHandler.WhatIfRemoval)
			campaigns.GET("/impact-matrix", c.CampaignHandler.ImpactMatrix)
		}

		surveys := api.Group("/surveys")
		{
			surveys.GET("/age-distribution", c.SurveyHandler.AgeDistribution)
			surveys.GET("/age-tour-heatmap", c.SurveyHandler.AgeTourHeatmap)
			surveys.GET("/age-campaign-sensitivity", c.SurveyHandler.AgeCampaignSensitivity)
			surveys.GET("/priority-features", c.SurveyHandler.PriorityFeatures)
			surveys.GET("/activity-preferences", c.SurveyHandler.ActivityPreferences)
			surveys.GET("/campaign-impact-distribution", c.SurveyHandler.CampaignImpactDistribution)
			surveys.GET("/vacation-frequency", c.SurveyHandler.VacationFrequency)
		}
	}

	return engine
}
