package di

import (
	"github.com/unalcansuu/kds-jolly/internal/config"
	"github.com/unalcansuu/kds-jolly/internal/handler"
	"github.com/unalcansuu/kds-jolly/internal/repository"
	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/database"
)

// Container holds all dependencies of the reporting API
type Container struct {
	// Infrastructure
	DB *database.PostgresDB

	// Repositories
	KPIRepo      repository.KPIRepository
	TourRepo     repository.TourRepository
	CampaignRepo repository.CampaignRepository
	SurveyRepo   repository.SurveyRepository

	// Services
	AuthService     service.AuthService
	KPIService      service.KPIService
	TourService     service.TourService
	CampaignService service.CampaignService
	SurveyService   service.SurveyService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	KPIHandler      *handler.KPIHandler
	TourHandler     *handler.TourHandler
	CampaignHandler *handler.CampaignHandler
	SurveyHandler   *handler.SurveyHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, db *database.PostgresDB) *Container {
	c := &Container{DB: db}

	// Initialize repositories
	pool := db.Pool()
	c.KPIRepo = repository.NewPostgresKPIRepository(pool)
	c.TourRepo = repository.NewPostgresTourRepository(pool)
	c.CampaignRepo = repository.NewPostgresCampaignRepository(pool)
	c.SurveyRepo = repository.NewPostgresSurveyRepository(pool)

	// Initialize services
	c.AuthService = service.NewAuthService(cfg.Auth)
	c.KPIService = service.NewKPIService(c.KPIRepo)
	c.TourService = service.NewTourService(c.TourRepo)
	c.CampaignService = service.NewCampaignService(c.CampaignRepo)
	c.SurveyService = service.NewSurveyService(c.SurveyRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.KPIHandler = handler.NewKPIHandler(c.KPIService)
	c.TourHandler = handler.NewTourHandler(c.TourService)
	c.CampaignHandler = handler.NewCampaignHandler(c.CampaignService)
	c.SurveyHandler = handler.NewSurveyHandler(c.SurveyService)

	return c
}
