package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/pkg/database"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "up"}
	status := http.StatusOK

	if err := h.db.Ping(c.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}
