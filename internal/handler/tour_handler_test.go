package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/service"
)

type stubTourService struct {
	detail *dto.TourDetailResponse
	alerts *dto.OccupancyAlertsResponse
	err    error
}

func (s *stubTourService) OccupancyAlerts(ctx context.Context) (*dto.OccupancyAlertsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.alerts, nil
}

func (s *stubTourService) TypeStats(ctx context.Context) ([]dto.TourTypeStat, error) {
	return []dto.TourTypeStat{}, s.err
}

func (s *stubTourService) PopularTypes(ctx context.Context) (*dto.PopularTypesResponse, error) {
	return &dto.PopularTypesResponse{}, s.err
}

func (s *stubTourService) OccupancyByType(ctx context.Context) (*dto.OccupancyByTypeResponse, error) {
	return &dto.OccupancyByTypeResponse{}, s.err
}

func (s *stubTourService) TypeLeaders(ctx context.Context) (*dto.TypeLeadersResponse, error) {
	return &dto.TypeLeadersResponse{}, s.err
}

func (s *stubTourService) DurationInsights(ctx context.Context) (*dto.DurationInsightsResponse, error) {
	return &dto.DurationInsightsResponse{}, s.err
}

func (s *stubTourService) MonthlyTrends(ctx context.Context) (*dto.MonthlyTrendsResponse, error) {
	return &dto.MonthlyTrendsResponse{}, s.err
}

func (s *stubTourService) TourDetail(ctx context.Context, tourID int64) (*dto.TourDetailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func setupTourRouter(svc service.TourService) *gin.Engine {
	h := NewTourHandler(svc)
	router := gin.New()
	router.GET("/api/alerts/critical-occupancy", h.OccupancyAlerts)
	router.GET("/api/tours/type-stats", h.TypeStats)
	router.GET("/api/tours/:turId", h.TourDetail)
	return router
}

func TestTourHandler_TourDetail(t *testing.T) {
	router := setupTourRouter(&stubTourService{
		detail: &dto.TourDetailResponse{TourID: 5, TourName: "Kapadokya Turu", ComputedOccupancy: 25},
	})

	w := get(router, "/api/tours/5")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Kapadokya Turu", resp["tourName"])
	assert.Equal(t, float64(25), resp["computedOccupancy"])
}

func TestTourHandler_TourDetail_NotFound(t *testing.T) {
	router := setupTourRouter(&stubTourService{err: service.ErrTourNotFound})

	w := get(router, "/api/tours/99")

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Not found", resp["error"])
}

func TestTourHandler_TourDetail_NonNumericID(t *testing.T) {
	router := setupTourRouter(&stubTourService{})

	w := get(router, "/api/tours/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTourHandler_OccupancyAlerts_ErrorShape(t *testing.T) {
	router := setupTourRouter(&stubTourService{err: assert.AnError})

	w := get(router, "/api/alerts/critical-occupancy")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestTourHandler_StaticRouteWinsOverParam(t *testing.T) {
	router := setupTourRouter(&stubTourService{})

	// /api/tours/type-stats must hit the static route, not :turId
	w := get(router, "/api/tours/type-stats")
	assert.Equal(t, http.StatusOK, w.Code)
}
