package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-dashboard/internal/application/views"
	"aqi-dashboard/internal/domain/entity"
	"aqi-dashboard/internal/domain/model"
)

type fakeUseCase struct {
	snapshot     *model.DashboardSnapshot
	err          error
	lastForce    bool
	getCalls     int
	refreshCalls int
}

func (f *fakeUseCase) GetDashboard(ctx context.Context, forceRefresh bool) (*model.DashboardSnapshot, error) {
	f.getCalls++
	f.lastForce = forceRefresh
	return f.snapshot, f.err
}

func (f *fakeUseCase) RefreshDashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	f.refreshCalls++
	return f.snapshot, f.err
}

func (f *fakeUseCase) Cities() []entity.City {
	return entity.Cities()
}

func testSnapshot() *model.DashboardSnapshot {
	fetchedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	return &model.DashboardSnapshot{
		Readings: []entity.CityReading{
			{
				City:      "Delhi",
				AQI:       250,
				Bucket:    entity.BucketVeryUnhealthy,
				Color:     "#660099",
				Available: true,
			},
			entity.SentinelReading(entity.City{Name: "Mumbai", Slug: "mumbai"}, fetchedAt.Format(time.RFC3339), "network error"),
		},
		FetchedAt: fetchedAt,
	}
}

func newDashboardTestServer(t *testing.T, useCase *fakeUseCase) (*echo.Echo, *DashboardController) {
	t.Helper()
	require.NoError(t, views.LoadTemplates())

	e := echo.New()
	api := e.Group("/aqi")
	controller := NewDashboardController(api, "/aqi", useCase)
	controller.InitDashboardRoutes()
	return e, controller
}

func TestDashboardRendersHTML(t *testing.T) {
	useCase := &fakeUseCase{snapshot: testSnapshot()}
	e, _ := newDashboardTestServer(t, useCase)

	req := httptest.NewRequest(http.MethodGet, "/aqi", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Live India AQI Dashboard")
	assert.Contains(t, body, "Delhi")
	assert.Contains(t, body, "Mumbai")
	assert.Contains(t, body, "Hazardous")
	assert.False(t, useCase.lastForce)
}

func TestGetReadingsReturnsJSON(t *testing.T) {
	useCase := &fakeUseCase{snapshot: testSnapshot()}
	e, _ := newDashboardTestServer(t, useCase)

	req := httptest.NewRequest(http.MethodGet, "/aqi/readings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, useCase.lastForce)

	var snapshot model.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Readings, 2)
	assert.Equal(t, "Delhi", snapshot.Readings[0].City)
	assert.Equal(t, 250, snapshot.Readings[0].AQI)
	assert.False(t, snapshot.Readings[1].Available)
}

func TestGetReadingsForcesRefreshWithQueryParam(t *testing.T) {
	useCase := &fakeUseCase{snapshot: testSnapshot()}
	e, _ := newDashboardTestServer(t, useCase)

	req := httptest.NewRequest(http.MethodGet, "/aqi/readings?refresh=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, useCase.lastForce)
}

func TestRefreshForcesAndRedirects(t *testing.T) {
	useCase := &fakeUseCase{snapshot: testSnapshot()}
	e, _ := newDashboardTestServer(t, useCase)

	req := httptest.NewRequest(http.MethodPost, "/aqi/refresh", strings.NewReader(""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/aqi", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, useCase.lastForce)
	assert.Equal(t, 1, useCase.getCalls)
}

func TestDashboardReportsUseCaseFailure(t *testing.T) {
	useCase := &fakeUseCase{err: assert.AnError}
	e, _ := newDashboardTestServer(t, useCase)

	req := httptest.NewRequest(http.MethodGet, "/aqi", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}
