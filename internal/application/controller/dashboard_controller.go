package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aqi-dashboard/internal/application/views"
	"aqi-dashboard/internal/domain/usecase/airquality"
)

type DashboardController struct {
	api         *echo.Group
	contextPath string
	useCase     airquality.UseCase
}

func NewDashboardController(api *echo.Group, contextPath string, useCase airquality.UseCase) *DashboardController {
	return &DashboardController{api: api, contextPath: contextPath, useCase: useCase}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("", controller.Dashboard)
	controller.api.GET("/", controller.Dashboard)
	controller.api.GET("/readings", controller.GetReadings)
	controller.api.POST("/refresh", controller.Refresh)
}

// Dashboard renders the HTML dashboard: the sortable city grid and the map
// with severity-colored markers. Serves the cached table while fresh.
func (controller *DashboardController) Dashboard(c echo.Context) error {
	snapshot, err := controller.useCase.GetDashboard(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	data, err := views.NewDashboardData(controller.contextPath, snapshot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return views.RenderDashboard(c.Response(), data)
}

// GetReadings returns the current reading table as JSON. Passing ?refresh=true
// bypasses the freshness window.
func (controller *DashboardController) GetReadings(c echo.Context) error {
	forceRefresh := c.QueryParam("refresh") == "true"

	snapshot, err := controller.useCase.GetDashboard(c.Request().Context(), forceRefresh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snapshot)
}

// Refresh triggers a manual refresh pass and sends the browser back to the
// dashboard page.
func (controller *DashboardController) Refresh(c echo.Context) error {
	if _, err := controller.useCase.GetDashboard(c.Request().Context(), true); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Redirect(http.StatusSeeOther, controller.contextPath)
}
