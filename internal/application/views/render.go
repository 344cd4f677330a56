package views

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"time"

	"aqi-dashboard/internal/domain/model"
)

//go:embed templates
var viewsFS embed.FS

var dashboardTmpl *template.Template

// loadTemplatesFromFS loads dashboard templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	dashboardTmpl, err = template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded dashboard templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// LegendEntry is one row of the AQI health-level legend.
type LegendEntry struct {
	Range string
	Label string
	Color string
}

// Legend returns the AQI health-level legend in band order.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Range: "0-50", Label: "Good", Color: "#009966"},
		{Range: "51-100", Label: "Moderate", Color: "#FFDE33"},
		{Range: "101-150", Label: "Unhealthy for Sensitive Groups", Color: "#FF9933"},
		{Range: "151-200", Label: "Unhealthy", Color: "#CC0033"},
		{Range: "201-300", Label: "Very Unhealthy", Color: "#660099"},
		{Range: ">300", Label: "Hazardous", Color: "#7E0023"},
	}
}

// DashboardData is the view model for the dashboard page.
type DashboardData struct {
	Title        string
	ContextPath  string
	Snapshot     *model.DashboardSnapshot
	LastUpdated  string
	Legend       []LegendEntry
	ReadingsJSON template.JS
}

// NewDashboardData builds the dashboard view model from a snapshot.
func NewDashboardData(contextPath string, snapshot *model.DashboardSnapshot) (*DashboardData, error) {
	readingsJSON, err := json.Marshal(snapshot.Readings)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Title:        "Live India AQI Dashboard",
		ContextPath:  contextPath,
		Snapshot:     snapshot,
		LastUpdated:  snapshot.FetchedAt.Format(time.RFC1123),
		Legend:       Legend(),
		ReadingsJSON: template.JS(readingsJSON),
	}, nil
}

// RenderDashboard writes the dashboard page for the given view model.
func RenderDashboard(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "dashboard.html", data)
}
