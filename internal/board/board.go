// Package board assembles the full price-aggregator dashboard: it runs the
// panel groups in their fixed narrative order against a shared vertical
// cursor and id allocator, then wraps the panel list with dashboard-wide
// metadata (datasource input, template variables, time window, refresh
// cadence, title and uid).
package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/layout"
)

const (
	// Title is the dashboard title; the generation timestamp is appended
	// so each run produces a distinguishable artifact.
	Title = "Price Aggregator Observability"
	// UIDPrefix prefixes the random token of the dashboard uid.
	UIDPrefix = "price-agg-"

	schemaVersion = 37
	refresh       = "15s"
)

// Options inject the two non-deterministic inputs of a build. Nil fields
// fall back to real time and a random token, so successive production
// runs yield distinct titles and uids; tests pass fixed values instead.
type Options struct {
	Now    func() time.Time
	NewUID func() string
}

// RandomToken returns the 8-character token used as the default uid
// suffix.
func RandomToken() string {
	return uuid.NewString()[:8]
}

// Build assembles the complete dashboard document. The document owns its
// panel and variable lists; callers serialize it once and discard it.
func Build(opts Options) grafana.Dashboard {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newUID := opts.NewUID
	if newUID == nil {
		newUID = RandomToken
	}

	ids := layout.NewIDAllocator()
	var cur layout.Cursor
	var panels []grafana.Panel
	for _, g := range groups {
		panels = append(panels, g(ids, &cur)...)
	}

	return grafana.Dashboard{
		Inputs: []grafana.Input{{
			Name:        "DS_PROMETHEUS",
			Label:       "Prometheus",
			Description: "",
			Type:        "datasource",
			PluginID:    "prometheus",
			PluginName:  "Prometheus",
		}},
		Annotations: grafana.Annotations{
			List: []grafana.Annotation{{
				BuiltIn:    1,
				Datasource: grafana.DatasourceRef{Type: "grafana", UID: "-- Grafana --"},
				Enable:     true,
				Hide:       true,
				IconColor:  "rgba(0, 211, 255, 1)",
				Name:       "Annotations & Alerts",
				Type:       "dashboard",
			}},
		},
		Editable:             true,
		FiscalYearStartMonth: 0,
		GraphTooltip:         1,
		ID:                   nil,
		Links:                []any{},
		LiveNow:              false,
		Panels:               panels,
		Refresh:              refresh,
		SchemaVersion:        schemaVersion,
		Style:                "dark",
		Tags:                 []string{"price-aggregator", "cache-health", "v3"},
		Templating:           grafana.Templating{List: templateVariables()},
		Time:                 grafana.TimeRange{From: "now-30m", To: "now"},
		Timepicker:           grafana.Timepicker{RefreshIntervals: []string{"10s", "30s", "1m", "5m"}},
		Timezone:             "browser",
		Title:                fmt.Sprintf("%s (%s)", Title, now().Format("2006-01-02 15:04:05")),
		UID:                  UIDPrefix + newUID(),
		Version:              1,
		WeekStart:            "",
	}
}
