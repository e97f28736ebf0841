// Package panel provides builder functions for the four panel archetypes
// the dashboard is composed of: section rows, single-value stats,
// timeseries charts, and tables. Each builder returns a fully-formed panel
// with documented defaults; optional parameters are expressed as Options
// applied on top.
//
// Builders do not validate their inputs. Malformed expressions, negative
// dimensions or out-of-grid coordinates are passed through as-is; keeping
// placement consistent is the caller's job.
package panel

import (
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
)

// GridWidth is the full width of the Grafana layout grid.
const GridWidth = 24

// Target describes one query to bind to a timeseries or table panel.
// Legend, Interval and Instant are optional.
type Target struct {
	Expr     string
	Legend   string
	Interval string
	Instant  bool
}

// Option mutates a built panel. Options that address a block the panel
// archetype does not have are silent no-ops.
type Option func(*grafana.Panel)

// Size overrides the default width and height.
func Size(w, h int) Option {
	return func(p *grafana.Panel) {
		p.GridPos.W = w
		p.GridPos.H = h
	}
}

// Width overrides the default width.
func Width(w int) Option {
	return func(p *grafana.Panel) { p.GridPos.W = w }
}

// Height overrides the default height.
func Height(h int) Option {
	return func(p *grafana.Panel) { p.GridPos.H = h }
}

// Unit overrides the default display unit.
func Unit(unit string) Option {
	return func(p *grafana.Panel) { p.FieldConfig.Defaults.Unit = unit }
}

// Description attaches free-text help shown on the panel's info icon.
func Description(text string) Option {
	return func(p *grafana.Panel) { p.Description = text }
}

// Thresholds replaces the default threshold steps.
func Thresholds(steps ...grafana.ThresholdStep) Option {
	return func(p *grafana.Panel) { p.FieldConfig.Defaults.Thresholds.Steps = steps }
}

// Stacked sets the stacking mode of a timeseries panel ("normal",
// "percent").
func Stacked(mode string) Option {
	return func(p *grafana.Panel) {
		if c, ok := p.FieldConfig.Defaults.Custom.(*grafana.TimeseriesCustom); ok {
			c.Stacking = grafana.Stacking{Mode: mode}
		}
	}
}

// ColorScheme overrides the series color scheme of a timeseries panel.
func ColorScheme(mode string) Option {
	return func(p *grafana.Panel) { p.FieldConfig.Defaults.Color = &grafana.FieldColor{Mode: mode} }
}

// Rename renames table columns for display.
func Rename(columns map[string]string) Option {
	return func(p *grafana.Panel) {
		if o, ok := organize(p); ok {
			o.RenameByName = columns
		}
	}
}

// ExcludeColumns hides the named table columns in addition to the Time
// column, which is always hidden.
func ExcludeColumns(columns ...string) Option {
	return func(p *grafana.Panel) {
		if o, ok := organize(p); ok {
			for _, col := range columns {
				o.ExcludeByName[col] = true
			}
		}
	}
}

// Overrides attaches conditional field styling, e.g. color-by-threshold
// for a named table column.
func Overrides(overrides ...grafana.Override) Option {
	return func(p *grafana.Panel) { p.FieldConfig.Overrides = overrides }
}

func organize(p *grafana.Panel) (*grafana.OrganizeOptions, bool) {
	for _, t := range p.Transformations {
		if t.ID == "organize" {
			if o, ok := t.Options.(*grafana.OrganizeOptions); ok {
				return o, true
			}
		}
	}
	return nil, false
}

// Row builds a full-width section header at vertical offset y. Rows take
// one grid unit of height and carry no queries.
func Row(id int, title string, y int) grafana.Panel {
	collapsed := false
	sub := []grafana.Panel{}
	return grafana.Panel{
		Collapsed: &collapsed,
		GridPos:   grafana.GridPos{H: 1, W: GridWidth, X: 0, Y: y},
		ID:        id,
		Panels:    &sub,
		Title:     title,
		Type:      "row",
	}
}

// Stat builds a single-value panel with one instant query. Defaults:
// 6x4 cells, green base step with red above 1.
func Stat(id int, title, expr, unit string, x, y int, opts ...Option) grafana.Panel {
	p := grafana.Panel{
		Datasource: &grafana.Prometheus,
		FieldConfig: &grafana.FieldConfig{
			Defaults: grafana.FieldDefaults{
				Mappings: []any{},
				Thresholds: &grafana.Thresholds{
					Mode: "absolute",
					Steps: []grafana.ThresholdStep{
						grafana.BaseStep("green"),
						grafana.Step("red", 1),
					},
				},
				Unit: unit,
			},
			Overrides: []grafana.Override{},
		},
		GridPos: grafana.GridPos{H: 4, W: 6, X: x, Y: y},
		ID:      id,
		Options: grafana.StatOptions{
			ColorMode:   "value",
			GraphMode:   "none",
			JustifyMode: "center",
			Orientation: "horizontal",
			ReduceOptions: grafana.ReduceOptions{
				Calcs:  []string{"lastNotNull"},
				Fields: "",
				Values: false,
			},
			TextMode: "auto",
		},
		Targets: []grafana.Target{{
			Datasource:   grafana.Prometheus,
			Expr:         expr,
			Instant:      true,
			Interval:     "",
			LegendFormat: "",
			RefID:        "A",
		}},
		Title: title,
		Type:  "stat",
	}
	apply(&p, opts)
	return p
}

// Timeseries builds a chart panel. The Nth target receives reference
// label A, B, C... by list position. Defaults: 12x7 cells, unit "short",
// unstacked lines on the classic palette.
func Timeseries(id int, title string, targets []Target, x, y int, opts ...Option) grafana.Panel {
	bound := make([]grafana.Target, 0, len(targets))
	for i, t := range targets {
		bound = append(bound, grafana.Target{
			Datasource:   grafana.Prometheus,
			Expr:         t.Expr,
			Instant:      t.Instant,
			Interval:     t.Interval,
			LegendFormat: t.Legend,
			RefID:        refID(i),
		})
	}

	p := grafana.Panel{
		Datasource: &grafana.Prometheus,
		FieldConfig: &grafana.FieldConfig{
			Defaults: grafana.FieldDefaults{
				Color: &grafana.FieldColor{Mode: "palette-classic"},
				Custom: &grafana.TimeseriesCustom{
					AxisCenteredZero:  false,
					AxisPlacement:     "auto",
					BarAlignment:      0,
					DrawStyle:         "line",
					FillOpacity:       10,
					GradientMode:      "none",
					HideFrom:          grafana.HideFrom{},
					LineInterpolation: "linear",
					LineWidth:         2,
					PointSize:         4,
					ScaleDistribution: grafana.ScaleDistribution{Type: "linear"},
					ShowPoints:        "auto",
					SpanNulls:         false,
					Stacking:          grafana.Stacking{Group: "A", Mode: "none"},
					ThresholdsStyle:   grafana.ThresholdsStyle{Mode: "off"},
				},
				Mappings: []any{},
				Thresholds: &grafana.Thresholds{
					Mode: "absolute",
					Steps: []grafana.ThresholdStep{
						grafana.BaseStep("green"),
						grafana.BaseStep("red"),
					},
				},
				Unit: "short",
			},
			Overrides: []grafana.Override{},
		},
		GridPos: grafana.GridPos{H: 7, W: 12, X: x, Y: y},
		ID:      id,
		Options: grafana.TimeseriesOptions{
			Legend: grafana.LegendOptions{
				Calcs:       []string{},
				DisplayMode: "list",
				Placement:   "bottom",
			},
			Tooltip: grafana.TooltipOptions{Mode: "multi", Sort: "desc"},
		},
		Targets: bound,
		Title:   title,
		Type:    "timeseries",
	}
	apply(&p, opts)
	return p
}

// Table builds a full-width tabular panel. Every target runs as an
// instant table-formatted query; results pass through a fixed two-stage
// transform: merge all queries into one table, then hide the Time column
// (plus any ExcludeColumns) and apply Rename.
func Table(id int, title string, targets []Target, x, y int, opts ...Option) grafana.Panel {
	bound := make([]grafana.Target, 0, len(targets))
	for i, t := range targets {
		bound = append(bound, grafana.Target{
			Datasource:   grafana.Prometheus,
			Expr:         t.Expr,
			Format:       "table",
			Instant:      true,
			Interval:     "",
			LegendFormat: "",
			RefID:        refID(i),
		})
	}

	p := grafana.Panel{
		Datasource: &grafana.Prometheus,
		FieldConfig: &grafana.FieldConfig{
			Defaults: grafana.FieldDefaults{
				Custom:   &grafana.TableCustom{Align: "auto", DisplayMode: "auto"},
				Mappings: []any{},
				Thresholds: &grafana.Thresholds{
					Mode:  "absolute",
					Steps: []grafana.ThresholdStep{grafana.BaseStep("green")},
				},
			},
			Overrides: []grafana.Override{},
		},
		GridPos: grafana.GridPos{H: 8, W: GridWidth, X: x, Y: y},
		ID:      id,
		Options: grafana.TableOptions{
			Footer:     grafana.TableFooter{Enable: false, Fields: "", Reducer: []string{"sum"}},
			ShowHeader: true,
		},
		PluginVersion: "10.0.0",
		Targets:       bound,
		Title:         title,
		Transformations: []grafana.Transformation{
			{ID: "merge", Options: struct{}{}},
			{ID: "organize", Options: &grafana.OrganizeOptions{
				ExcludeByName: map[string]bool{"Time": true},
				RenameByName:  map[string]string{},
			}},
		},
		Type: "table",
	}
	apply(&p, opts)
	return p
}

func apply(p *grafana.Panel, opts []Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// refID maps a target list position to its reference label: 0 -> A,
// 1 -> B, and so on.
func refID(i int) string {
	return string(rune('A' + i))
}
