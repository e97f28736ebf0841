// Package grafana models the subset of the Grafana dashboard JSON schema
// the generator emits: panels, targets, field configs, template variables,
// and the dashboard root. Field order in each struct matches the key order
// Grafana exports, so serialized output stays stable and diffable.
package grafana

// DatasourceRef identifies a datasource by plugin type and UID.
type DatasourceRef struct {
	Type string `json:"type"`
	UID  string `json:"uid"`
}

// Prometheus is the datasource placeholder resolved by Grafana at import
// time via the __inputs declaration.
var Prometheus = DatasourceRef{Type: "prometheus", UID: "${DS_PROMETHEUS}"}

// GridPos locates a panel on the fixed 24-column layout grid.
type GridPos struct {
	H int `json:"h"`
	W int `json:"w"`
	X int `json:"x"`
	Y int `json:"y"`
}

// Target is one query bound to a panel.
type Target struct {
	Datasource   DatasourceRef `json:"datasource"`
	Expr         string        `json:"expr"`
	Format       string        `json:"format,omitempty"`
	Instant      bool          `json:"instant,omitempty"`
	Interval     string        `json:"interval"`
	LegendFormat string        `json:"legendFormat"`
	RefID        string        `json:"refId"`
}

// ThresholdStep is one (color, lower bound) pair. A nil Value marshals as
// JSON null, which Grafana reads as the unbounded base step.
type ThresholdStep struct {
	Color string   `json:"color"`
	Value *float64 `json:"value"`
}

// Step builds a threshold step with an explicit lower bound.
func Step(color string, value float64) ThresholdStep {
	return ThresholdStep{Color: color, Value: &value}
}

// BaseStep builds the unbounded first step of a threshold list.
func BaseStep(color string) ThresholdStep {
	return ThresholdStep{Color: color}
}

// Thresholds is a value-based coloring policy.
type Thresholds struct {
	Mode  string          `json:"mode"`
	Steps []ThresholdStep `json:"steps"`
}

// FieldColor selects the color scheme for series.
type FieldColor struct {
	Mode string `json:"mode"`
}

// FieldDefaults holds display configuration applied to every field of a
// panel unless overridden. Custom carries the per-archetype custom block
// (*TimeseriesCustom or *TableCustom).
type FieldDefaults struct {
	Color      *FieldColor `json:"color,omitempty"`
	Custom     any         `json:"custom,omitempty"`
	Mappings   []any       `json:"mappings"`
	Thresholds *Thresholds `json:"thresholds,omitempty"`
	Unit       string      `json:"unit,omitempty"`
}

// FieldConfig pairs defaults with per-field overrides.
type FieldConfig struct {
	Defaults  FieldDefaults `json:"defaults"`
	Overrides []Override    `json:"overrides"`
}

// Override attaches properties to fields selected by a matcher, e.g.
// threshold coloring for a single named table column.
type Override struct {
	Matcher    Matcher            `json:"matcher"`
	Properties []OverrideProperty `json:"properties"`
}

// Matcher selects the fields an override applies to.
type Matcher struct {
	ID      string `json:"id"`
	Options string `json:"options"`
}

// OverrideProperty is one property set by an override.
type OverrideProperty struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// CellOptions configures table cell rendering, e.g. color-background.
type CellOptions struct {
	Type string `json:"type"`
}

// HideFrom toggles where a series is hidden.
type HideFrom struct {
	Legend  bool `json:"legend"`
	Tooltip bool `json:"tooltip"`
	Viz     bool `json:"viz"`
}

// ScaleDistribution selects the axis scale.
type ScaleDistribution struct {
	Type string `json:"type"`
}

// Stacking configures series stacking for timeseries panels.
type Stacking struct {
	Group string `json:"group,omitempty"`
	Mode  string `json:"mode"`
}

// ThresholdsStyle selects how thresholds are drawn on a timeseries.
type ThresholdsStyle struct {
	Mode string `json:"mode"`
}

// TimeseriesCustom is the custom field block of a timeseries panel.
type TimeseriesCustom struct {
	AxisCenteredZero  bool              `json:"axisCenteredZero"`
	AxisPlacement     string            `json:"axisPlacement"`
	BarAlignment      int               `json:"barAlignment"`
	DrawStyle         string            `json:"drawStyle"`
	FillOpacity       int               `json:"fillOpacity"`
	GradientMode      string            `json:"gradientMode"`
	HideFrom          HideFrom          `json:"hideFrom"`
	LineInterpolation string            `json:"lineInterpolation"`
	LineWidth         int               `json:"lineWidth"`
	PointSize         int               `json:"pointSize"`
	ScaleDistribution ScaleDistribution `json:"scaleDistribution"`
	ShowPoints        string            `json:"showPoints"`
	SpanNulls         bool              `json:"spanNulls"`
	Stacking          Stacking          `json:"stacking"`
	ThresholdsStyle   ThresholdsStyle   `json:"thresholdsStyle"`
}

// TableCustom is the custom field block of a table panel.
type TableCustom struct {
	Align       string `json:"align"`
	DisplayMode string `json:"displayMode"`
}

// ReduceOptions selects how a stat panel reduces a series to one value.
type ReduceOptions struct {
	Calcs  []string `json:"calcs"`
	Fields string   `json:"fields"`
	Values bool     `json:"values"`
}

// StatOptions is the options block of a stat panel.
type StatOptions struct {
	ColorMode     string        `json:"colorMode"`
	GraphMode     string        `json:"graphMode"`
	JustifyMode   string        `json:"justifyMode"`
	Orientation   string        `json:"orientation"`
	ReduceOptions ReduceOptions `json:"reduceOptions"`
	TextMode      string        `json:"textMode"`
}

// LegendOptions configures the timeseries legend.
type LegendOptions struct {
	Calcs       []string `json:"calcs"`
	DisplayMode string   `json:"displayMode"`
	Placement   string   `json:"placement"`
}

// TooltipOptions configures the timeseries tooltip.
type TooltipOptions struct {
	Mode string `json:"mode"`
	Sort string `json:"sort"`
}

// TimeseriesOptions is the options block of a timeseries panel.
type TimeseriesOptions struct {
	Legend  LegendOptions  `json:"legend"`
	Tooltip TooltipOptions `json:"tooltip"`
}

// TableFooter configures the optional table footer row.
type TableFooter struct {
	Enable  bool     `json:"enable"`
	Fields  string   `json:"fields"`
	Reducer []string `json:"reducer"`
}

// TableOptions is the options block of a table panel.
type TableOptions struct {
	Footer     TableFooter `json:"footer"`
	ShowHeader bool        `json:"showHeader"`
}

// Transformation is one declarative post-processing step applied to query
// results before display.
type Transformation struct {
	ID      string `json:"id"`
	Options any    `json:"options"`
}

// OrganizeOptions is the options block of the "organize" transformation:
// column exclusion and renaming.
type OrganizeOptions struct {
	ExcludeByName map[string]bool   `json:"excludeByName"`
	RenameByName  map[string]string `json:"renameByName"`
}

// Panel is one visualization tile. Archetype-specific fields are pointers
// or omitempty so each panel type serializes only the keys Grafana expects
// for it: rows carry Collapsed and Panels, data panels carry Datasource,
// FieldConfig, Options and Targets.
type Panel struct {
	Collapsed       *bool            `json:"collapsed,omitempty"`
	Datasource      *DatasourceRef   `json:"datasource,omitempty"`
	FieldConfig     *FieldConfig     `json:"fieldConfig,omitempty"`
	GridPos         GridPos          `json:"gridPos"`
	ID              int              `json:"id"`
	Options         any              `json:"options,omitempty"`
	Panels          *[]Panel         `json:"panels,omitempty"`
	PluginVersion   string           `json:"pluginVersion,omitempty"`
	Targets         []Target         `json:"targets,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Transformations []Transformation `json:"transformations,omitempty"`
	Type            string           `json:"type"`
}

// Input declares an import-time input the host must bind, here always the
// Prometheus datasource.
type Input struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
	PluginID    string `json:"pluginId"`
	PluginName  string `json:"pluginName"`
}

// Annotation is one entry of the dashboard annotations list.
type Annotation struct {
	BuiltIn    int           `json:"builtIn"`
	Datasource DatasourceRef `json:"datasource"`
	Enable     bool          `json:"enable"`
	Hide       bool          `json:"hide"`
	IconColor  string        `json:"iconColor"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
}

// Annotations wraps the dashboard annotations list.
type Annotations struct {
	List []Annotation `json:"list"`
}

// CurrentSelection is the value a template variable starts with.
type CurrentSelection struct {
	Selected bool   `json:"selected"`
	Text     string `json:"text"`
	Value    string `json:"value"`
}

// VariableQuery is the backend query of a query-type template variable.
type VariableQuery struct {
	Query string `json:"query"`
	RefID string `json:"refId"`
}

// TemplateVar is a dashboard-scoped substitution variable resolved by the
// host against backend label values at render time.
type TemplateVar struct {
	Current     CurrentSelection `json:"current"`
	Datasource  DatasourceRef    `json:"datasource"`
	Definition  string           `json:"definition"`
	Hide        int              `json:"hide"`
	IncludeAll  bool             `json:"includeAll"`
	Multi       bool             `json:"multi"`
	Name        string           `json:"name"`
	Query       VariableQuery    `json:"query"`
	Refresh     int              `json:"refresh"`
	Regex       string           `json:"regex"`
	SkipURLSync bool             `json:"skipUrlSync"`
	Sort        int              `json:"sort"`
	Type        string           `json:"type"`
}

// Templating wraps the template variable list.
type Templating struct {
	List []TemplateVar `json:"list"`
}

// TimeRange is the default dashboard time window.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Timepicker configures the refresh interval choices.
type Timepicker struct {
	RefreshIntervals []string `json:"refresh_intervals"`
}

// Dashboard is the root document.
type Dashboard struct {
	Inputs               []Input     `json:"__inputs"`
	Annotations          Annotations `json:"annotations"`
	Editable             bool        `json:"editable"`
	FiscalYearStartMonth int         `json:"fiscalYearStartMonth"`
	GraphTooltip         int         `json:"graphTooltip"`
	ID                   *int        `json:"id"`
	Links                []any       `json:"links"`
	LiveNow              bool        `json:"liveNow"`
	Panels               []Panel     `json:"panels"`
	Refresh              string      `json:"refresh"`
	SchemaVersion        int         `json:"schemaVersion"`
	Style                string      `json:"style"`
	Tags                 []string    `json:"tags"`
	Templating           Templating  `json:"templating"`
	Time                 TimeRange   `json:"time"`
	Timepicker           Timepicker  `json:"timepicker"`
	Timezone             string      `json:"timezone"`
	Title                string      `json:"title"`
	UID                  string      `json:"uid"`
	Version              int         `json:"version"`
	WeekStart            string      `json:"weekStart"`
}
