package panel

import (
	"testing"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
)

func TestRow(t *testing.T) {
	p := Row(1, "Overview", 13)

	if p.Type != "row" {
		t.Errorf("Type: expected %q, got %q", "row", p.Type)
	}
	if p.GridPos.H != 1 || p.GridPos.W != GridWidth || p.GridPos.X != 0 || p.GridPos.Y != 13 {
		t.Errorf("GridPos: expected 1x24 at (0,13), got %+v", p.GridPos)
	}
	if p.Collapsed == nil || *p.Collapsed {
		t.Errorf("Collapsed: expected false, got %v", p.Collapsed)
	}
	if p.Panels == nil || len(*p.Panels) != 0 {
		t.Errorf("Panels: expected empty sub-panel list, got %v", p.Panels)
	}
	if len(p.Targets) != 0 {
		t.Errorf("Targets: rows must carry no queries, got %d", len(p.Targets))
	}
}

func TestStat_Defaults(t *testing.T) {
	p := Stat(2, "Uptime", "up", "percentunit", 0, 1)

	if p.Type != "stat" {
		t.Fatalf("Type: expected %q, got %q", "stat", p.Type)
	}
	if p.GridPos.W != 6 || p.GridPos.H != 4 {
		t.Errorf("GridPos: expected default 6x4, got %dx%d", p.GridPos.W, p.GridPos.H)
	}
	if len(p.Targets) != 1 {
		t.Fatalf("Targets: expected exactly one query binding, got %d", len(p.Targets))
	}
	tgt := p.Targets[0]
	if tgt.RefID != "A" {
		t.Errorf("RefID: expected A, got %q", tgt.RefID)
	}
	if !tgt.Instant {
		t.Error("Instant: stat queries must run in instant mode")
	}
	if tgt.Expr != "up" {
		t.Errorf("Expr: expected %q, got %q", "up", tgt.Expr)
	}
	if p.FieldConfig.Defaults.Unit != "percentunit" {
		t.Errorf("Unit: expected percentunit, got %q", p.FieldConfig.Defaults.Unit)
	}

	steps := p.FieldConfig.Defaults.Thresholds.Steps
	if len(steps) != 2 {
		t.Fatalf("Thresholds: expected 2 default steps, got %d", len(steps))
	}
	if steps[0].Color != "green" || steps[0].Value != nil {
		t.Errorf("step 0: expected unbounded green, got %q/%v", steps[0].Color, steps[0].Value)
	}
	if steps[1].Color != "red" || steps[1].Value == nil || *steps[1].Value != 1 {
		t.Errorf("step 1: expected red at 1, got %q/%v", steps[1].Color, steps[1].Value)
	}
}

func TestStat_Options(t *testing.T) {
	p := Stat(3, "Hit Ratio", "ratio", "percentunit", 6, 1,
		Thresholds(grafana.BaseStep("red"), grafana.Step("orange", 0.8), grafana.Step("green", 0.95)),
		Description("hit ratio"),
		Size(8, 5),
	)

	steps := p.FieldConfig.Defaults.Thresholds.Steps
	if len(steps) != 3 {
		t.Fatalf("Thresholds: expected 3 steps, got %d", len(steps))
	}
	if steps[1].Color != "orange" || *steps[1].Value != 0.8 {
		t.Errorf("step 1: expected orange at 0.8, got %q/%v", steps[1].Color, steps[1].Value)
	}
	if p.Description != "hit ratio" {
		t.Errorf("Description: got %q", p.Description)
	}
	if p.GridPos.W != 8 || p.GridPos.H != 5 {
		t.Errorf("GridPos: expected 8x5, got %dx%d", p.GridPos.W, p.GridPos.H)
	}
}

func TestTimeseries_RefIDsFollowTargetOrder(t *testing.T) {
	tests := []struct {
		name    string
		targets []Target
		want    []string
	}{
		{
			name:    "single target",
			targets: []Target{{Expr: "a"}},
			want:    []string{"A"},
		},
		{
			name:    "two targets",
			targets: []Target{{Expr: "a"}, {Expr: "b"}},
			want:    []string{"A", "B"},
		},
		{
			name:    "four targets",
			targets: []Target{{Expr: "a"}, {Expr: "b"}, {Expr: "c"}, {Expr: "d"}},
			want:    []string{"A", "B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Timeseries(1, "t", tt.targets, 0, 0)
			if len(p.Targets) != len(tt.want) {
				t.Fatalf("Targets: expected %d, got %d", len(tt.want), len(p.Targets))
			}
			for i, want := range tt.want {
				if p.Targets[i].RefID != want {
					t.Errorf("target %d: expected refId %q, got %q", i, want, p.Targets[i].RefID)
				}
			}
		})
	}
}

func TestTimeseries_Defaults(t *testing.T) {
	p := Timeseries(6, "Request Breakdown", []Target{
		{Expr: "sum(rate(http_requests_total[1m])) by (route)", Legend: "{{route}}"},
	}, 0, 5)

	if p.Type != "timeseries" {
		t.Fatalf("Type: expected timeseries, got %q", p.Type)
	}
	if p.GridPos.W != 12 || p.GridPos.H != 7 {
		t.Errorf("GridPos: expected default 12x7, got %dx%d", p.GridPos.W, p.GridPos.H)
	}
	if p.FieldConfig.Defaults.Unit != "short" {
		t.Errorf("Unit: expected default short, got %q", p.FieldConfig.Defaults.Unit)
	}
	if p.FieldConfig.Defaults.Color.Mode != "palette-classic" {
		t.Errorf("Color: expected palette-classic, got %q", p.FieldConfig.Defaults.Color.Mode)
	}
	if p.Targets[0].LegendFormat != "{{route}}" {
		t.Errorf("LegendFormat: got %q", p.Targets[0].LegendFormat)
	}
	if p.Targets[0].Instant {
		t.Error("Instant: timeseries targets default to range mode")
	}

	custom, ok := p.FieldConfig.Defaults.Custom.(*grafana.TimeseriesCustom)
	if !ok {
		t.Fatalf("Custom: expected *grafana.TimeseriesCustom, got %T", p.FieldConfig.Defaults.Custom)
	}
	if custom.Stacking.Mode != "none" || custom.Stacking.Group != "A" {
		t.Errorf("Stacking: expected unstacked single group, got %+v", custom.Stacking)
	}
}

func TestTimeseries_StackedAndInstant(t *testing.T) {
	p := Timeseries(15, "Cache Hits vs Misses", []Target{
		{Expr: "hits", Legend: "Hits"},
		{Expr: "misses", Legend: "Misses", Instant: true},
	}, 0, 0, Stacked("normal"))

	custom := p.FieldConfig.Defaults.Custom.(*grafana.TimeseriesCustom)
	if custom.Stacking.Mode != "normal" {
		t.Errorf("Stacking: expected normal, got %q", custom.Stacking.Mode)
	}
	if p.Targets[0].Instant {
		t.Error("target 0: expected range mode")
	}
	if !p.Targets[1].Instant {
		t.Error("target 1: expected instant mode")
	}
}

func TestTimeseries_SizeAndColorOptions(t *testing.T) {
	p := Timeseries(1, "t", []Target{{Expr: "x"}}, 0, 0,
		Width(GridWidth), Height(10), ColorScheme("continuous-GrYlRd"), Unit("reqps"))

	if p.GridPos.W != GridWidth || p.GridPos.H != 10 {
		t.Errorf("GridPos: expected 24x10, got %dx%d", p.GridPos.W, p.GridPos.H)
	}
	if p.FieldConfig.Defaults.Color.Mode != "continuous-GrYlRd" {
		t.Errorf("Color: got %q", p.FieldConfig.Defaults.Color.Mode)
	}
	if p.FieldConfig.Defaults.Unit != "reqps" {
		t.Errorf("Unit: got %q", p.FieldConfig.Defaults.Unit)
	}
}

func TestTable_TimeColumnAlwaysExcluded(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want map[string]bool
	}{
		{
			name: "no caller excludes",
			want: map[string]bool{"Time": true},
		},
		{
			name: "caller excludes stack on top",
			opts: []Option{ExcludeColumns("instance", "job")},
			want: map[string]bool{"Time": true, "instance": true, "job": true},
		},
		{
			name: "excluding Time again is harmless",
			opts: []Option{ExcludeColumns("Time")},
			want: map[string]bool{"Time": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Table(27, "t", []Target{{Expr: "x"}}, 0, 0, tt.opts...)

			if len(p.Transformations) != 2 {
				t.Fatalf("Transformations: expected merge+organize, got %d stages", len(p.Transformations))
			}
			if p.Transformations[0].ID != "merge" {
				t.Errorf("stage 0: expected merge, got %q", p.Transformations[0].ID)
			}
			org, ok := p.Transformations[1].Options.(*grafana.OrganizeOptions)
			if !ok || p.Transformations[1].ID != "organize" {
				t.Fatalf("stage 1: expected organize options, got %q %T",
					p.Transformations[1].ID, p.Transformations[1].Options)
			}
			if len(org.ExcludeByName) != len(tt.want) {
				t.Errorf("ExcludeByName: expected %v, got %v", tt.want, org.ExcludeByName)
			}
			for col := range tt.want {
				if !org.ExcludeByName[col] {
					t.Errorf("ExcludeByName: missing %q", col)
				}
			}
		})
	}
}

func TestTable_TargetsRunAsInstantTableQueries(t *testing.T) {
	p := Table(27, "Staleness by Pair", []Target{{Expr: "a"}, {Expr: "b"}}, 0, 56,
		ExcludeColumns("instance"))

	if len(p.Targets) != 2 {
		t.Fatalf("Targets: expected 2, got %d", len(p.Targets))
	}
	for i, want := range []string{"A", "B"} {
		tgt := p.Targets[i]
		if tgt.RefID != want {
			t.Errorf("target %d: expected refId %q, got %q", i, want, tgt.RefID)
		}
		if !tgt.Instant || tgt.Format != "table" {
			t.Errorf("target %d: expected instant table query, got instant=%v format=%q",
				i, tgt.Instant, tgt.Format)
		}
	}
	if p.GridPos.W != GridWidth || p.GridPos.H != 8 {
		t.Errorf("GridPos: expected default 24x8, got %dx%d", p.GridPos.W, p.GridPos.H)
	}
}

func TestTable_RenameAndOverrides(t *testing.T) {
	override := grafana.Override{
		Matcher: grafana.Matcher{ID: "byName", Options: "Staleness (s)"},
		Properties: []grafana.OverrideProperty{
			{ID: "custom.cellOptions", Value: grafana.CellOptions{Type: "color-background"}},
		},
	}
	p := Table(27, "t", []Target{{Expr: "x"}}, 0, 0,
		Rename(map[string]string{"Value": "Staleness (s)"}),
		Overrides(override),
	)

	org := p.Transformations[1].Options.(*grafana.OrganizeOptions)
	if org.RenameByName["Value"] != "Staleness (s)" {
		t.Errorf("RenameByName: got %v", org.RenameByName)
	}
	if len(p.FieldConfig.Overrides) != 1 {
		t.Fatalf("Overrides: expected 1, got %d", len(p.FieldConfig.Overrides))
	}
	if p.FieldConfig.Overrides[0].Matcher.Options != "Staleness (s)" {
		t.Errorf("Matcher: got %+v", p.FieldConfig.Overrides[0].Matcher)
	}
}

// TestRowThenStat is the minimal two-panel dashboard scenario: a section
// header followed by one stat tile.
func TestRowThenStat(t *testing.T) {
	panels := []grafana.Panel{
		Row(1, "Overview", 0),
		Stat(2, "Uptime", "up", "percentunit", 0, 1),
	}

	if len(panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(panels))
	}
	row, stat := panels[0], panels[1]
	if row.Type != "row" || row.GridPos.H != 1 || row.GridPos.W != 24 {
		t.Errorf("row: expected type row 24x1, got %q %dx%d", row.Type, row.GridPos.W, row.GridPos.H)
	}
	if stat.Type != "stat" {
		t.Errorf("stat: expected type stat, got %q", stat.Type)
	}
	if len(stat.Targets) != 1 || stat.Targets[0].RefID != "A" || !stat.Targets[0].Instant {
		t.Errorf("stat: expected one instant binding with refId A, got %+v", stat.Targets)
	}
}
