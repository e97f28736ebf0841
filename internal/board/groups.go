package board

import (
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/layout"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/panel"
)

// A group builds one labeled section of the dashboard: a header row plus
// the panels under it. Each group places panels at the cursor and advances
// it by the height of each band it laid down, so groups stack without
// overlapping. Panels within a band are placed left-to-right by explicit
// x offsets.
type group func(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel

// groups is the fixed narrative order of the dashboard.
var groups = []group{
	serviceOverview,
	cacheHealth,
	updateMechanisms,
	sourceReliability,
	runtimeMetrics,
}

// serviceOverview is the quick pulse: is the service alive and serving.
func serviceOverview(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel {
	panels := []grafana.Panel{
		panel.Row(ids.Next(), "Service Overview", cur.Take(1)),
	}

	y := cur.Take(4)
	panels = append(panels,
		panel.Stat(ids.Next(), "Requests/s",
			`sum(increase(http_requests_total{job="$job", instance=~"$instance"}[$__range])) / $__range_s`,
			"reqps", 0, y,
			panel.Thresholds(grafana.Step("red", 0), grafana.Step("green", 0.1)),
			panel.Description("Average HTTP requests per second over the selected time range. Should be > 0 if service is receiving traffic.")),
		panel.Stat(ids.Next(), "Latency P95",
			`histogram_quantile(0.95, sum(increase(http_request_duration_seconds_bucket{job="$job", instance=~"$instance"}[$__range])) by (le))`,
			"s", 6, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 1)),
			panel.Description("95th percentile of HTTP request latency over the selected time range. Values > 1s indicate performance issues.")),
		panel.Stat(ids.Next(), "Errors/s",
			`sum(rate(app_errors_total{job="$job", instance=~"$instance"}[1m]))`,
			"ops", 12, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 0.1)),
			panel.Description("Application errors per second. Should be 0 or very low in healthy system.")),
		panel.Stat(ids.Next(), "Uptime",
			`min(up{job="$job", instance=~"$instance"})`,
			"percentunit", 18, y,
			panel.Thresholds(grafana.BaseStep("red"), grafana.Step("green", 1)),
			panel.Description("Service availability. 1 = up, 0 = down. All instances should be up.")),
	)

	panels = append(panels,
		panel.Timeseries(ids.Next(), "Request Breakdown", []panel.Target{
			{Expr: `sum(rate(http_requests_total{job="$job", instance=~"$instance"}[1m])) by (route)`, Legend: "{{route}}"},
		}, 0, cur.Take(8),
			panel.Width(panel.GridWidth),
			panel.Unit("reqps"),
			panel.Description("HTTP requests per second broken down by route. Shows which endpoints are being used most.")),
	)

	return panels
}

// cacheHealth is the core focus: is the cache populated and used.
func cacheHealth(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel {
	panels := []grafana.Panel{
		panel.Row(ids.Next(), "Cache Health", cur.Take(1)),
	}

	y := cur.Take(4)
	panels = append(panels,
		panel.Stat(ids.Next(), "Total Cache Size",
			`sum(cache_size{job="$job", instance=~"$instance", source=~"$source"})`,
			"short", 0, y,
			panel.Thresholds(grafana.Step("red", 0), grafana.Step("green", 1)),
			panel.Description("Total number of cached price entries. Should be > 0 if cache is working.")),
		panel.Stat(ids.Next(), "Hit Ratio",
			`sum(increase(cache_hits_total{job="$job", instance=~"$instance", source=~"$source"}[$__range])) / clamp_min(sum(increase(cache_hits_total{job="$job", instance=~"$instance", source=~"$source"}[$__range]) + increase(cache_misses_total{job="$job", instance=~"$instance", source=~"$source"}[$__range])), 0.00001)`,
			"percentunit", 6, y,
			panel.Thresholds(grafana.BaseStep("red"), grafana.Step("orange", 0.8), grafana.Step("green", 0.95)),
			panel.Description("Cache hit ratio over the entire selected time range. Higher is better. >95% is excellent, <80% indicates cache issues.")),
		panel.Stat(ids.Next(), "Tracked Pairs",
			`sum(tracked_pairs_total{job="$job", instance=~"$instance"})`,
			"short", 12, y,
			panel.Thresholds(grafana.Step("red", 0), grafana.Step("green", 1)),
			panel.Description("Number of trading pairs currently being tracked and cached.")),
		panel.Stat(ids.Next(), "Unique Pairs",
			`pairs_total{job="$job", instance=~"$instance"}`,
			"short", 18, y,
			panel.Thresholds(grafana.Step("red", 0), grafana.Step("green", 1)),
			panel.Description("Total unique trading pairs configured in the system.")),
	)

	y = cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "Cache Hits vs Misses", []panel.Target{
			{Expr: `sum(rate(cache_hits_total{job="$job", instance=~"$instance", source=~"$source"}[1m])) by (source)`, Legend: "Hits {{source}}"},
			{Expr: `sum(rate(cache_misses_total{job="$job", instance=~"$instance", source=~"$source"}[1m])) by (source)`, Legend: "Misses {{source}}"},
		}, 0, y,
			panel.Unit("ops"),
			panel.Stacked("normal"),
			panel.Description("Cache hits vs misses per source. More hits = better performance. High misses indicate cache problems.")),
		panel.Timeseries(ids.Next(), "Cache Size Trend", []panel.Target{
			{Expr: `sum(cache_size{job="$job", instance=~"$instance", source=~"$source"}) by (source)`, Legend: "{{source}}"},
		}, 12, y,
			panel.Stacked("normal"),
			panel.Description("Number of cached entries over time by source. Should grow initially then stabilize.")),
	)

	return panels
}

// updateMechanisms answers: are prices actually updating.
func updateMechanisms(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel {
	panels := []grafana.Panel{
		panel.Row(ids.Next(), "Update Mechanisms", cur.Take(1)),
	}

	y := cur.Take(4)
	panels = append(panels,
		panel.Stat(ids.Next(), "Max Staleness",
			`max(time() - source_last_successful_update_timestamp{job="$job", instance=~"$instance", source=~"$source", pair=~"$pair"})`,
			"s", 0, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 300)),
			panel.Description("Maximum time since last successful price update. >300s indicates stale data.")),
		panel.Stat(ids.Next(), "WS Connections",
			`sum(websocket_connections_total{job="$job", instance=~"$instance", source=~"$source"})`,
			"short", 6, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 0)),
			panel.Description("Active WebSocket connections to price sources. Should be > 0 for real-time updates.")),
		panel.Stat(ids.Next(), "WS Messages/s",
			`sum(rate(websocket_messages_received_total{job="$job", instance=~"$instance", source=~"$source"}[1m]))`,
			"ops", 12, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 0)),
			panel.Description("WebSocket messages received per second. Indicates real-time data flow.")),
		panel.Stat(ids.Next(), "Quotes Processed/s",
			`sum(rate(quotes_processed_total{job="$job", instance=~"$instance", source=~"$source", status="success"}[1m]))`,
			"ops", 18, y,
			panel.Thresholds(grafana.BaseStep("green"), grafana.Step("red", 0)),
			panel.Description("Successfully processed price quotes per second. Should be > 0 for active trading pairs.")),
	)

	y = cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "Update Frequency P95", []panel.Target{
			{Expr: `histogram_quantile(0.95, sum(rate(price_update_frequency_seconds_bucket{job="$job", instance=~"$instance", source=~"$source", pair=~"$pair"}[1m])) by (le, source))`, Legend: "{{source}}"},
		}, 0, y,
			panel.Unit("s"),
			panel.Description("95th percentile of price update intervals by source. Lower is better for real-time data.")),
		panel.Timeseries(ids.Next(), "Staleness Trend", []panel.Target{
			{Expr: `avg(time() - source_last_successful_update_timestamp{job="$job", instance=~"$instance", source=~"$source", pair=~"$pair"}) by (source)`, Legend: "{{source}}"},
		}, 12, y,
			panel.Unit("s"),
			panel.Description("Average staleness of price data by source. Should be low and stable.")),
	)

	stalenessOverride := grafana.Override{
		Matcher: grafana.Matcher{ID: "byName", Options: "Staleness (s)"},
		Properties: []grafana.OverrideProperty{
			{
				ID: "thresholds",
				Value: grafana.Thresholds{
					Mode: "absolute",
					Steps: []grafana.ThresholdStep{
						grafana.BaseStep("green"),
						grafana.Step("yellow", 10),
						grafana.Step("red", 60),
					},
				},
			},
			{
				ID:    "custom.cellOptions",
				Value: grafana.CellOptions{Type: "color-background"},
			},
		},
	}
	panels = append(panels,
		panel.Table(ids.Next(), "Staleness by Pair", []panel.Target{
			{Expr: `time() - source_last_successful_update_timestamp{job="$job", instance=~"$instance", source=~"$source", pair=~"$pair"}`},
		}, 0, cur.Take(9),
			panel.Rename(map[string]string{"Value": "Staleness (s)", "source": "Source", "pair": "Pair"}),
			panel.ExcludeColumns("instance", "job"),
			panel.Overrides(stalenessOverride),
			panel.Description("Staleness of each trading pair by source. Green <10s, Yellow 10-60s, Red >60s.")),
	)

	return panels
}

// sourceReliability explains why the cache might be stale.
func sourceReliability(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel {
	panels := []grafana.Panel{
		panel.Row(ids.Next(), "Source Reliability", cur.Take(1)),
	}

	y := cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "API Errors", []panel.Target{
			{Expr: `sum(rate(source_api_errors_total{job="$job", instance=~"$instance", source=~"$source"}[1m])) by (source)`, Legend: "{{source}}"},
		}, 0, y,
			panel.Unit("ops"),
			panel.Description("API errors per second by source. Should be 0 or very low. High values indicate source problems.")),
		panel.Timeseries(ids.Next(), "Rate Limit Hits", []panel.Target{
			{Expr: `sum(rate(rate_limit_hits_total{job="$job", instance=~"$instance", source=~"$source"}[1m])) by (source)`, Legend: "{{source}}"},
		}, 12, y,
			panel.Unit("ops"),
			panel.Description("Rate limit hits per second by source. High values may cause data staleness.")),
	)

	y = cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "Fetch Latency P95", []panel.Target{
			{Expr: `histogram_quantile(0.95, sum(rate(source_fetch_duration_seconds_bucket{job="$job", instance=~"$instance", source=~"$source"}[1m])) by (le, source))`, Legend: "{{source}}"},
		}, 0, y,
			panel.Unit("s"),
			panel.Description("95th percentile of API fetch latency by source. High values may indicate network or source issues.")),
		panel.Timeseries(ids.Next(), "Price Not Found", []panel.Target{
			{Expr: `sum(rate(price_not_found_total{job="$job", instance=~"$instance", source=~"$source", pair=~"$pair"}[1m])) by (source)`, Legend: "{{source}}"},
		}, 12, y,
			panel.Unit("ops"),
			panel.Description("Rate of price not found errors by source. May indicate missing trading pairs on source.")),
	)

	return panels
}

// runtimeMetrics covers basic resource usage of the aggregator process.
func runtimeMetrics(ids *layout.IDAllocator, cur *layout.Cursor) []grafana.Panel {
	panels := []grafana.Panel{
		panel.Row(ids.Next(), "Runtime Metrics", cur.Take(1)),
	}

	y := cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "CPU Usage", []panel.Target{
			{Expr: `rate(nodejs_process_cpu_seconds_total{job="$job", instance=~"$instance"}[1m]) * 100`, Legend: "CPU %"},
		}, 0, y,
			panel.Unit("percent"),
			panel.Description("CPU usage percentage. High sustained values may indicate performance bottlenecks.")),
		panel.Timeseries(ids.Next(), "Memory Usage", []panel.Target{
			{Expr: `nodejs_process_resident_memory_bytes{job="$job", instance=~"$instance"}`, Legend: "RSS"},
		}, 12, y,
			panel.Unit("bytes"),
			panel.Description("Resident memory usage. Steady growth may indicate memory leaks.")),
	)

	y = cur.Take(8)
	panels = append(panels,
		panel.Timeseries(ids.Next(), "Event Loop Lag P99", []panel.Target{
			{Expr: `nodejs_nodejs_eventloop_lag_p99_seconds{job="$job", instance=~"$instance"}`, Legend: "Lag P99"},
		}, 0, y,
			panel.Unit("s"),
			panel.Description("99th percentile of event loop lag. High values indicate blocking operations affecting responsiveness.")),
		panel.Timeseries(ids.Next(), "GC Duration P95", []panel.Target{
			{Expr: `histogram_quantile(0.95, sum(rate(nodejs_nodejs_gc_duration_seconds_bucket{job="$job", instance=~"$instance"}[1m])) by (le))`, Legend: "GC P95"},
		}, 12, y,
			panel.Unit("s"),
			panel.Description("95th percentile of garbage collection duration. Long GC pauses can affect performance.")),
	)

	return panels
}
