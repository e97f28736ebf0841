package board

import "github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"

// Variable hide levels as Grafana encodes them.
const (
	varVisible    = 0
	varHideErased = 2
)

// templateVariables declares the dashboard-scoped substitution variables.
// All are resolved by the host against backend label values at render
// time. job is single-select and hidden from the UI; the rest are
// multi-select with an "All" option.
func templateVariables() []grafana.TemplateVar {
	return []grafana.TemplateVar{
		hiddenVar("job", "label_values(up, job)", "price-aggregator"),
		multiVar("instance", `label_values(up{job="$job"}, instance)`),
		multiVar("source", `label_values(quotes_processed_total{job="$job"}, source)`),
		multiVar("pair", `label_values(price_update_frequency_seconds_bucket{job="$job"}, pair)`),
	}
}

func hiddenVar(name, definition, value string) grafana.TemplateVar {
	v := queryVar(name, definition)
	v.Current = grafana.CurrentSelection{Selected: true, Text: value, Value: value}
	v.Hide = varHideErased
	return v
}

func multiVar(name, definition string) grafana.TemplateVar {
	v := queryVar(name, definition)
	v.Current = grafana.CurrentSelection{Selected: true, Text: "All", Value: "$__all"}
	v.IncludeAll = true
	v.Multi = true
	return v
}

func queryVar(name, definition string) grafana.TemplateVar {
	return grafana.TemplateVar{
		Datasource: grafana.Prometheus,
		Definition: definition,
		Hide:       varVisible,
		Name:       name,
		Query: grafana.VariableQuery{
			Query: definition,
			RefID: "StandardVariableQuery",
		},
		Refresh:     1,
		Regex:       "",
		SkipURLSync: false,
		Sort:        0,
		Type:        "query",
	}
}
