// Package output serializes the composed dashboard and writes it to disk.
package output

import (
	"fmt"
	"os"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/jsonutil"
)

// DefaultPath is the fixed relative path the dashboard is written to,
// overwritten on every run.
const DefaultPath = "price-aggregator-dashboard.json"

// Write renders the whole document in memory, then writes it in a single
// call. There is no retry and no partial-write protection: an I/O failure
// aborts the run.
func Write(d grafana.Dashboard, path string) error {
	data, err := jsonutil.MarshalIndented(d)
	if err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}
	return nil
}
