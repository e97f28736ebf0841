package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/output"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/preview"
)

func main() {
	d, err := preview.Load(output.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dashview: %v (run dashgen first)\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(preview.NewModel(d), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashview: %v\n", err)
		os.Exit(1)
	}
}
