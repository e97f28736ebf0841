package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/board"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/output"
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	d := board.Build(board.Options{})
	if err := output.Write(d, output.DefaultPath); err != nil {
		fmt.Fprintf(os.Stderr, "dashgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(okStyle.Render("wrote " + output.DefaultPath))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d panels, uid %s", len(d.Panels), d.UID)))
}
