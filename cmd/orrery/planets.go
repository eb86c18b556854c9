package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/skyfold/orrery/orbit"
	"github.com/skyfold/orrery/scene"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "Print the planet catalog",
	Long:  "Prints the modeled planet table: orbital radius and derived semi-major\naxis in world units, eccentricity, orbital period in animation frames,\nand moon count. No terminal takeover.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := catalogTable()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func catalogTable() (string, error) {
	rows := make([][]string, 0, len(scene.Catalog()))
	for _, sp := range scene.Catalog() {
		params, err := orbit.NewParams(sp.Radius, sp.Ecc, sp.Period)
		if err != nil {
			return "", fmt.Errorf("%s: %w", sp.Name, err)
		}
		rows = append(rows, []string{
			sp.Name,
			fmt.Sprintf("%.1f", sp.Radius),
			fmt.Sprintf("%.4f", params.SemiMajor),
			fmt.Sprintf("%.2f", sp.Ecc),
			fmt.Sprintf("%d", sp.Period),
			fmt.Sprintf("%d", sp.Moons),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		}).
		Headers("NAME", "RADIUS", "SEMI-MAJOR", "ECC", "PERIOD", "MOONS").
		Rows(rows...)

	return t.String(), nil
}
