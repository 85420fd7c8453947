package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/catalog"
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list animation presets and curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("presets"))
			for _, p := range flubber.Presets() {
				fmt.Fprintln(out, "  "+string(p))
			}
			fmt.Fprintln(out, headerStyle.Render("curves"))
			for _, c := range flubber.Curves() {
				fmt.Fprintln(out, "  "+string(c))
			}
			fmt.Fprintln(out, headerStyle.Render("defaults"))
			fmt.Fprintln(out, labelStyle.Render("duration")+fmt.Sprintf("%dms", flubber.DefaultDuration))
			fmt.Fprintln(out, labelStyle.Render("distance")+fmt.Sprintf("%gpx", flubber.DefaultDistance))
			fmt.Fprintln(out, labelStyle.Render("angle")+fmt.Sprintf("%g°", flubber.DefaultAngle))
			fmt.Fprintln(out, labelStyle.Render("new entry")+catalog.DefaultSpec().String())
			return nil
		},
	}
}
