package main

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/screen"
)

var (
	plotField string
	plotNode  string
	quiet     bool
)

var (
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(10).Align(lipgloss.Right)
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Width(9)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(9)
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// fields maps plot field names to node property getters.
var fields = map[string]func(n *flubber.Node) float64{
	"x":        func(n *flubber.Node) float64 { return n.X },
	"y":        func(n *flubber.Node) float64 { return n.Y },
	"alpha":    func(n *flubber.Node) float64 { return n.Alpha },
	"scale":    func(n *flubber.Node) float64 { return n.ScaleX },
	"rotation": func(n *flubber.Node) float64 { return n.Rotation },
	"radius":   func(n *flubber.Node) float64 { return n.RevealRadius },
}

func fieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "run a gesture script headless and print the animation timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	cmd.Flags().StringVar(&plotField, "plot", "", "plot a node field over time ("+strings.Join(fieldNames(), ", ")+")")
	cmd.Flags().StringVar(&plotNode, "node", "target", "node to plot")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "omit the timeline")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := screen.LoadScript(args[0])
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.Files.Catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	engine := newEngine(cfg)
	var events []flubber.Event
	engine.SetTrace(func(ev flubber.Event) { events = append(events, ev) })
	s := screen.New(engine, cat, log.New(io.Discard, "", 0))

	var samples []float64
	if plotField != "" {
		get, ok := fields[plotField]
		if !ok {
			return fmt.Errorf("unknown plot field %q (want one of %s)", plotField, strings.Join(fieldNames(), ", "))
		}
		n := s.Root().Find(plotNode)
		if n == nil {
			return fmt.Errorf("no node named %q", plotNode)
		}
		samples = append(samples, get(n))
		s.OnTick(func(float64) { samples = append(samples, get(n)) })
	}

	runErr := s.RunScript(sc)

	if !quiet {
		fmt.Fprintln(out, headerStyle.Render("timeline"))
		fmt.Fprint(out, formatTimeline(events))
	}
	fmt.Fprintln(out, headerStyle.Render("catalog"))
	for i, spec := range cat.Specs() {
		fmt.Fprintf(out, "%3d  %s\n", i, spec)
	}
	fmt.Fprintf(out, "panel %s at %.0fms\n", s.Controller().State(), engine.Now())

	if len(samples) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(samples,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s.%s", plotNode, plotField)),
		))
	}

	if runErr != nil {
		fmt.Fprintln(out, errorStyle.Render(runErr.Error()))
		return fmt.Errorf("replay %s: script had failing steps", args[0])
	}
	return nil
}

// formatTimeline renders one line per trace event.
func formatTimeline(events []flubber.Event) string {
	var b strings.Builder
	for _, ev := range events {
		kind := startStyle.Render(ev.Kind.String())
		if ev.Kind == flubber.EventComplete {
			kind = completeStyle.Render(ev.Kind.String())
		}
		b.WriteString(timeStyle.Render(fmt.Sprintf("%.1fms", ev.Time)))
		b.WriteString("  ")
		b.WriteString(kind)
		b.WriteString(nameStyle.Render(ev.Name))
		b.WriteByte('\n')
	}
	return b.String()
}
