package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/flubber"
	"github.com/phanxgames/flubber/internal/app"
	"github.com/phanxgames/flubber/internal/catalog"
	"github.com/phanxgames/flubber/internal/config"
	"github.com/phanxgames/flubber/internal/screen"
)

var (
	configFile  string
	catalogFile string
	stateFile   string
	debug       bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[flubber] ")

	rootCmd := &cobra.Command{
		Use:          "flubber",
		Short:        "animation catalog demo with a reveal/hide editor panel",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "seed catalog file (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log animation events to stderr")
	rootCmd.Flags().StringVar(&stateFile, "state", "", "saved panel state file (yaml)")

	rootCmd.AddCommand(newReplayCmd(), newPresetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of the loaded config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Files.Catalog = catalogFile
	}
	if f := cmd.Flags().Lookup("state"); f != nil && f.Changed {
		cfg.Files.State = stateFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Engine.Debug = debug
	}
	return cfg, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.New(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func newEngine(cfg config.Config) *flubber.Engine {
	engine := flubber.NewEngine()
	if cfg.Engine.Debug {
		engine.SetDebug(os.Stderr)
	}
	return engine
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.Files.Catalog)
	if err != nil {
		return err
	}

	s := screen.New(newEngine(cfg), cat, log.Default())
	bundle, err := screen.LoadBundle(cfg.Files.State)
	switch {
	case err == nil:
		s.RestoreState(bundle)
	case errors.Is(err, fs.ErrNotExist):
		bundle = screen.NewBundle()
	default:
		log.Printf("ignoring saved state: %v", err)
		bundle = screen.NewBundle()
	}

	if err := app.Run(s, app.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		TPS:     cfg.Engine.TPS,
		ShowFPS: cfg.Window.ShowFPS,
	}); err != nil {
		return err
	}

	s.SaveState(bundle)
	if err := os.MkdirAll(filepath.Dir(cfg.Files.State), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}
	if err := bundle.Save(cfg.Files.State); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if cfg.Files.Catalog != "" {
		if err := cat.Save(cfg.Files.Catalog); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
	}
	return nil
}
