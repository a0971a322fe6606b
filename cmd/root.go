package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/kernel/csg"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/plugin"
	"github.com/alexiusacademia/bridgebeam/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
	holeRadius float64
	density    float64
)

var rootCmd = &cobra.Command{
	Use:   "bridgebeam",
	Short: "Precast Bridge Beam Generator",
	Long: `bridgebeam - Precast Bridge Beam Generator

A CLI tool for the parametric modelling of precast concrete
bridge beams with a top shelf, a rib and a bottom shelf.

This tool helps engineers and detailers:
  - Build the beam solid with chamfers, fillets and strand notches
  - Keep shelf and rib heights consistent while editing
  - Place the two transverse sling holes
  - Drag the edit handles the way a modelling host does
  - Report section properties, volume and mass

Configuration is read from --config, the BRIDGEBEAM_* environment
variables and a .env file in the working directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   bridgebeam v%-44s║\n", version.Version)
		fmt.Println("  ║   Precast Bridge Beam Generator                           ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the parametric modelling of precast concrete")
		fmt.Println("  bridge beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam solid with shelves, rib, strand notches and sling holes")
		fmt.Println("    • Height rebalancing when a shelf, rib or beam height changes")
		fmt.Println("    • Edit handles for length, height, shelf widths and rib")
		fmt.Println("    • Section properties, volume and mass")
		fmt.Println("    • PDF data sheets and xlsx beam schedules")
		fmt.Println()
		fmt.Println("  Use 'bridgebeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config JSON file (limits, geometry, style, material)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log geometry steps to stderr")
	rootCmd.PersistentFlags().Float64Var(&holeRadius, "hole-radius", 0, "Override the sling hole radius (mm)")
	rootCmd.PersistentFlags().Float64Var(&density, "density", 0, "Override the concrete density (kg/m³)")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// loadConfig layers the configuration: defaults, then the config file,
// then environment overrides, then command line flags.
func loadConfig(log zerolog.Logger) (config.Config, error) {
	env, err := config.LoadEnv(".env")
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	path := configFile
	if path == "" {
		path = env.ConfigPath
	}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		log.Debug().Str("path", path).Msg("config loaded")
	}

	cfg.Resolve(env.Flags)
	cfg.Resolve(config.Flags{HoleRadius: holeRadius, Density: density})
	return cfg, cfg.Validate()
}

// loadParams reads a parameter document, or returns the defaults when
// path is empty.
func loadParams(path string) (*params.Parameters, error) {
	if path == "" {
		p := params.Default()
		return &p, nil
	}
	return params.LoadFromFile(path)
}

// session is what every command needs to drive the beam.
type session struct {
	log    zerolog.Logger
	cfg    config.Config
	kernel *csg.Kernel
	plugin *plugin.BridgeBeam
}

func newSession() (*session, error) {
	log := newLogger()
	cfg, err := loadConfig(log)
	if err != nil {
		return nil, err
	}

	k := csg.New(log)
	bb := plugin.New(k, nil, cfg, log)
	if !bb.CheckVersion(version.Version) {
		return nil, fmt.Errorf("host version %s not supported", version.Version)
	}

	return &session{log: log, cfg: cfg, kernel: k, plugin: bb}, nil
}
