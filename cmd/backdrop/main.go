// cmd/backdrop/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lab-backdrop/internal/app"
	"lab-backdrop/internal/config"
	"lab-backdrop/internal/state"
)

var (
	configPath string
	colorMode  string
	seed       int64
	verbose    bool
	watch      bool

	benchWidth  int
	benchHeight int
	benchFrames int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated particle backdrop for the lab website",
	Long: `backdrop renders the lab's ambient particle field: drifting particles that
pulse, link up with nearby neighbours and gather around the pointer, with the
partner logo marquee along the bottom edge.

Run without a subcommand to open a window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Render the backdrop in the terminal",
	RunE:  runTerm,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report draw statistics",
	RunE:  runBench,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML settings")
	rootCmd.PersistentFlags().StringVar(&colorMode, "mode", "", "color mode: primary-on-dark or accent-on-light")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", true, "reload the config file when it changes")

	benchCmd.Flags().IntVar(&benchWidth, "width", 1920, "surface width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 1080, "surface height")
	benchCmd.Flags().IntVar(&benchFrames, "frames", config.BenchFrames, "frames to simulate")

	rootCmd.AddCommand(termCmd, benchCmd)
}

// loadSettings reads the config file and applies the command line overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if colorMode != "" {
		mode := config.ColorMode(colorMode)
		if !mode.Valid() {
			return config.Settings{}, fmt.Errorf("unknown color mode %q", colorMode)
		}
		settings.ColorMode = mode
	}
	if seed != 0 {
		settings.Seed = seed
	}
	return settings, nil
}

// startWatcher returns a channel of reloaded settings, or nil when there is
// nothing to watch. The returned stop function is always safe to call.
func startWatcher(ctx context.Context) (<-chan config.Settings, func()) {
	if configPath == "" || !watch {
		return nil, func() {}
	}
	w, err := config.NewWatcher(configPath, logger)
	if err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
		return nil, func() {}
	}
	w.Start(ctx)
	return w.Changes(), func() { _ = w.Close() }
}

func runWindow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	changes, stop := startWatcher(ctx)
	defer stop()

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewBackdropState(settings, changes, logger))
	defer sm.SetState(nil)

	a := &AppGame{stateMachine: sm}
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}
	return nil
}

func runTerm(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	changes, stop := startWatcher(ctx)
	defer stop()

	return app.RunTerminal(ctx, settings, changes, logger)
}

func runBench(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	report, err := app.RunBench(settings, benchWidth, benchHeight, benchFrames, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"surface %dx%d, seed %d\nparticles: %d\nframes: %d in %v\ncircles: %d\nlines: %d (%.1f/frame, max %d)\n",
		report.Width, report.Height, report.Seed, report.Particles,
		report.Frames, report.Elapsed, report.Circles,
		report.Lines, report.LinesPerFrame(), report.MaxLines)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
