package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/game"
	"github.com/iburimskiy/crosshair-overlay/internal/link"
	"github.com/iburimskiy/crosshair-overlay/internal/panel"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigEnv overrides the default config file path.
const ConfigEnv = "CROSSHAIR_CONFIG"

var (
	cfgFile   string
	logLevel  string
	logFormat string
	noOverlay bool
)

var rootCmd = &cobra.Command{
	Use:   "crosshair-overlay",
	Short: "Draw a configurable crosshair on top of every window",
	Long: `Crosshair Overlay draws a crosshair centered on the primary display in a
transparent, click-through window that stays above other applications.
The settings window adjusts size, gap, thickness, opacity, color and style;
every change is shown immediately and saved to the config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level zapcore.Level
		if err := level.Set(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}

		var cfg zap.Config
		if logFormat == "json" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		zap.ReplaceGlobals(logger)
		return nil
	},
	RunE: runSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
	// set before parsing so an explicit --config still wins
	if p := os.Getenv(ConfigEnv); p != "" {
		cfgFile = p
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file (overrides "+ConfigEnv+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.Flags().BoolVar(&noOverlay, "no-overlay", false, "Open the settings window without starting the overlay")
}

// loadConfig reads the config file; a malformed file is reported and replaced
// by defaults instead of stopping the program.
func loadConfig(store *config.Store) (config.Crosshair, error) {
	c, err := store.Load()
	if err != nil {
		if errors.Is(err, config.ErrMalformed) {
			zap.S().Warnw("config file is malformed, using defaults", "path", store.Path, "error", err)
			return c, nil
		}
		return c, err
	}
	return c, nil
}

func runSettings(cmd *cobra.Command, args []string) error {
	store := config.NewStore(cfgFile)
	c, err := loadConfig(store)
	if err != nil {
		return err
	}
	zap.S().Infow("config loaded", "path", store.Path, "style", c.Style, "size", c.Size)

	state := config.NewState(c)

	var child *link.Child
	if !noOverlay {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
		child, err = link.Launch(cmd.Context(), exe, overlayArgs()...)
		if err != nil {
			return err
		}
		// the overlay loaded the file on its own; make sure it starts from our state
		if err := child.ConfigChanged(state.Current()); err != nil {
			zap.S().Warnw("failed to send initial config to overlay", "error", err)
		}
		state.Subscribe(child)
	}
	state.Subscribe(store)

	ctrl := panel.NewController(state, panel.NativeDialogs{})
	runErr := game.RunSettings(game.NewSettings(ctrl))

	if child != nil {
		if err := child.Wait(); err != nil {
			zap.S().Warnw("overlay did not exit cleanly", "error", err)
		}
	}
	return runErr
}

func overlayArgs() []string {
	return []string{
		overlayCmd.Name(),
		"--config", cfgFile,
		"--log-level", logLevel,
		"--log-format", logFormat,
	}
}
