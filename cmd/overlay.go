package cmd

import (
	"os"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/game"
	"github.com/iburimskiy/crosshair-overlay/internal/link"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var overlayCmd = &cobra.Command{
	Use:    "overlay",
	Short:  "Run only the crosshair window, reading config updates from stdin",
	Hidden: true,
	RunE:   runOverlay,
}

func init() {
	rootCmd.AddCommand(overlayCmd)
}

func runOverlay(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(config.NewStore(cfgFile))
	if err != nil {
		return err
	}

	tap := link.NewTap(link.NewDecoder(os.Stdin), c)
	go tap.Run()

	zap.S().Infow("overlay running", "style", c.Style)
	return game.RunOverlay(game.NewOverlay(c, tap))
}
