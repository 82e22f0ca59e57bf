package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwerk/roomview/internal/config"
	"github.com/planwerk/roomview/internal/logger"
	"github.com/planwerk/roomview/version"
)

var (
	flagConfig string
	flagDebug  bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "roomview",
	Short: "Interactive 3D viewer for building geometry and room loads",
	Long: `roomview visualizes exported building geometry as an explorable 3D model.
Room annotations show names and thermal load figures from the load
calculation, so results can be checked against the geometry they belong to.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagDebug {
			cfg.Logging.Level = "debug"
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
