package main

import (
	"github.com/spf13/cobra"

	"github.com/planwerk/roomview/internal/app"
)

var (
	viewRooms    string
	viewLoads    string
	viewNoLabels bool
	viewNoWatch  bool
)

var viewCmd = &cobra.Command{
	Use:   "view [mesh-file]",
	Short: "Open the interactive 3D viewer",
	Long: `Open a window showing the building mesh with a ground grid, orientation
axes and per-room annotations. Drag to orbit, right-drag to pan, scroll
to zoom. Watched input files reload the scene when they change on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewRooms, "rooms", "", "room definitions file (YAML)")
	viewCmd.Flags().StringVar(&viewLoads, "loads", "", "load calculation results file (YAML)")
	viewCmd.Flags().BoolVar(&viewNoLabels, "no-labels", false, "hide room annotations")
	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "disable input file watching")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if viewNoLabels {
		cfg.Viewer.ShowLabels = false
	}
	if viewNoWatch {
		cfg.Watch.Enabled = false
	}

	return app.Run(cfg, app.Inputs{
		MeshPath:  args[0],
		RoomsPath: viewRooms,
		LoadsPath: viewLoads,
	})
}
