package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwerk/roomview/internal/app"
	"github.com/planwerk/roomview/pkg/viewer"
)

var (
	renderRooms  string
	renderLoads  string
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render [mesh-file]",
	Short: "Render a single frame to a PNG file",
	Long:  "Render the building from the default view into an image, without opening a window.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderRooms, "rooms", "", "room definitions file (YAML)")
	renderCmd.Flags().StringVar(&renderLoads, "loads", "", "load calculation results file (YAML)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "roomview.png", "output image path")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1600, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 1200, "image height in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputs := app.Inputs{
		MeshPath:  args[0],
		RoomsPath: renderRooms,
		LoadsPath: renderLoads,
	}
	meshText, rooms, err := inputs.Read()
	if err != nil {
		return err
	}

	viewCfg := viewer.Config{
		Width:      renderWidth,
		Height:     renderHeight,
		ShowLabels: cfg.Viewer.ShowLabels,
		ShowLoads:  cfg.Viewer.ShowLoads,
	}
	if bg, ok := cfg.Viewer.BackgroundColor(); ok {
		viewCfg.Background = bg
	}
	v, err := viewer.New(viewCfg)
	if err != nil {
		return err
	}
	defer v.Close()

	v.Load(meshText, rooms)
	frame := v.Frame()

	out, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, frame); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	fmt.Printf("Rendered %s (%dx%d)\n", renderOutput, renderWidth, renderHeight)
	return nil
}
