package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwerk/roomview/pkg/analysis"
	"github.com/planwerk/roomview/pkg/building"
	"github.com/planwerk/roomview/pkg/mesh"
)

var (
	infoRooms string
	infoLoads string
)

var infoCmd = &cobra.Command{
	Use:   "info [mesh-file]",
	Short: "Display information about building geometry",
	Long:  "Show mesh statistics, bounding box and, if room files are given, room and load totals.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoRooms, "rooms", "", "room definitions file (YAML)")
	infoCmd.Flags().StringVar(&infoLoads, "loads", "", "load calculation results file (YAML)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := mesh.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}

	stats := analysis.AnalyzeMesh(m)

	fmt.Println("Building Geometry")
	fmt.Println("=================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", stats.VertexCount)
	fmt.Printf("  Triangles: %d\n", stats.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", stats.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(stats.Bounds.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", stats.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", stats.Dimensions.Y)
	fmt.Printf("  Depth (Z): %.6f units\n", stats.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", stats.Bounds.Diagonal())

	if infoRooms == "" {
		return
	}

	rooms, err := building.LoadRooms(infoRooms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rooms file: %v\n", err)
		os.Exit(1)
	}
	if infoLoads != "" {
		figures, err := building.LoadFigures(infoLoads)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading loads file: %v\n", err)
			os.Exit(1)
		}
		building.ApplyLoads(rooms, figures)
	}

	rs := analysis.AnalyzeRooms(rooms)
	fmt.Println()
	fmt.Println("Rooms:")
	fmt.Printf("  Count: %d\n", rs.RoomCount)
	fmt.Printf("  With load figures: %d\n", rs.WithLoads)
	fmt.Printf("  Floor area: %.2f square units\n", rs.FloorArea)
	fmt.Printf("  Volume: %.2f cubic units\n\n", rs.Volume)

	fmt.Println("Load Totals:")
	fmt.Printf("  Cooling: %.1f kW\n", rs.CoolingTotal/1000.0)
	fmt.Printf("  Heating: %.1f kW\n", rs.HeatingTotal/1000.0)
}
