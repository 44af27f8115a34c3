// cmd/info.go - Tile inspection command
package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mvt-render-feature/internal/config"
	"mvt-render-feature/pkg/geom"
	"mvt-render-feature/pkg/mvt"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <tile-file>",
	Short: "Summarize the layers and extents of a Mapbox Vector Tile",
	Long: `Decode a local Mapbox Vector Tile file and print a per-layer summary:
feature count, geometry type histogram and the union extent of the layer's
features in tile-pixel space.

Examples:
  tile-labels info tile.mvt
  tile-labels info tile.mvt.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := readTileData(args[0])
	if err != nil {
		return fmt.Errorf("failed to read tile: %w", err)
	}

	decoder := mvt.NewDecoderWithExtent(cfg.Decoder.Extent)
	tile, err := decoder.Decode(data, 0, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to decode tile: %w", err)
	}

	names := tile.LayerNames()
	sort.Strings(names)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "LAYER\tFEATURES\tTYPES\tEXTENT")

	for _, name := range names {
		layer := tile.Layers[name]

		types := make(map[geom.Type]int)
		extent := geom.EmptyExtent()
		for _, f := range layer.Features {
			types[f.Type()]++
			extent = extent.Extend(f.Extent())
		}

		typeNames := make([]string, 0, len(types))
		for typ := range types {
			typeNames = append(typeNames, string(typ))
		}
		sort.Strings(typeNames)

		histogram := ""
		for i, typ := range typeNames {
			if i > 0 {
				histogram += " "
			}
			histogram += fmt.Sprintf("%s:%d", typ, types[geom.Type(typ)])
		}

		extentText := "-"
		if len(layer.Features) > 0 {
			extentText = fmt.Sprintf("[%g %g %g %g]", extent.MinX(), extent.MinY(), extent.MaxX(), extent.MaxY())
		}

		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\n", name, len(layer.Features), histogram, extentText)
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d layers, %d features, extent %d\n", len(names), tile.FeatureCount(), tile.Extent)
	return nil
}
