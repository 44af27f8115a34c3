// cmd/labels.go - Label anchor extraction command
package cmd

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mvt-render-feature/internal/config"
	"mvt-render-feature/internal/labels"
	"mvt-render-feature/internal/output"
	"mvt-render-feature/pkg/mvt"
)

// labelsCmd represents the labels command
var labelsCmd = &cobra.Command{
	Use:   "labels <tile-file>",
	Short: "Extract label anchor points from a Mapbox Vector Tile",
	Long: `Extract label anchor points from a local Mapbox Vector Tile file.

The tile is decoded into flat-coordinate render features, then one anchor is
derived per feature part: an interior point per polygon (guaranteed to lie
inside the filled area, suitable for label placement), a midpoint per line
and the coordinate itself per point.

Anchors are in tile-pixel space by default. With --project and the tile's
z/x/y coordinates they are transformed in place to EPSG:3857 web mercator.

Examples:
  # Anchors in tile-pixel space, printed to stdout
  tile-labels labels tile.mvt

  # Anchors in web mercator, written to a file
  tile-labels labels tile.mvt --z 14 --x 8362 --y 5956 --project --output anchors.geojson

  # Restrict to specific layers and simplify line geometry first
  tile-labels labels tile.mvt --layer roads --simplify --tolerance 4`,
	Args: cobra.ExactArgs(1),
	RunE: runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	// Tile coordinate flags
	labelsCmd.Flags().Int("z", 0, "tile zoom level")
	labelsCmd.Flags().Int("x", 0, "tile x coordinate")
	labelsCmd.Flags().Int("y", 0, "tile y coordinate")
	labelsCmd.Flags().Bool("project", false, "project anchors to EPSG:3857 using the tile coordinates")

	// Extraction flags
	labelsCmd.Flags().StringSlice("layer", nil, "only include the named layers (repeatable)")
	labelsCmd.Flags().Bool("simplify", false, "simplify lines before midpoint computation")
	labelsCmd.Flags().Float64("tolerance", 1, "simplification tolerance in tile pixels")

	// Output flags
	labelsCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")

	labelsCmd.MarkFlagsRequiredTogether("z", "x", "y")

	viper.BindPFlag("labels.layer_filter", labelsCmd.Flags().Lookup("layer"))
	viper.BindPFlag("labels.simplify", labelsCmd.Flags().Lookup("simplify"))
	viper.BindPFlag("labels.tolerance", labelsCmd.Flags().Lookup("tolerance"))
}

func runLabels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	z, _ := cmd.Flags().GetInt("z")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	project, _ := cmd.Flags().GetBool("project")
	outputPath, _ := cmd.Flags().GetString("output")

	if project {
		if err := (mvt.TileID{Z: z, X: x, Y: y}).Validate(); err != nil {
			return fmt.Errorf("invalid tile coordinates: %w", err)
		}
	}

	data, err := readTileData(args[0])
	if err != nil {
		return fmt.Errorf("failed to read tile: %w", err)
	}

	if viper.GetBool("logging.verbose") {
		fmt.Fprintf(os.Stderr, "Decoding tile data (%d bytes)\n", len(data))
	}

	decoder := mvt.NewDecoderWithExtent(cfg.Decoder.Extent)
	tile, err := decoder.Decode(data, z, x, y)
	if err != nil {
		return fmt.Errorf("failed to decode tile: %w", err)
	}

	if project {
		source := decoder.TilePixelProjection(tile.TileID)
		for _, layer := range tile.Layers {
			for _, f := range layer.Features {
				if err := f.Transform(source.Code(), "EPSG:3857"); err != nil {
					return fmt.Errorf("failed to project feature: %w", err)
				}
			}
		}
	}

	extractor, err := labels.NewExtractorWithOptions(&labels.Options{
		LayerFilter: cfg.Labels.LayerFilter,
		Simplify:    cfg.Labels.Simplify,
		Tolerance:   cfg.Labels.Tolerance,
	})
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	collection, stats, err := extractor.Extract(tile)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if viper.GetBool("logging.verbose") {
		fmt.Fprintf(os.Stderr, "Extracted %d anchors from %d features in %v\n",
			stats.AnchorCount, stats.FeatureCount, stats.ProcessTime)
	}

	writer, err := output.NewWriter(&output.WriterConfig{
		Format:      output.Format(cfg.Output.Format),
		Pretty:      cfg.Output.Pretty,
		Compression: cfg.Output.Compression,
		Metadata:    cfg.Output.Metadata,
	}, outputPath)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer writer.Close()

	if err := writer.Write(collection, stats); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// readTileData reads a tile file, transparently decompressing gzipped
// content. "-" reads from stdin.
func readTileData(path string) ([]byte, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if isGzipped(path, data) {
		gzipReader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		return io.ReadAll(gzipReader)
	}

	return data, nil
}

// isGzipped detects gzip content by extension or magic bytes.
func isGzipped(path string, data []byte) bool {
	if strings.HasSuffix(path, ".gz") {
		return true
	}
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}
