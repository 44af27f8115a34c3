// cmd/root.go - Root command implementation
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tile-labels",
	Short: "Derive label anchors and geometry summaries from Mapbox Vector Tiles",
	Long: `TileLabels decodes Mapbox Vector Tiles into lightweight render features and
derives label placement geometry from their flat coordinates: interior points
for polygons, midpoints for lines and bounding extents for whole layers.

Features:
- Decode local .mvt / .pbf tile files (gzipped or plain)
- Interior point anchors guaranteed to lie inside polygon areas
- Per-line midpoint anchors with optional Douglas-Peucker simplification
- Optional projection of anchors from tile-pixel space to EPSG:3857
- GeoJSON and JSON output with optional compression

Examples:
  # Extract label anchors from a tile file
  tile-labels labels 14-8362-5956.mvt --output anchors.geojson

  # Project anchors to web mercator using the tile coordinates
  tile-labels labels 14-8362-5956.mvt --z 14 --x 8362 --y 5956 --project

  # Only the named layers, with simplified line anchors
  tile-labels labels tile.mvt --layer roads --layer waterways --simplify

  # Summarize a tile's layers and extents
  tile-labels info tile.mvt`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tile-labels.yaml)")

	// Decoder flags
	rootCmd.PersistentFlags().Int("extent", 4096, "tile extent in pixels")

	// Output flags
	rootCmd.PersistentFlags().StringP("format", "f", "geojson", "output format (geojson, json)")
	rootCmd.PersistentFlags().Bool("pretty", true, "pretty print JSON output")
	rootCmd.PersistentFlags().Bool("compression", false, "compress output files")
	rootCmd.PersistentFlags().Bool("metadata", false, "include extraction stats in output")

	// Processing flags
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	// Bind flags to viper
	viper.BindPFlag("decoder.extent", rootCmd.PersistentFlags().Lookup("extent"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output.pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	viper.BindPFlag("output.compression", rootCmd.PersistentFlags().Lookup("compression"))
	viper.BindPFlag("output.metadata", rootCmd.PersistentFlags().Lookup("metadata"))
	viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tile-labels" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tile-labels")
	}

	// Environment variables
	viper.SetEnvPrefix("TILE_LABELS")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("logging.verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
