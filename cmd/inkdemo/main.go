// Command inkdemo demonstrates the ink grid paint core: scripted brush
// strokes, store specials, undo, and deterministic replay, rendered to
// the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkgrid/ink"
	"github.com/inkgrid/ink/layers"
)

var (
	flagStyle   string
	flagWidth   int
	flagHeight  int
	flagPalette string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "inkdemo",
	Short: "inkdemo paints a demo session on an ink grid",
	Long: `inkdemo drives the ink library through a short scripted painting
session: brush strokes, a store-wide special effect, and an undo. The
grid is rendered to the terminal after each phase.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		if flagVerbose {
			ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagStyle, "style", "set", "draw style: set, additive, or sequence")
	pf.IntVar(&flagWidth, "width", 16, "grid width in cells")
	pf.IntVar(&flagHeight, "height", 10, "grid height in cells")
	pf.StringVar(&flagPalette, "palette", "", "YAML palette file (default: stock layers)")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging to stderr")

	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(replayCmd)
}

// newGrid builds the catalog (palette file or stock roster) and the grid
// from the persistent flags.
func newGrid() (*ink.Grid, error) {
	style, err := ink.ParseDrawStyle(flagStyle)
	if err != nil {
		return nil, err
	}

	var cat *ink.Catalog
	if flagPalette != "" {
		cat, err = loadPalette(flagPalette)
		if err != nil {
			return nil, err
		}
	} else {
		cat = layers.StockCatalog()
	}

	return ink.NewGrid(cat, style, flagWidth, flagHeight)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
