package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/inkgrid/ink"
)

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Run the scripted session with live undo/redo",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := newGrid()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		t := time.Now().Unix()

		tracker := ink.NewUndoTracker(0)

		banner(out, "painting (%s style, %dx%d)", g.Style(), g.Width(), g.Height())
		for _, s := range buildSession(g) {
			tracker.AddAction(s.action)
			banner(out, "%s", s.label)
		}
		renderGrid(out, g, t)

		banner(out, "undo twice")
		for i := 0; i < 2; i++ {
			if a := tracker.Undo(g); a != nil {
				tracker.PushRedo(a)
			}
		}
		renderGrid(out, g, t)

		banner(out, "redo once")
		tracker.Redo(g)
		renderGrid(out, g, t)

		return nil
	},
}
