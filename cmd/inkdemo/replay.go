package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/inkgrid/ink"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Record the scripted session, then play it back step by step",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// The recording pass and the playback pass run on separate grids
		// so the replay demonstrably reconstructs the session.
		recorded, err := newGrid()
		if err != nil {
			return err
		}
		stage, err := newGrid()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		t := time.Now().Unix()

		tracker := ink.NewReplayTracker(0)

		banner(out, "recording (%s style, %dx%d)", recorded.Style(), recorded.Width(), recorded.Height())
		for _, s := range buildSession(recorded) {
			tracker.AddAction(s.action, false)
			banner(out, "%s", s.label)
		}

		// Live undo during recording: invert the latest edit, then log
		// it as an undo marker so playback repeats the inversion.
		if a := tracker.Undo(recorded); a != nil {
			tracker.AddAction(a, true)
			banner(out, "undo latest edit (recorded as marker)")
		}
		renderGrid(out, recorded, t)

		tracker.StartReplay()
		banner(out, "replaying %d entries", tracker.Remaining())
		step := 1
		for !tracker.PlayNextAction(stage) {
			banner(out, "step %d", step)
			renderGrid(out, stage, t)
			step++
		}

		return nil
	},
}
