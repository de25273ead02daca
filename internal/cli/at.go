package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkotla/subcue/internal/provider"
	"github.com/rkotla/subcue/internal/track"
)

var atCmd = &cobra.Command{
	Use:   "at [subtitle_file]",
	Short: "Look up the cue active at a playback time",
	Long: `Decode a subtitle file and print the cue whose interval contains the
given playback time.

Examples:
  subcue at movie.srt --time 1m23s
  subcue at movie.srt -t 95s --all`,
	Args: cobra.ExactArgs(1),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)

	atCmd.Flags().
		DurationP("time", "t", 0, "Playback time (e.g. 90s, 1m23s, 1h2m3.5s)")
	atCmd.Flags().
		Bool("all", false, "Print every cue containing the time, not just one")
	_ = atCmd.MarkFlagRequired("time")
}

func runAt(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	at, _ := cmd.Flags().GetDuration("time")
	all, _ := cmd.Flags().GetBool("all")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctrl := track.New(
		&provider.File{Path: path},
		track.WithFlattener(cfg.Flattener()),
		track.WithLogger(logger),
	)
	if err := ctrl.Initialize(context.Background()); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if all {
		cues, err := ctrl.RangeAt(at)
		if err != nil {
			return err
		}
		if len(cues) == 0 {
			fmt.Printf("no cue at %s\n", at)
			return nil
		}
		for _, c := range cues {
			printCue(c.Index, c.Start, c.End, c.Text)
		}
		return nil
	}

	c, ok, err := ctrl.LookupAt(at)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("no cue at %s\n", at)
		return nil
	}
	printCue(c.Index, c.Start, c.End, c.Text)
	return nil
}

func printCue(index int, start, end time.Duration, text string) {
	fmt.Printf("%4d  %12s -> %-12s  %s\n", index, start, end, text)
}
