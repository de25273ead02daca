package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkotla/subcue/internal/provider"
	"github.com/rkotla/subcue/internal/track"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Decode a subtitle file and report the reconciled cues",
	Long: `Decode a subtitle file, run the reconciliation passes, and print the
resulting cue sequence.

Examples:
  subcue inspect movie.srt
  subcue inspect episode.vtt --text
  subcue inspect captions.ttml -v`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Bool("text", false, "Print only the joined cue text")
	inspectCmd.Flags().
		String("separator", "\n", "Separator for joined text output")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	textOnly, _ := cmd.Flags().GetBool("text")
	separator, _ := cmd.Flags().GetString("separator")

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

	if textOnly {
		joined, err := ctrl.Joined(separator)
		if err != nil {
			return err
		}
		fmt.Println(joined)
		return nil
	}

	cues, err := ctrl.Cues()
	if err != nil {
		return err
	}
	for _, c := range cues {
		fmt.Printf("%4d  %12s -> %-12s  %s\n", c.Index, c.Start, c.End, c.Text)
	}
	fmt.Printf("\n%d cues\n", len(cues))
	return nil
}
