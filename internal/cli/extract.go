package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkotla/subcue/internal/cue"
	"github.com/rkotla/subcue/internal/provider"
	"github.com/rkotla/subcue/internal/track"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract and decode an embedded subtitle track from a media file",
	Long: `Extract a subtitle stream from a video container using ffmpeg, then
decode and reconcile it like any subtitle file.

Requires ffmpeg on PATH.

Examples:
  subcue extract movie.mkv
  subcue extract movie.mkv --stream 1 -o track.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}

	stream, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Infow("Extracting subtitle stream",
		"media", mediaPath,
		"stream", stream,
	)

	ctrl := track.New(
		&provider.Media{Path: mediaPath, StreamIndex: stream},
		track.WithFlattener(cfg.Flattener()),
		track.WithLogger(logger),
	)
	if err := ctrl.Initialize(context.Background()); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	cues, err := ctrl.Cues()
	if err != nil {
		return err
	}

	if outputPath != "" {
		writer, err := cue.NewWriter(cue.FormatSRT)
		if err != nil {
			return err
		}
		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = out.Close()
		}()
		if err := writer.Write(out, cues); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		fmt.Printf("Wrote %d cues to %s\n", len(cues), outputPath)
		return nil
	}

	for _, c := range cues {
		fmt.Printf("%4d  %12s -> %-12s  %s\n", c.Index, c.Start, c.End, c.Text)
	}
	fmt.Printf("\n%d cues\n", len(cues))
	return nil
}
