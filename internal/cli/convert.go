package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkotla/subcue/internal/cue"
	"github.com/rkotla/subcue/internal/provider"
	"github.com/rkotla/subcue/internal/track"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Normalize a subtitle file and rewrite it as SRT or VTT",
	Long: `Decode a subtitle file, run the reconciliation passes, and write the
cleaned sequence back out.

Examples:
  subcue convert noisy.vtt -o clean.srt
  subcue convert captions.ttml --format vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	var format cue.Format
	switch strings.ToLower(formatStr) {
	case "srt":
		format = cue.FormatSRT
	case "vtt":
		format = cue.FormatVTT
	default:
		return fmt.Errorf("unsupported output format %q: use srt or vtt", formatStr)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		outputPath = base + ".clean." + formatStr
	}

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

	cues, err := ctrl.Cues()
	if err != nil {
		return err
	}

	writer, err := cue.NewWriter(format)
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

	logger.Infow("Converted subtitle file",
		"input", path,
		"output", outputPath,
		"cues", len(cues),
	)
	fmt.Printf("Wrote %d cues to %s\n", len(cues), outputPath)
	return nil
}
