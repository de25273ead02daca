package cli

import (
	"github.com/spf13/cobra"

	"github.com/rkotla/subcue/internal/config"
	"github.com/rkotla/subcue/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subcue",
	Short: "Decode subtitle files into timed cues and look them up by playback time",
	Long: `Subcue decodes subtitle/caption files (SRT, WebVTT, TTML, DFXP) into an
ordered, de-duplicated sequence of timed cues.

Duplicate and near-duplicate cues are merged, markup is stripped, and the
result can be queried for the cue active at any playback time.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
