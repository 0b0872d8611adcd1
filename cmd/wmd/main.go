// Command wmd converts a web page or a local HTML file to Markdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/birdblues/wmd/converter"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagOutput   string
	flagConfig   string
	flagNoImages bool
	flagImageDir string
	flagWidth    int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "wmd <url-or-file>",
	Short: "Convert a web page to Markdown",
	Long: `wmd fetches a web page (or reads a local HTML file), extracts the main
content, and converts it to Markdown. Images are downloaded next to the
output unless disabled.

Examples:
  wmd https://example.com/article -o article.md
  wmd page.html --no-images
  wmd https://example.com --config wmd.yaml --width 100`,
	Args: cobra.ExactArgs(1),
}

func init() {
	// Assigned here rather than in the composite literal: runConvert reaches
	// rootCmd through resolveConfig, so naming it in the initializer would
	// form an initialization cycle.
	rootCmd.RunE = runConvert
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write Markdown to this file (default: stdout)")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Config file (JSON or YAML)")
	rootCmd.Flags().BoolVar(&flagNoImages, "no-images", false, "Keep remote image URLs instead of downloading")
	rootCmd.Flags().StringVar(&flagImageDir, "images-dir", "", "Directory for downloaded images")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Wrap lines at this width (0 disables wrapping)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})

	conv, err := converter.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var result converter.Result
	if isURL(source) {
		result, err = conv.ConvertURL(ctx, source)
	} else {
		result, err = conv.ConvertFile(ctx, source, "")
	}
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		cfg.Logger.Warn(w.Message, "type", w.Type, "subject", w.Subject)
	}

	if flagOutput == "" {
		fmt.Println(result.Markdown)
		return nil
	}
	if err := converter.SaveToFile(result.Markdown, flagOutput); err != nil {
		return err
	}
	cfg.Logger.Info("saved markdown", "path", flagOutput)
	return nil
}

// resolveConfig builds the effective config from the config file (or the
// defaults) plus command-line overrides.
func resolveConfig() (converter.Config, error) {
	cfg := converter.DefaultConfig()
	if flagConfig != "" {
		loaded, err := converter.LoadConfig(flagConfig)
		if err != nil {
			return converter.Config{}, err
		}
		cfg = loaded
	}

	if flagNoImages {
		cfg.DownloadImages = false
	}
	if flagImageDir != "" {
		cfg.ImageFolder = flagImageDir
	}
	if rootCmd.Flags().Changed("width") {
		cfg.LineWidth = flagWidth
	}
	return cfg, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
