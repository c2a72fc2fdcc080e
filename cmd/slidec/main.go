// Command slidec compiles slide scripts into laid-out slides, structure
// analyses, and topic graphs.
//
//	slidec compile deck.txt --layout grid --width 1024
//	cat response.md | slidec analyze
//	slidec graph deck.txt
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/slidecraft"
	"github.com/tsawler/slidecraft/config"
	"github.com/tsawler/slidecraft/internal/logging"
	"github.com/tsawler/slidecraft/ocr"
)

var (
	// Global flags
	verbose    bool
	configPath string
	width      float64
	height     float64
	layoutName string
	fitText    bool
	unwrap     bool
	imageText  bool
	measurer   string

	// Analyze flags
	markdown bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slidec",
	Short: "Compile slide scripts into positioned slides",
	Long: `slidec reads a slide script from a file or stdin, where each slide starts
with a "Page N:" marker followed by Title:, Subtitle:, Bullet: and Draw:
directives, and writes JSON to stdout.

Generator output wrapped in HTML or markdown code fences is unwrapped first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg = config.Default()
		if configPath != "" {
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a script into a JSON deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compiler(cmd, args)
		if err != nil {
			return err
		}
		deck, warnings, err := c.Deck()
		if err != nil {
			return err
		}
		reportWarnings(warnings)
		return writeJSON(cmd.OutOrStdout(), deck)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Print the structure analysis of a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compiler(cmd, args)
		if err != nil {
			return err
		}
		a, warnings, err := c.Analyze()
		if err != nil {
			return err
		}
		reportWarnings(warnings)
		if markdown {
			_, err = io.WriteString(cmd.OutOrStdout(), a.Markdown())
			return err
		}
		return writeJSON(cmd.OutOrStdout(), a)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Print the topic graph of a script as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compiler(cmd, args)
		if err != nil {
			return err
		}
		out, warnings, err := c.Graph()
		if err != nil {
			return err
		}
		reportWarnings(warnings)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages [file]",
	Short: "Report the number of pages in a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compiler(cmd, args)
		if err != nil {
			return err
		}
		n, err := c.PageCount()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), struct {
			Pages int  `json:"pages"`
			Valid bool `json:"valid"`
		}{n, n > 0})
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Print the outline of a script as markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compiler(cmd, args)
		if err != nil {
			return err
		}
		a, warnings, err := c.Analyze()
		if err != nil {
			return err
		}
		reportWarnings(warnings)
		_, err = io.WriteString(cmd.OutOrStdout(), a.Markdown())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().Float64VarP(&width, "width", "w", 800, "Slide width")
	rootCmd.PersistentFlags().Float64Var(&height, "height", 0, "Slide height (default: derived from width)")
	rootCmd.PersistentFlags().StringVarP(&layoutName, "layout", "l", "", "Layout strategy: centered, left, grid, flow, compact")
	rootCmd.PersistentFlags().BoolVar(&fitText, "fit", false, "Fit text sizes to the slide before layout")
	rootCmd.PersistentFlags().BoolVar(&unwrap, "unwrap", true, "Unwrap HTML or markdown code fences around the script")
	rootCmd.PersistentFlags().StringVar(&measurer, "measurer", "", "Text measurement: face, metrics, monospace")
	rootCmd.PersistentFlags().BoolVar(&imageText, "image-text", false, "Count image alt text and OCR text in the analysis")

	analyzeCmd.Flags().BoolVar(&markdown, "markdown", false, "Print the analysis as a markdown outline")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(outlineCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the configuration file.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("width") || configPath == "" {
		cfg.Slide.Width = width
	}
	if flags.Changed("height") {
		cfg.Slide.Height = height
	}
	if flags.Changed("layout") {
		cfg.Slide.Layout = layoutName
	}
	if flags.Changed("fit") {
		cfg.Slide.FitText = fitText
	}
	if flags.Changed("measurer") {
		cfg.Slide.Measurer = measurer
	}
	if flags.Changed("image-text") {
		cfg.Analysis.ImageText = imageText
	}
}

// compiler reads the script named by args, or stdin, and configures a
// Compiler from the loaded configuration and flags.
func compiler(cmd *cobra.Command, args []string) (*slidecraft.Compiler, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	c := slidecraft.Compile(text).Config(cfg).Logger(logger)
	if unwrap {
		c = c.Unwrap()
	}
	if cfg.Analysis.ImageText {
		client, err := ocr.New(ocr.WithLanguages("eng", "chi_sim"))
		if err != nil {
			// Alt text is still counted without an OCR engine.
			logger.Warn("OCR unavailable", zap.Error(err))
			c = c.ImageText(altTextOnly{})
		} else {
			cobra.OnFinalize(func() { _ = client.Close() })
			c = c.ImageText(client)
		}
	}
	return c, nil
}

// altTextOnly recognizes nothing; the analyzer still reads alt text.
type altTextOnly struct{}

func (altTextOnly) RecognizeImage([]byte) (string, error) { return "", ocr.ErrNoImageData }

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}

func reportWarnings(warnings []slidecraft.Warning) {
	for _, w := range warnings {
		logger.Warn("dropped directive",
			zap.Int("page", w.Page),
			zap.String("directive", w.Directive),
			zap.Error(w.Err),
		)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
