package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-procedure"
	"github.com/yarlson/go-procedure/internal/config"
)

var cfgFile string

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// Root command flags
var (
	rootPadding int
	rootColor   string
	rootVerbose bool
)

// NewRootCmd creates the root command for the procedure CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "procedure",
		Short: "Labeled progress and status lines for terminal programs",
		Long: `procedure renders a colorized, percentage-annotated progress line while an
operation runs and turns it into a success or failure line when it completes.

The subcommands replay the bundled demo, run scripted operations from a YAML
file, or print one-shot status lines.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./procedure.yaml, then ~/.config/procedure/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&rootPadding, "padding", 0, "width of the action column (0 uses config)")
	rootCmd.PersistentFlags().StringVar(&rootColor, "color", "", "color mode: auto, always or never (empty uses config)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "print diagnostics to stderr")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPrintCmd())

	return rootCmd
}

// loadConfig reads the config and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if rootPadding > 0 {
		cfg.Display.Padding = rootPadding
	}
	if rootColor != "" {
		cfg.Display.Color = rootColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debugf(cmd, "config: padding=%d color=%s\n", cfg.Display.Padding, cfg.Display.Color)
	return cfg, nil
}

// newPrinter builds a printer over the command's stdout.
func newPrinter(cmd *cobra.Command, cfg *config.Config) *procedure.Printer {
	out := cmd.OutOrStdout()
	return procedure.NewPrinter(out,
		procedure.WithStyler(styler(cfg.Display.Color, out)),
		procedure.WithPadding(cfg.Display.Padding),
	)
}

func styler(mode string, out io.Writer) procedure.Styler {
	switch mode {
	case config.ColorAlways:
		return procedure.NewColorStyler()
	case config.ColorNever:
		return procedure.PlainStyler{}
	default:
		return procedure.DetectStyler(out)
	}
}

func debugf(cmd *cobra.Command, format string, args ...any) {
	if !rootVerbose {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
