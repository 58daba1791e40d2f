// Package cli provides the command-line interface for hctheme.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hctheme/internal/config"
	"github.com/jmylchreest/hctheme/internal/version"
)

// app carries the state shared by every command of one invocation.
type app struct {
	verbose    bool
	quiet      bool
	configPath string

	logger hclog.Logger
	config *config.Config
}

// NewRootCmd builds the hctheme command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "hctheme",
		Short: "Perceptual colour themes from a single seed colour",
		Long: `hctheme turns one seed colour into a complete light or dark colour theme.

Colours are modelled in HCT (hue, chroma, tone): tone differences predict
contrast, so every text and surface role meets its contrast target at the
requested contrast level.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVar(&a.configPath, "config", "", "config file (default is hctheme/config.toml in the user config directory)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newSchemeCmd(a),
		newPaletteCmd(a),
		newHctCmd(a),
		newTemperatureCmd(a),
		newHarmonizeCmd(a),
		newSeedCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hctheme",
		Output: w,
		Level:  level,
	})
}

// loadConfig reads the config file and environment once per invocation.
func (a *app) loadConfig() (config.Config, error) {
	if a.config != nil {
		return *a.config, nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	a.logger.Debug("loaded config",
		"path", a.configPath,
		"variant", cfg.Variant.String(),
		"mode", cfg.Mode.String(),
		"contrast", cfg.Contrast,
		"format", string(cfg.Format),
	)
	a.config = &cfg
	return cfg, nil
}

// withOutput runs fn against stdout, or against the file at path when set.
func (a *app) withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	if err := fn(f); err != nil {
		return err
	}
	a.logger.Info("wrote output", "path", path)
	return nil
}
