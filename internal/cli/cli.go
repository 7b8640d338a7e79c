package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/buildinfo"
	"github.com/matzehuels/blockview/pkg/config"
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/observability"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "blockview"

	// configFileName is looked up in the config directory when --config is not given.
	configFileName = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blockview lays out and renders visual programming blocks",
		Long:         `Blockview is a CLI tool for measuring, laying out and rendering puzzle-piece programming blocks, with connector anchors, hit testing and highlights for left-to-right and right-to-left workspaces.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+filepath.Join("$XDG_CONFIG_HOME", appName, configFileName)+")")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.anchorsCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.samplesCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads --config, or the default config file when it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFileName)
	}

	cfg, err := config.Load(path)
	if errors.Is(err, errors.ErrCodeNotFound) && !explicit {
		c.Logger.Debug("no config file", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded config", "path", path)
	c.config = cfg
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/blockview/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/blockview/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags holds the flags shared by every command that lays out a sample.
type layoutFlags struct {
	mode      string
	rtl       bool
	scale     float64
	highlight string
	centers   bool
}

// register adds the layout flags to cmd.
func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", pipeline.ModeAuto, "input arrangement: auto, inline, external")
	cmd.Flags().BoolVar(&f.rtl, "rtl", false, "lay out right to left")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "workspace scale (default from config)")
	cmd.Flags().StringVar(&f.highlight, "highlight", "", "highlight on the root block: block, previous, next, output, input:<name>")
	cmd.Flags().BoolVar(&f.centers, "centers", false, "draw published connector centres")
}

// options builds pipeline options for name from the shared flags.
func (c *CLI) options(name string, f layoutFlags) pipeline.Options {
	cfg := c.config
	return pipeline.Options{
		Sample:    name,
		Mode:      f.mode,
		RTL:       f.rtl,
		Scale:     f.scale,
		Highlight: f.highlight,
		Centers:   f.centers,
		Config:    &cfg,
		Logger:    c.Logger,
	}
}

// completeSamples offers gallery names for the first positional argument.
func completeSamples(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return sample.Names(), cobra.ShellCompDirectiveNoFileComp
}
