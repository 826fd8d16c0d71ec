package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotecraft/pkg/buildinfo"
	"github.com/matzehuels/quotecraft/pkg/cache"
	"github.com/matzehuels/quotecraft/pkg/config"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In and Out carry interactive prompts. They default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	setLevel(c.Logger, level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it behaves like "create".
func (c *CLI) RootCommand() *cobra.Command {
	var opts createOpts

	root := &cobra.Command{
		Use:   "quotecraft",
		Short: "Quotecraft turns quotes into share-ready images",
		Long: `Quotecraft composes a quote image: it lays down a background (solid, gradient,
pattern, or photo), adds the overlay graphic when present, draws your text with
a drop shadow, and saves a JPEG. Anything not given as a flag is asked for.`,
		Version:      buildinfo.Current().Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(log.WithContext(cmd.Context(), c.Logger))
			c.installHooks()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCreate(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log render stages and cache activity")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/quotecraft/config.toml)")
	bindCreateFlags(root, &opts)

	root.AddCommand(c.createCommand())
	root.AddCommand(c.backgroundsCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and logs any unknown keys.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, warnings, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	for _, w := range warnings {
		c.Logger.Warn(w)
	}
	return cfg, nil
}

// stdinIsTerminal reports whether prompts can be answered by a person.
func (c *CLI) stdinIsTerminal() bool {
	f, ok := c.In.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := config.CacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
