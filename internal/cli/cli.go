// Package cli implements the fractalite command-line interface.
//
// This package provides commands for exploring fractals interactively in
// the terminal, rendering views headlessly to text or PNG, serving the
// engine over HTTP, and managing bookmarks and configuration. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - explore: Interactive terminal explorer (pan, zoom, edit equations)
//   - render: Render a single view to stdout or a file
//   - serve: Expose the render engine over HTTP
//   - bookmark: Save and restore named views
//   - config: Inspect and initialize the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fractalite/fractalite/pkg/buildinfo"
	"github.com/fractalite/fractalite/pkg/cache"
	"github.com/fractalite/fractalite/pkg/config"
	"github.com/fractalite/fractalite/pkg/fractal"
)

// appName is the application name used for directories and display.
const appName = "fractalite"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration (falling back to built-in defaults).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
	if path, err := config.DefaultPath(); err == nil {
		c.Config = config.LoadOrDefault(path)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fractalite renders escape-time fractals in your terminal",
		Long:         `Fractalite is a terminal fractal explorer. It renders Mandelbrot, Julia, Burning Ship, Tricorn, and Multibrot sets as colored glyph grids, with interactive navigation, headless rendering, and an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.bookmarkCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newEngine builds an engine honoring the configured thread count.
func (c *CLI) newEngine() *fractal.Engine {
	if !c.Config.Performance.UseParallelProcessing {
		return fractal.NewEngineWithWorkers(1)
	}
	if n := c.Config.Performance.ThreadCount; n > 0 {
		return fractal.NewEngineWithWorkers(n)
	}
	return fractal.NewEngine()
}

// newCache builds the result cache, or a null cache when caching is
// disabled in the configuration.
func (c *CLI) newCache() cache.Cache {
	if !c.Config.Performance.EnableCaching {
		return cache.Null{}
	}
	return cache.NewMemory(c.Config.Performance.MaxCacheSize)
}
