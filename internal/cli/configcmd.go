package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fractalite/fractalite/pkg/config"
)

// configCommand creates the configuration management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			if !force {
				if _, err := config.Load(path); err == nil {
					printWarning("Config already exists at %s (use --force to overwrite)", path)
					return nil
				}
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			printSuccess("Wrote default configuration")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			printKeyValue("Display", fmt.Sprintf("%dx%d, colors=%t, unicode=%t",
				cfg.Display.DefaultWidth, cfg.Display.DefaultHeight, cfg.Display.UseColors, cfg.Display.UseUnicode))
			printKeyValue("View", fmt.Sprintf("center (%g, %g), zoom %g",
				cfg.Fractal.DefaultCenterX, cfg.Fractal.DefaultCenterY, cfg.Fractal.DefaultZoom))
			printKeyValue("Iterations", fmt.Sprintf("%d (step %d)",
				cfg.Fractal.DefaultMaxIterations, cfg.Controls.IterationStep))
			printKeyValue("Navigation", fmt.Sprintf("zoom step %g, pan step %g",
				cfg.Fractal.ZoomStep, cfg.Fractal.PanStep))
			printKeyValue("Parallel", fmt.Sprintf("%t (threads %d)",
				cfg.Performance.UseParallelProcessing, cfg.Performance.ThreadCount))
			printKeyValue("Cache", fmt.Sprintf("enabled=%t, size %d",
				cfg.Performance.EnableCaching, cfg.Performance.MaxCacheSize))
			printKeyValue("Auto mode", cfg.AutoGenerationInterval().String())
			return nil
		},
	}
}
