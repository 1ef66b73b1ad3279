package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fractalite/fractalite/pkg/errors"
	"github.com/fractalite/fractalite/pkg/fractal"
	"github.com/fractalite/fractalite/pkg/session"
)

// bookmarkCommand creates the bookmark management command.
func (c *CLI) bookmarkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Save and restore named views",
	}

	cmd.AddCommand(c.bookmarkListCommand())
	cmd.AddCommand(c.bookmarkAddCommand())
	cmd.AddCommand(c.bookmarkRemoveCommand())
	cmd.AddCommand(c.bookmarkShowCommand())

	return cmd
}

// bookmarkListCommand creates the "bookmark list" subcommand.
func (c *CLI) bookmarkListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}
			bookmarks, err := store.List()
			if err != nil {
				return err
			}
			if len(bookmarks) == 0 {
				printInfo("No bookmarks saved")
				return nil
			}

			for _, b := range bookmarks {
				fmt.Println(StyleHighlight.Render(b.Name))
				printDetail("%s  zoom %.2fx  center (%.4f, %.4f)  iter %d",
					b.Equation, b.Zoom, b.CenterX, b.CenterY, b.MaxIterations)
				printDetail("id %s  saved %s", b.ID, b.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// bookmarkAddCommand creates the "bookmark add" subcommand.
func (c *CLI) bookmarkAddCommand() *cobra.Command {
	var (
		equation   string
		zoom       float64
		centerX    float64
		centerY    float64
		iterations uint32
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Save a view under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}
			vp := fractal.Viewport{
				CenterX: centerX,
				CenterY: centerY,
				Zoom:    zoom,
				Width:   c.Config.Display.DefaultWidth,
				Height:  c.Config.Display.DefaultHeight,
			}
			b, err := session.NewBookmark(args[0], equation, vp, iterations)
			if err != nil {
				return err
			}
			if err := store.Add(b); err != nil {
				return err
			}
			printSuccess("Saved bookmark %q", b.Name)
			printDetail("File: %s", store.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&equation, "equation", "e", "z^2+c", "fractal equation")
	cmd.Flags().Float64Var(&zoom, "zoom", c.Config.Fractal.DefaultZoom, "zoom factor")
	cmd.Flags().Float64Var(&centerX, "cx", c.Config.Fractal.DefaultCenterX, "view center, real axis")
	cmd.Flags().Float64Var(&centerY, "cy", c.Config.Fractal.DefaultCenterY, "view center, imaginary axis")
	cmd.Flags().Uint32Var(&iterations, "iterations", c.Config.Fractal.DefaultMaxIterations, "iteration budget")

	return cmd
}

// bookmarkRemoveCommand creates the "bookmark remove" subcommand.
func (c *CLI) bookmarkRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [name-or-id]",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				if errors.Is(err, errors.ErrCodeBookmarkNotFound) {
					printError("No bookmark matching %q", args[0])
				}
				return err
			}
			printSuccess("Removed bookmark %q", args[0])
			return nil
		},
	}
}

// bookmarkShowCommand creates the "bookmark show" subcommand.
func (c *CLI) bookmarkShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name-or-id]",
		Short: "Print one bookmark's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore("")
			if err != nil {
				return err
			}
			b, err := store.Get(args[0])
			if err != nil {
				return err
			}
			printKeyValue("Name", b.Name)
			printKeyValue("ID", b.ID)
			printKeyValue("Equation", b.Equation)
			printKeyValue("Center", fmt.Sprintf("(%g, %g)", b.CenterX, b.CenterY))
			printKeyValue("Zoom", fmt.Sprintf("%g", b.Zoom))
			printKeyValue("Iterations", fmt.Sprintf("%d", b.MaxIterations))
			printKeyValue("Saved", b.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
