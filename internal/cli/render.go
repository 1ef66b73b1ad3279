package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalite/fractalite/pkg/errors"
	"github.com/fractalite/fractalite/pkg/fractal"
	"github.com/fractalite/fractalite/pkg/httpapi"
	"github.com/fractalite/fractalite/pkg/render"
	"github.com/fractalite/fractalite/pkg/session"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	equation    string  // fractal equation to render
	bookmark    string  // bookmark name or ID to load the view from
	output      string  // output file path, empty means stdout
	format      string  // output format: "text" or "png"
	palette     string  // glyph palette: "unicode" or "ascii"
	detail      string  // bucket table: "standard" or "high"
	width       int     // grid width in cells
	height      int     // grid height in cells
	zoom        float64 // zoom factor
	centerX     float64 // view center, real axis
	centerY     float64 // view center, imaginary axis
	iterations  uint32  // iteration budget before the mode transform
	quality     bool    // raise the budget by half (cap 512)
	performance bool    // halve the budget (floor 20)
	adaptive    bool    // compute every other pixel at deep zoom
	supersample bool    // box-average a doubled grid
	legend      bool    // print the bucket legend after the grid
}

// newRenderOpts returns render options seeded from the configuration.
func (c *CLI) newRenderOpts() renderOpts {
	return renderOpts{
		equation:   "z^2+c",
		format:     "text",
		palette:    "unicode",
		detail:     "standard",
		width:      c.Config.Display.DefaultWidth,
		height:     c.Config.Display.DefaultHeight,
		zoom:       c.Config.Fractal.DefaultZoom,
		centerX:    c.Config.Fractal.DefaultCenterX,
		centerY:    c.Config.Fractal.DefaultCenterY,
		iterations: c.Config.Fractal.DefaultMaxIterations,
	}
}

// renderCommand creates the headless render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := c.newRenderOpts()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single view to stdout or a file",
		Long: `Render computes one fractal view and writes it as a text grid or a
PNG image. The view comes from flags, or from a saved bookmark with
--bookmark.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.equation, "equation", "e", opts.equation, "fractal equation")
	cmd.Flags().StringVarP(&opts.bookmark, "bookmark", "b", "", "render a saved bookmark instead of flag values")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, png")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "glyph palette: unicode, ascii")
	cmd.Flags().StringVar(&opts.detail, "detail", opts.detail, "detail level: standard, high")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "grid width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "grid height in cells")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "zoom factor")
	cmd.Flags().Float64Var(&opts.centerX, "cx", opts.centerX, "view center, real axis")
	cmd.Flags().Float64Var(&opts.centerY, "cy", opts.centerY, "view center, imaginary axis")
	cmd.Flags().Uint32Var(&opts.iterations, "iterations", opts.iterations, "iteration budget")
	cmd.Flags().BoolVar(&opts.quality, "quality", false, "quality mode (raise budget, cap 512)")
	cmd.Flags().BoolVar(&opts.performance, "performance", false, "performance mode (halve budget, floor 20)")
	cmd.Flags().BoolVar(&opts.adaptive, "adaptive", false, "adaptive sampling at deep zoom")
	cmd.Flags().BoolVar(&opts.supersample, "supersample", false, "super-sample a doubled grid")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "print the bucket legend after the grid")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}
	palette, err := render.ParsePalette(opts.palette)
	if err != nil {
		return err
	}
	detail, err := render.ParseDetail(opts.detail)
	if err != nil {
		return err
	}
	if opts.format != "text" && opts.format != "png" {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be text or png)", opts.format)
	}

	logger.Debugf("Rendering %s at (%g, %g) zoom %g", req.Variant, req.Viewport.CenterX, req.Viewport.CenterY, req.Viewport.Zoom)
	prog := newProgress(logger)

	grid, err := c.newEngine().Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %dx%d grid", grid.Width(), grid.Height()))

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "cannot create output file")
		}
		defer f.Close()
		out = f
	}

	if opts.format == "png" {
		if err := httpapi.WritePNG(out, grid, req.EffectiveBudget()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprint(out, render.Text(grid, palette, detail)); err != nil {
			return err
		}
		if opts.legend {
			printLegend(out, palette, detail)
		}
	}

	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// buildRequest assembles the generation request from flags, overlaying
// the bookmarked view when --bookmark is set.
func buildRequest(opts *renderOpts) (fractal.Request, error) {
	equation := opts.equation
	vp := fractal.Viewport{
		CenterX: opts.centerX,
		CenterY: opts.centerY,
		Zoom:    opts.zoom,
		Width:   opts.width,
		Height:  opts.height,
	}
	iterations := opts.iterations

	if opts.bookmark != "" {
		store, err := session.NewStore("")
		if err != nil {
			return fractal.Request{}, err
		}
		b, err := store.Get(opts.bookmark)
		if err != nil {
			return fractal.Request{}, err
		}
		equation = b.Equation
		vp = b.Viewport(opts.width, opts.height)
		iterations = b.MaxIterations
	}

	variant, err := fractal.ParseVariant(equation)
	if err != nil {
		return fractal.Request{}, err
	}

	req := fractal.Request{
		Variant:          variant,
		Viewport:         vp,
		MaxIterations:    iterations,
		QualityMode:      opts.quality,
		PerformanceMode:  opts.performance,
		AdaptiveSampling: opts.adaptive,
		SuperSampling:    opts.supersample,
	}
	return req, req.Validate()
}

// printLegend writes the bucket legend below the rendered grid.
func printLegend(out *os.File, p render.Palette, d render.Detail) {
	fmt.Fprintln(out)
	for _, entry := range render.Legend(p, d) {
		fmt.Fprintf(out, "%s %s\n", entry.Color, entry.Label)
	}
}
