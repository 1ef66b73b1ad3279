package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fractalite/fractalite/pkg/cache"
	"github.com/fractalite/fractalite/pkg/config"
	"github.com/fractalite/fractalite/pkg/fractal"
	"github.com/fractalite/fractalite/pkg/render"
	"github.com/fractalite/fractalite/pkg/session"
)

// Iteration bounds for interactive adjustment.
const (
	minInteractiveIterations = 10
	maxInteractiveIterations = 1000

	// autoResetZoom bounds auto mode; past this the tour restarts.
	autoResetZoom = 1000.0
)

// exploreCommand creates the interactive explorer command.
func (c *CLI) exploreCommand() *cobra.Command {
	var equation string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore fractals interactively in the terminal",
		Long: `Explore opens a full-screen terminal explorer. Pan with the arrow
keys, zoom with +/-, adjust the iteration budget with i/d, and switch
equations with the built-in editor. Press h inside the explorer for the
full key reference.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := fractal.ParseVariant(equation)
			if err != nil {
				return err
			}

			model := newExploreModel(c, variant, equation)
			model.ctx = cmd.Context()
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&equation, "equation", "e", "z^2+c", "starting equation")
	return cmd
}

// =============================================================================
// Model
// =============================================================================

type exploreMode int

const (
	modeInteractive exploreMode = iota
	modeAuto
	modeEditor
)

func (m exploreMode) String() string {
	switch m {
	case modeAuto:
		return "Auto-Generate"
	case modeEditor:
		return "Equation Editor"
	default:
		return "Interactive"
	}
}

// autoTickMsg drives auto-generation mode.
type autoTickMsg time.Time

// exploreModel is the bubbletea model for the explorer.
type exploreModel struct {
	ctx       context.Context
	engine    *fractal.Engine
	cache     cache.Cache
	quantizer *render.Quantizer
	cfg       config.Config
	rng       *rand.Rand

	mode     exploreMode
	showHelp bool

	variant       fractal.Variant
	equation      string
	editBuffer    string
	centerX       float64
	centerY       float64
	zoom          float64
	maxIterations uint32

	palette render.Palette
	detail  render.Detail

	qualityMode      bool
	performanceMode  bool
	adaptiveSampling bool
	superSampling    bool

	gridW int
	gridH int
	cells [][]render.Cell

	status string
}

func newExploreModel(c *CLI, variant fractal.Variant, equation string) *exploreModel {
	palette := render.PaletteASCII
	if c.Config.Display.UseUnicode {
		palette = render.PaletteUnicode
	}

	return &exploreModel{
		ctx:           context.Background(),
		engine:        c.newEngine(),
		cache:         c.newCache(),
		quantizer:     render.NewQuantizer(),
		cfg:           c.Config,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		variant:       variant,
		equation:      equation,
		centerX:       c.Config.Fractal.DefaultCenterX,
		centerY:       c.Config.Fractal.DefaultCenterY,
		zoom:          c.Config.Fractal.DefaultZoom,
		maxIterations: c.Config.Fractal.DefaultMaxIterations,
		palette:       palette,
		detail:        render.DetailStandard,
		qualityMode:   c.Config.Display.QualityMode,
		superSampling: c.Config.Display.SuperSampling,
		gridW:         c.Config.Display.DefaultWidth,
		gridH:         c.Config.Display.DefaultHeight,
		status:        "Ready",
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.gridW = max(msg.Width, 1)
		m.gridH = max(msg.Height-chromeRows, 1)
		// Cached grids have the old dimensions baked into their keys;
		// drop them along with the quantizer's retained frame.
		m.cache.Invalidate(m.ctx)
		m.quantizer.Reset()
		m.regenerate()
		return m, nil

	case autoTickMsg:
		if m.mode != modeAuto {
			return m, nil
		}
		m.autoAdvance()
		m.regenerate()
		return m, m.autoTick()

	case tea.KeyMsg:
		if m.mode == modeEditor {
			return m.updateEditor(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *exploreModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "h", "f1":
		m.showHelp = !m.showHelp
	case "1":
		m.mode = modeInteractive
		m.status = "Switched to Interactive mode"
	case "2":
		m.mode = modeAuto
		m.status = "Switched to Auto-Generate mode"
		return m, m.autoTick()
	case "3":
		m.mode = modeEditor
		m.editBuffer = m.equation
		m.status = "Equation Editor - Type new equation, Enter to apply, Esc to cancel"
	case m.cfg.Controls.ZoomInKey, "=":
		m.zoom *= m.zoomStep()
		m.status = fmt.Sprintf("Zoomed in to %.2fx", m.zoom)
		m.regenerate()
	case m.cfg.Controls.ZoomOutKey, "_":
		m.zoom /= m.zoomStep()
		m.status = fmt.Sprintf("Zoomed out to %.2fx", m.zoom)
		m.regenerate()
	case "up":
		m.pan(0, -1)
	case "down":
		m.pan(0, 1)
	case "left":
		m.pan(-1, 0)
	case "right":
		m.pan(1, 0)
	case "i":
		m.maxIterations = min(m.maxIterations+m.cfg.Controls.IterationStep, maxInteractiveIterations)
		m.status = fmt.Sprintf("Increased iterations to %d", m.maxIterations)
		m.regenerate()
	case "d":
		step := m.cfg.Controls.IterationStep
		if m.maxIterations > step+minInteractiveIterations {
			m.maxIterations -= step
		} else {
			m.maxIterations = minInteractiveIterations
		}
		m.status = fmt.Sprintf("Decreased iterations to %d", m.maxIterations)
		m.regenerate()
	case "c":
		m.centerX = m.cfg.Fractal.DefaultCenterX
		m.centerY = m.cfg.Fractal.DefaultCenterY
		m.zoom = m.cfg.Fractal.DefaultZoom
		m.status = "Reset to center view"
		m.regenerate()
	case "r", "f5", " ", "space":
		m.regenerate()
		m.status = "Fractal regenerated"
	case "u":
		if m.palette == render.PaletteUnicode {
			m.palette = render.PaletteASCII
		} else {
			m.palette = render.PaletteUnicode
		}
		m.status = fmt.Sprintf("Palette: %s", m.palette)
		m.regenerate()
	case "t":
		if m.detail == render.DetailStandard {
			m.detail = render.DetailHigh
		} else {
			m.detail = render.DetailStandard
		}
		m.status = fmt.Sprintf("Detail: %s", m.detail)
		m.regenerate()
	case "a":
		m.adaptiveSampling = !m.adaptiveSampling
		m.toggleFlag("Adaptive sampling", m.adaptiveSampling)
	case "s":
		m.superSampling = !m.superSampling
		m.toggleFlag("Super-sampling", m.superSampling)
	case "p":
		m.performanceMode = !m.performanceMode
		m.toggleFlag("Performance mode", m.performanceMode)
	case "y":
		m.qualityMode = !m.qualityMode
		m.toggleFlag("Quality mode", m.qualityMode)
	case "b":
		m.saveBookmark()
	}
	return m, nil
}

// toggleFlag records a flag change. Flags are not part of cache keys, so
// stale grids must be dropped explicitly.
func (m *exploreModel) toggleFlag(name string, on bool) {
	m.cache.Invalidate(m.ctx)
	state := "off"
	if on {
		state = "on"
	}
	m.status = fmt.Sprintf("%s %s", name, state)
	m.regenerate()
}

func (m *exploreModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		variant, err := fractal.ParseVariant(m.editBuffer)
		if err != nil {
			m.status = fmt.Sprintf("Invalid equation: %s", m.editBuffer)
			return m, nil
		}
		m.variant = variant
		m.equation = m.editBuffer
		m.mode = modeInteractive
		m.status = fmt.Sprintf("Equation set to %s", m.variant)
		m.regenerate()
	case tea.KeyEsc:
		m.mode = modeInteractive
		m.status = "Edit cancelled"
	case tea.KeyBackspace:
		if len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:len(m.editBuffer)-1]
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeySpace:
		m.editBuffer += " "
	case tea.KeyRunes:
		m.editBuffer += string(msg.Runes)
	}
	return m, nil
}

func (m *exploreModel) pan(dx, dy int) {
	step := m.cfg.Fractal.PanStep * m.cfg.Controls.PanSpeed / m.zoom
	m.centerX += float64(dx) * step
	m.centerY += float64(dy) * step
	m.status = fmt.Sprintf("Panned to (%.3f, %.3f)", m.centerX, m.centerY)
	m.regenerate()
}

func (m *exploreModel) zoomStep() float64 {
	return m.cfg.Fractal.ZoomStep * m.cfg.Controls.ZoomSpeed
}

// autoAdvance drifts the view for auto-generation mode: zoom in steadily
// with a little random pan, restarting from the home view when too deep.
func (m *exploreModel) autoAdvance() {
	m.zoom *= 1.1
	m.centerX += (m.rng.Float64() - 0.5) * 0.01 / m.zoom
	m.centerY += (m.rng.Float64() - 0.5) * 0.01 / m.zoom

	if m.zoom > autoResetZoom {
		m.zoom = m.cfg.Fractal.DefaultZoom
		m.centerX = m.cfg.Fractal.DefaultCenterX
		m.centerY = m.cfg.Fractal.DefaultCenterY
	}
}

func (m *exploreModel) autoTick() tea.Cmd {
	return tea.Tick(m.cfg.AutoGenerationInterval(), func(t time.Time) tea.Msg {
		return autoTickMsg(t)
	})
}

func (m *exploreModel) request() fractal.Request {
	return fractal.Request{
		Variant: m.variant,
		Viewport: fractal.Viewport{
			CenterX: m.centerX,
			CenterY: m.centerY,
			Zoom:    m.zoom,
			Width:   m.gridW,
			Height:  m.gridH,
		},
		MaxIterations:    m.maxIterations,
		QualityMode:      m.qualityMode,
		PerformanceMode:  m.performanceMode,
		AdaptiveSampling: m.adaptiveSampling,
		SuperSampling:    m.superSampling,
	}
}

func (m *exploreModel) regenerate() {
	grid, err := cache.GetOrCompute(m.ctx, m.cache, m.request(), m.engine.Generate)
	if err != nil {
		m.status = fmt.Sprintf("Generation failed: %v", err)
		return
	}
	m.cells = m.quantizer.Quantize(grid, m.palette, m.detail)
}

func (m *exploreModel) saveBookmark() {
	store, err := session.NewStore("")
	if err != nil {
		m.status = fmt.Sprintf("Bookmark failed: %v", err)
		return
	}
	name := fmt.Sprintf("view-%s", time.Now().Format("20060102-150405"))
	vp := fractal.Viewport{CenterX: m.centerX, CenterY: m.centerY, Zoom: m.zoom, Width: m.gridW, Height: m.gridH}
	b, err := session.NewBookmark(name, m.equation, vp, m.maxIterations)
	if err == nil {
		err = store.Add(b)
	}
	if err != nil {
		m.status = fmt.Sprintf("Bookmark failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Saved bookmark %s", name)
}

// =============================================================================
// View
// =============================================================================

// chromeRows is the number of rows reserved for the header and status bar.
const chromeRows = 2

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.helpView())
	} else {
		b.WriteString(m.gridView())
	}

	b.WriteString(styleStatusBar.Render(m.status))
	return b.String()
}

func (m *exploreModel) headerView() string {
	title := StyleTitle.Render(fmt.Sprintf("Fractalite - %s", m.mode))
	params := StyleDim.Render(fmt.Sprintf("  %s  zoom %.2fx  center (%.3f, %.3f)  iter %d",
		m.variant, m.zoom, m.centerX, m.centerY, m.maxIterations))
	if m.mode == modeEditor {
		return title + styleEditing.Render("  > "+m.editBuffer+"_")
	}
	return title + params + m.flagMarkers()
}

// flagMarkers renders the active sampling/budget flags. Performance
// overrides quality when both are set, so that combination gets flagged.
func (m *exploreModel) flagMarkers() string {
	var marks []string
	if m.adaptiveSampling {
		marks = append(marks, StyleSuccess.Render("adaptive"))
	}
	if m.superSampling {
		marks = append(marks, StyleSuccess.Render("supersample"))
	}
	if m.performanceMode {
		marks = append(marks, StyleSuccess.Render("perf"))
	}
	if m.qualityMode {
		if m.performanceMode {
			marks = append(marks, StyleWarning.Render("quality!"))
		} else {
			marks = append(marks, StyleSuccess.Render("quality"))
		}
	}
	if len(marks) == 0 {
		return ""
	}
	return "  [" + strings.Join(marks, " ") + "]"
}

func (m *exploreModel) gridView() string {
	if len(m.cells) == 0 {
		m.regenerate()
	}

	var b strings.Builder
	useColors := m.cfg.Display.UseColors

	for _, row := range m.cells {
		if !useColors {
			for _, cell := range row {
				b.WriteRune(cell.Glyph)
			}
			b.WriteString("\n")
			continue
		}

		// Batch runs of the same color into one style call per run.
		var run strings.Builder
		runColor := render.ColorBlack
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(cellStyle(runColor).Render(run.String()))
				run.Reset()
			}
		}
		for _, cell := range row {
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Glyph)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

func (m *exploreModel) helpView() string {
	help := `FRACTALITE HELP

Modes:
  1        Interactive mode
  2        Auto-generation mode
  3        Equation editor

Navigation:
  arrows   Pan around
  +/=      Zoom in
  -        Zoom out
  c        Reset to home view

Parameters:
  i / d    More / fewer iterations
  r/space  Regenerate
  u        Toggle unicode/ascii palette
  t        Toggle detail level
  a        Toggle adaptive sampling
  s        Toggle super-sampling
  p        Toggle performance mode
  y        Toggle quality mode

General:
  b        Save bookmark of current view
  h        Toggle this help
  q/esc    Quit

Equations: z^2+c, z^N+c, conj(z)^2+c, abs(z)^2+c, julia(RE,IM)
`
	rows := strings.Count(help, "\n")
	for rows < m.gridH {
		help += "\n"
		rows++
	}
	return styleHelp.Render(help)
}
