// Package httpapi exposes the engine over HTTP for headless rendering.
//
// Routes:
//
//	GET /healthz          liveness probe
//	GET /render           render a view as text or PNG
//
// The render endpoint takes the view as query parameters (equation,
// cx, cy, zoom, width, height, iterations) plus output controls
// (format=text|png, palette, detail).
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fractalite/fractalite/pkg/cache"
	"github.com/fractalite/fractalite/pkg/errors"
	"github.com/fractalite/fractalite/pkg/fractal"
	"github.com/fractalite/fractalite/pkg/render"
)

// Render size limits. Anything larger is rejected up front instead of
// tying a worker pool to one request.
const (
	maxDimension  = 4096
	maxIterations = 100000
)

// Server handles render requests. Results go through the shared cache,
// so repeated views of the same region are served without recomputation.
type Server struct {
	engine *fractal.Engine
	cache  cache.Cache
}

// NewServer wires an engine and cache into a request handler. A nil
// cache disables result reuse.
func NewServer(engine *fractal.Engine, c cache.Cache) *Server {
	if c == nil {
		c = cache.Null{}
	}
	return &Server{engine: engine, cache: c}
}

// Routes builds the chi router for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/render", s.handleRender)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	grid, err := cache.GetOrCompute(r.Context(), s.cache, req.request, s.engine.Generate)
	if err != nil {
		writeError(w, err)
		return
	}

	switch req.format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
		if err := WritePNG(w, grid, req.request.EffectiveBudget()); err != nil {
			writeError(w, err)
		}
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(render.Text(grid, req.palette, req.detail)))
	}
}

type renderRequest struct {
	request fractal.Request
	format  string
	palette render.Palette
	detail  render.Detail
}

func parseRenderRequest(r *http.Request) (renderRequest, error) {
	q := r.URL.Query()

	equation := q.Get("equation")
	if equation == "" {
		equation = "z^2+c"
	}
	variant, err := fractal.ParseVariant(equation)
	if err != nil {
		return renderRequest{}, err
	}

	cx, err := floatParam(q.Get("cx"), -0.5)
	if err != nil {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "invalid cx: %s", q.Get("cx"))
	}
	cy, err := floatParam(q.Get("cy"), 0)
	if err != nil {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "invalid cy: %s", q.Get("cy"))
	}
	zoom, err := floatParam(q.Get("zoom"), 1)
	if err != nil {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "invalid zoom: %s", q.Get("zoom"))
	}
	width, err := intParam(q.Get("width"), 80)
	if err != nil || width < 1 || width > maxDimension {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "width must be 1..%d", maxDimension)
	}
	height, err := intParam(q.Get("height"), 40)
	if err != nil || height < 1 || height > maxDimension {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "height must be 1..%d", maxDimension)
	}
	iterations, err := intParam(q.Get("iterations"), 100)
	if err != nil || iterations < 1 || iterations > maxIterations {
		return renderRequest{}, errors.New(errors.ErrCodeInvalidRequest, "iterations must be 1..%d", maxIterations)
	}

	format := q.Get("format")
	switch format {
	case "", "text":
		format = "text"
	case "png":
	default:
		return renderRequest{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}

	palette := render.PaletteUnicode
	if v := q.Get("palette"); v != "" {
		if palette, err = render.ParsePalette(v); err != nil {
			return renderRequest{}, err
		}
	}
	detail := render.DetailStandard
	if v := q.Get("detail"); v != "" {
		if detail, err = render.ParseDetail(v); err != nil {
			return renderRequest{}, err
		}
	}

	req := fractal.Request{
		Variant: variant,
		Viewport: fractal.Viewport{
			CenterX: cx,
			CenterY: cy,
			Zoom:    zoom,
			Width:   width,
			Height:  height,
		},
		MaxIterations:    uint32(iterations),
		QualityMode:      boolParam(q.Get("quality")),
		PerformanceMode:  boolParam(q.Get("performance")),
		AdaptiveSampling: boolParam(q.Get("adaptive")),
		SuperSampling:    boolParam(q.Get("supersample")),
	}
	if err := req.Validate(); err != nil {
		return renderRequest{}, err
	}
	return renderRequest{request: req, format: format, palette: palette, detail: detail}, nil
}

func floatParam(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidViewport, errors.ErrCodeInvalidRequest,
		errors.ErrCodeInvalidVariant, errors.ErrCodeInvalidEquation, errors.ErrCodeInvalidPalette,
		errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeBookmarkNotFound:
		status = http.StatusNotFound
	}
	http.Error(w, errors.UserMessage(err), status)
}
