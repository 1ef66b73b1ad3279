// Package session persists named view bookmarks between runs.
//
// A Bookmark captures everything needed to return to a view: the
// equation, the viewport center and zoom, and the iteration budget.
// Bookmarks are stored as a single JSON file in the user's config
// directory.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fractalite/fractalite/pkg/errors"
	"github.com/fractalite/fractalite/pkg/fractal"
)

// Bookmark is a saved view.
type Bookmark struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Equation      string    `json:"equation"`
	CenterX       float64   `json:"center_x"`
	CenterY       float64   `json:"center_y"`
	Zoom          float64   `json:"zoom"`
	MaxIterations uint32    `json:"max_iterations"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewBookmark captures the given view under a name. The equation is
// validated before the bookmark is created.
func NewBookmark(name, equation string, vp fractal.Viewport, maxIterations uint32) (Bookmark, error) {
	if name == "" {
		return Bookmark{}, errors.New(errors.ErrCodeInvalidInput, "bookmark name cannot be empty")
	}
	if _, err := fractal.ParseVariant(equation); err != nil {
		return Bookmark{}, err
	}
	return Bookmark{
		ID:            uuid.NewString(),
		Name:          name,
		Equation:      equation,
		CenterX:       vp.CenterX,
		CenterY:       vp.CenterY,
		Zoom:          vp.Zoom,
		MaxIterations: maxIterations,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Viewport reconstructs the bookmarked view at the given terminal size.
func (b Bookmark) Viewport(width, height int) fractal.Viewport {
	return fractal.Viewport{
		CenterX: b.CenterX,
		CenterY: b.CenterY,
		Zoom:    b.Zoom,
		Width:   width,
		Height:  height,
	}
}

// Variant parses the bookmarked equation.
func (b Bookmark) Variant() (fractal.Variant, error) {
	return fractal.ParseVariant(b.Equation)
}

// sortBookmarks orders bookmarks newest first, name as tiebreak.
func sortBookmarks(bookmarks []Bookmark) {
	sort.Slice(bookmarks, func(i, j int) bool {
		if !bookmarks[i].CreatedAt.Equal(bookmarks[j].CreatedAt) {
			return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
		}
		return bookmarks[i].Name < bookmarks[j].Name
	})
}
