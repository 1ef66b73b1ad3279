package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fractalite/fractalite/pkg/errors"
	"github.com/fractalite/fractalite/pkg/fractal"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "bookmarks.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func testBookmark(t *testing.T, name string) Bookmark {
	t.Helper()
	vp := fractal.Viewport{CenterX: -0.745, CenterY: 0.113, Zoom: 250, Width: 80, Height: 40}
	b, err := NewBookmark(name, "z^2+c", vp, 300)
	if err != nil {
		t.Fatalf("NewBookmark: %v", err)
	}
	return b
}

func TestNewBookmarkValidation(t *testing.T) {
	vp := fractal.Viewport{Zoom: 1, Width: 10, Height: 10}
	if _, err := NewBookmark("", "z^2+c", vp, 100); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := NewBookmark("bad", "", vp, 100); err == nil {
		t.Error("empty equation should be rejected")
	}

	b := testBookmark(t, "seahorse")
	if b.ID == "" {
		t.Error("bookmark should get a generated ID")
	}
	if b.CreatedAt.IsZero() {
		t.Error("bookmark should record creation time")
	}

	v, err := b.Variant()
	if err != nil {
		t.Fatalf("Variant: %v", err)
	}
	if v != fractal.Mandelbrot() {
		t.Errorf("variant = %v, want Mandelbrot", v)
	}
}

func TestBookmarkViewport(t *testing.T) {
	b := testBookmark(t, "seahorse")
	vp := b.Viewport(120, 60)
	if vp.CenterX != -0.745 || vp.CenterY != 0.113 || vp.Zoom != 250 {
		t.Errorf("viewport plane state not preserved: %+v", vp)
	}
	if vp.Width != 120 || vp.Height != 60 {
		t.Errorf("viewport should take the requested size, got %dx%d", vp.Width, vp.Height)
	}
}

func TestStoreAddGetRemove(t *testing.T) {
	s := testStore(t)

	b := testBookmark(t, "seahorse")
	if err := s.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}

	byID, err := s.Get(b.ID)
	if err != nil {
		t.Fatalf("Get by ID: %v", err)
	}
	byName, err := s.Get("seahorse")
	if err != nil {
		t.Fatalf("Get by name: %v", err)
	}
	if byID.ID != b.ID || byName.ID != b.ID {
		t.Error("lookups should return the stored bookmark")
	}

	if err := s.Remove("seahorse"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get("seahorse"); errors.GetCode(err) != errors.ErrCodeBookmarkNotFound {
		t.Errorf("expected bookmark-not-found after removal, got %v", err)
	}
}

func TestStoreRejectsDuplicateNames(t *testing.T) {
	s := testStore(t)
	if err := s.Add(testBookmark(t, "dup")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testBookmark(t, "dup")); err == nil {
		t.Error("duplicate name should be rejected")
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")

	s1, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Add(testBookmark(t, "valley")); err != nil {
		t.Fatal(err)
	}

	s2, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Get("valley")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Equation != "z^2+c" || got.Zoom != 250 {
		t.Errorf("reloaded bookmark lost fields: %+v", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)

	older := testBookmark(t, "older")
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testBookmark(t, "newer")
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := s.Add(older); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(newer); err != nil {
		t.Fatal(err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "newer" || list[1].Name != "older" {
		t.Errorf("unexpected order: %+v", list)
	}
}

func TestEmptyStoreList(t *testing.T) {
	s := testStore(t)
	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("fresh store should be empty, got %d", len(list))
	}
}
