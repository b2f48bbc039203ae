// Package surface renders the hotspots of a category on either a flat image or
// a 3D scene. Both variants share one interface so callers never need to know
// which one is mounted.
package surface

import (
	"fmt"
	"strings"
	"sync"

	"lexiscope/internal/model"
)

// Variant names a rendering surface. The values double as tab names.
type Variant string

const (
	VariantImage Variant = "image"
	VariantScene Variant = "3d"
)

// ParseVariant accepts "image", "3d" and "model3d".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image":
		return VariantImage, nil
	case "3d", "model3d", "scene":
		return VariantScene, nil
	}
	return "", fmt.Errorf("unknown surface variant %q: %w", s, model.ErrInvalidInput)
}

// LabelStyle tells the front end how to draw a visible label.
type LabelStyle string

const (
	LabelHidden  LabelStyle = ""
	LabelPanel   LabelStyle = "panel"
	LabelTooltip LabelStyle = "tooltip"
)

// Point is a coordinate in the variant's own space: percent of the surface
// for images, scene units for 3D.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Marker is one rendered hotspot.
type Marker struct {
	HotspotID    string         `json:"hotspot_id"`
	Position     model.Position `json:"position"`
	Anchor       Point          `json:"anchor"`
	LabelAnchor  Point          `json:"label_anchor"`
	Label        string         `json:"label"`
	LabelVisible bool           `json:"label_visible"`
	LabelStyle   LabelStyle     `json:"label_style,omitempty"`
	Hovered      bool           `json:"hovered"`
}

// View is the render model of a surface.
type View struct {
	Variant Variant  `json:"variant"`
	Asset   string   `json:"asset"`
	Markers []Marker `json:"markers"`
}

// ActivateFunc receives the hotspot that was activated.
type ActivateFunc func(model.Hotspot)

// Options configure a surface.
type Options struct {
	ShowLabels     bool
	StudyLanguages []string
	OnActivate     ActivateFunc
}

// Surface is implemented by the image and the scene variant.
type Surface interface {
	Variant() Variant
	Asset() string
	Render() View
	Activate(hotspotID string) (model.Hotspot, error)
	Hover(hotspotID string) error
	Leave()
	Hovered() string
}

// placer maps a normalized position onto the variant's space.
type placer interface {
	anchor(p model.Position) Point
	labelAnchor(p model.Position) Point
}

type surface struct {
	variant  Variant
	asset    string
	hotspots []model.Hotspot
	opts     Options
	place    placer

	mu      sync.Mutex
	hovered string
}

func newSurface(v Variant, asset string, hotspots []model.Hotspot, opts Options, p placer) *surface {
	hs := make([]model.Hotspot, len(hotspots))
	copy(hs, hotspots)
	opts.StudyLanguages = append([]string(nil), opts.StudyLanguages...)
	return &surface{variant: v, asset: asset, hotspots: hs, opts: opts, place: p}
}

func (s *surface) Variant() Variant { return s.variant }
func (s *surface) Asset() string    { return s.asset }

func (s *surface) Render() View {
	s.mu.Lock()
	hovered := s.hovered
	s.mu.Unlock()

	markers := make([]Marker, 0, len(s.hotspots))
	for _, h := range s.hotspots {
		isHovered := h.ID == hovered
		m := Marker{
			HotspotID:    h.ID,
			Position:     h.Position,
			Anchor:       s.place.anchor(h.Position),
			LabelAnchor:  s.place.labelAnchor(h.Position),
			Label:        DisplayText(h, s.opts.StudyLanguages),
			LabelVisible: s.opts.ShowLabels || isHovered,
			Hovered:      isHovered,
		}
		switch {
		case s.opts.ShowLabels:
			m.LabelStyle = LabelPanel
		case isHovered:
			m.LabelStyle = LabelTooltip
		}
		markers = append(markers, m)
	}
	return View{Variant: s.variant, Asset: s.asset, Markers: markers}
}

func (s *surface) lookup(id string) (model.Hotspot, error) {
	for _, h := range s.hotspots {
		if h.ID == id {
			return h, nil
		}
	}
	return model.Hotspot{}, fmt.Errorf("hotspot %q is not on this surface: %w", id, model.ErrNotFound)
}

// Activate calls the OnActivate callback with the hotspot and returns it.
func (s *surface) Activate(hotspotID string) (model.Hotspot, error) {
	h, err := s.lookup(hotspotID)
	if err != nil {
		return model.Hotspot{}, err
	}
	if s.opts.OnActivate != nil {
		s.opts.OnActivate(h)
	}
	return h, nil
}

func (s *surface) Hover(hotspotID string) error {
	if _, err := s.lookup(hotspotID); err != nil {
		return err
	}
	s.mu.Lock()
	s.hovered = hotspotID
	s.mu.Unlock()
	return nil
}

func (s *surface) Leave() {
	s.mu.Lock()
	s.hovered = ""
	s.mu.Unlock()
}

func (s *surface) Hovered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered
}

// New mounts the requested variant for a category. It fails when the category
// does not present that variant.
func New(c model.Category, v Variant, opts Options) (Surface, error) {
	switch v {
	case VariantImage:
		if !c.Presentation.HasImage() {
			return nil, fmt.Errorf("category %q has no image: %w", c.ID, model.ErrInvalidInput)
		}
		return NewImage(c.ImageAsset, c.Hotspots, opts), nil
	case VariantScene:
		if !c.Presentation.HasModel() {
			return nil, fmt.Errorf("category %q has no 3D model: %w", c.ID, model.ErrInvalidInput)
		}
		return NewScene(c.ModelAsset, c.Hotspots, opts), nil
	}
	return nil, fmt.Errorf("unknown surface variant %q: %w", v, model.ErrInvalidInput)
}

// Variants lists the tabs a category offers, image first.
func Variants(c model.Category) []Variant {
	var out []Variant
	if c.Presentation.HasImage() {
		out = append(out, VariantImage)
	}
	if c.Presentation.HasModel() {
		out = append(out, VariantScene)
	}
	return out
}

// DefaultVariant is the tab selected when a category page opens.
func DefaultVariant(c model.Category) Variant {
	if c.Presentation.HasImage() {
		return VariantImage
	}
	return VariantScene
}
