// Package catalog holds the static category data. It is decoded from a YAML
// document, validated once and never modified afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"lexiscope/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

type document struct {
	Categories []categoryDoc `yaml:"categories"`
}

type categoryDoc struct {
	ID           string       `yaml:"id"`
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description,omitempty"`
	Difficulty   string       `yaml:"difficulty,omitempty"`
	Presentation string       `yaml:"presentation"`
	Image        string       `yaml:"image,omitempty"`
	Model        string       `yaml:"model,omitempty"`
	Hotspots     []hotspotDoc `yaml:"hotspots"`
}

type hotspotDoc struct {
	ID           string            `yaml:"id"`
	X            float64           `yaml:"x"`
	Y            float64           `yaml:"y"`
	Word         string            `yaml:"word"`
	Translations map[string]string `yaml:"translations,omitempty,flow"`
}

// Catalog is safe for concurrent use because it is read-only.
type Catalog struct {
	categories []model.Category
	index      map[string]int
}

// Default decodes the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads a catalog file. An empty path selects the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog.Parse: %w: %v", model.ErrInvalidInput, err)
	}
	return New(doc.toSpecs()...)
}

// New validates every category and builds the lookup index.
func New(specs ...model.CategorySpec) (*Catalog, error) {
	c := &Catalog{
		categories: make([]model.Category, 0, len(specs)),
		index:      make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		cat, err := model.NewCategory(spec)
		if err != nil {
			return nil, fmt.Errorf("catalog.New: %w", err)
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("catalog.New: duplicate category %q: %w", cat.ID, model.ErrInvalidInput)
		}
		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

func (d document) toSpecs() []model.CategorySpec {
	specs := make([]model.CategorySpec, 0, len(d.Categories))
	for _, cd := range d.Categories {
		hotspots := make([]model.Hotspot, 0, len(cd.Hotspots))
		for _, hd := range cd.Hotspots {
			// NewCategory validates each hotspot again; this only carries the data.
			hotspots = append(hotspots, model.Hotspot{
				ID:           hd.ID,
				Position:     model.Position{X: hd.X, Y: hd.Y},
				Word:         hd.Word,
				Translations: hd.Translations,
			})
		}
		presentation, err := model.ParsePresentation(cd.Presentation)
		if err != nil {
			// Leave the raw value so NewCategory reports it with the category id.
			presentation = model.Presentation(cd.Presentation)
		}
		specs = append(specs, model.CategorySpec{
			ID:           cd.ID,
			Title:        cd.Title,
			Description:  cd.Description,
			Difficulty:   model.Difficulty(strings.ToLower(cd.Difficulty)),
			Presentation: presentation,
			ImageAsset:   cd.Image,
			ModelAsset:   cd.Model,
			Hotspots:     hotspots,
		})
	}
	return specs
}

// Get returns a copy of the category with the given id.
func (c *Catalog) Get(id string) (model.Category, error) {
	i, ok := c.index[id]
	if !ok {
		return model.Category{}, fmt.Errorf("category %q: %w", id, model.ErrNotFound)
	}
	return c.categories[i].Clone(), nil
}

// List returns every category in declaration order.
func (c *Catalog) List() []model.Category {
	out := make([]model.Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Clone()
	}
	return out
}

// Search keeps the categories whose title or description contains query,
// ignoring case. An empty query matches everything.
func (c *Catalog) Search(query string) []model.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.List()
	}
	var out []model.Category
	for _, cat := range c.categories {
		if strings.Contains(strings.ToLower(cat.Title), q) || strings.Contains(strings.ToLower(cat.Description), q) {
			out = append(out, cat.Clone())
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.categories) }

// TotalWords is the number of hotspots over all categories.
func (c *Catalog) TotalWords() int {
	n := 0
	for _, cat := range c.categories {
		n += cat.TotalHotspots()
	}
	return n
}

// Encode writes categories as a catalog document that Parse accepts.
func Encode(w io.Writer, categories []model.Category) error {
	doc := document{Categories: make([]categoryDoc, 0, len(categories))}
	for _, cat := range categories {
		cd := categoryDoc{
			ID:           cat.ID,
			Title:        cat.Title,
			Description:  cat.Description,
			Difficulty:   string(cat.Difficulty),
			Presentation: string(cat.Presentation),
			Image:        cat.ImageAsset,
			Model:        cat.ModelAsset,
			Hotspots:     make([]hotspotDoc, 0, len(cat.Hotspots)),
		}
		for _, h := range cat.Hotspots {
			cd.Hotspots = append(cd.Hotspots, hotspotDoc{
				ID:           h.ID,
				X:            h.Position.X,
				Y:            h.Position.Y,
				Word:         h.Word,
				Translations: h.Translations,
			})
		}
		doc.Categories = append(doc.Categories, cd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog.Encode: %w", err)
	}
	return enc.Close()
}
