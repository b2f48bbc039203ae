package model_test

import (
	"testing"

	"lexiscope/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHotspot(t *testing.T, id string, x, y float64, word string, tr map[string]string) model.Hotspot {
	t.Helper()
	h, err := model.NewHotspot(id, model.Position{X: x, Y: y}, word, tr)
	require.NoError(t, err)
	return h
}

func TestNewHotspot(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		pos     model.Position
		word    string
		wantErr bool
	}{
		{name: "valid", id: "eye", pos: model.Position{X: 45, Y: 20}, word: "eye"},
		{name: "corners are inside", id: "c", pos: model.Position{X: 100, Y: 0}, word: "corner"},
		{name: "x above range", id: "x", pos: model.Position{X: 100.5, Y: 10}, word: "x", wantErr: true},
		{name: "negative y", id: "y", pos: model.Position{X: 10, Y: -1}, word: "y", wantErr: true},
		{name: "empty id", id: " ", pos: model.Position{X: 1, Y: 1}, word: "w", wantErr: true},
		{name: "blank word", id: "w", pos: model.Position{X: 1, Y: 1}, word: "  ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := model.NewHotspot(tc.id, tc.pos, tc.word, nil)
			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, h.ID)
			assert.NotNil(t, h.Translations)
		})
	}
}

func TestNewHotspot_CopiesTranslations(t *testing.T) {
	tr := map[string]string{"es": "ojo", "fr": "œil", "de": ""}
	h := mustHotspot(t, "eye", 45, 20, "eye", tr)
	tr["es"] = "changed"

	got, ok := h.Translation("es")
	assert.True(t, ok)
	assert.Equal(t, "ojo", got)
	_, ok = h.Translation("de")
	assert.False(t, ok, "blank translations are dropped")
	assert.Equal(t, "eye", h.TranslationOrWord("ja"))
}

func TestNewCategory_PresentationAssets(t *testing.T) {
	tests := []struct {
		name    string
		spec    model.CategorySpec
		wantErr bool
	}{
		{
			name: "image with image asset",
			spec: model.CategorySpec{ID: "a", Title: "A", Presentation: model.PresentationImage, ImageAsset: "a.jpg"},
		},
		{
			name: "model with model asset",
			spec: model.CategorySpec{ID: "b", Title: "B", Presentation: model.PresentationModel3D, ModelAsset: "b.glb"},
		},
		{
			name: "both with both assets",
			spec: model.CategorySpec{ID: "c", Title: "C", Presentation: model.PresentationBoth, ImageAsset: "c.jpg", ModelAsset: "c.glb"},
		},
		{
			name:    "image without asset",
			spec:    model.CategorySpec{ID: "d", Title: "D", Presentation: model.PresentationImage},
			wantErr: true,
		},
		{
			name:    "model with stray image asset",
			spec:    model.CategorySpec{ID: "e", Title: "E", Presentation: model.PresentationModel3D, ModelAsset: "e.glb", ImageAsset: "e.jpg"},
			wantErr: true,
		},
		{
			name:    "both missing model asset",
			spec:    model.CategorySpec{ID: "f", Title: "F", Presentation: model.PresentationBoth, ImageAsset: "f.jpg"},
			wantErr: true,
		},
		{
			name:    "unknown presentation",
			spec:    model.CategorySpec{ID: "g", Title: "G", Presentation: "video", ImageAsset: "g.jpg"},
			wantErr: true,
		},
		{
			name:    "unknown difficulty",
			spec:    model.CategorySpec{ID: "h", Title: "H", Difficulty: "expert", Presentation: model.PresentationImage, ImageAsset: "h.jpg"},
			wantErr: true,
		},
		{
			name:    "missing title",
			spec:    model.CategorySpec{ID: "i", Presentation: model.PresentationImage, ImageAsset: "i.jpg"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := model.NewCategory(tc.spec)
			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.spec.ID, c.ID)
		})
	}
}

func TestNewCategory_DuplicateHotspot(t *testing.T) {
	h := mustHotspot(t, "sink", 30, 40, "sink", nil)
	_, err := model.NewCategory(model.CategorySpec{
		ID: "kitchen", Title: "Kitchen", Presentation: model.PresentationImage, ImageAsset: "k.jpg",
		Hotspots: []model.Hotspot{h, h},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestCategory_HotspotLookupAndClone(t *testing.T) {
	c, err := model.NewCategory(model.CategorySpec{
		ID: "body", Title: "Body", Presentation: model.PresentationImage, ImageAsset: "b.jpg",
		Hotspots: []model.Hotspot{
			mustHotspot(t, "eye", 45, 20, "eye", map[string]string{"es": "ojo"}),
			mustHotspot(t, "nose", 50, 30, "nose", nil),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.TotalHotspots())
	assert.True(t, c.HasHotspot("nose"))
	assert.False(t, c.HasHotspot("ear"))

	clone := c.Clone()
	clone.Hotspots[0].Translations["es"] = "changed"
	h, ok := c.Hotspot("eye")
	require.True(t, ok)
	assert.Equal(t, "ojo", h.Translations["es"])
}

func TestParsePresentation(t *testing.T) {
	p, err := model.ParsePresentation("3D")
	require.NoError(t, err)
	assert.Equal(t, model.PresentationModel3D, p)
	assert.True(t, p.HasModel())
	assert.False(t, p.HasImage())

	p, err = model.ParsePresentation("both")
	require.NoError(t, err)
	assert.True(t, p.HasImage())
	assert.True(t, p.HasModel())

	_, err = model.ParsePresentation("hologram")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLanguages(t *testing.T) {
	assert.Len(t, model.SupportedLanguages(), 12)
	assert.Equal(t, "Japanese", model.LanguageName("JA"))
	assert.Equal(t, "xx", model.LanguageName("xx"))
	assert.Equal(t, "🌐", model.LanguageFlag("xx"))
	assert.Equal(t, []string{"es", "fr"}, model.ExcludeBase([]string{"en", "es", "fr"}))
}
