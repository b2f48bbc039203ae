package worddetail_test

import (
	"strings"
	"testing"

	"lexiscope/internal/catalog"
	"lexiscope/internal/model"
	"lexiscope/internal/worddetail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperReader struct{}

func (upperReader) Reading(text string) string { return strings.ToUpper(text) }

func kitchen(t *testing.T) model.Category {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	k, err := c.Get("kitchen")
	require.NoError(t, err)
	return k
}

func TestBuild(t *testing.T) {
	b := worddetail.NewBuilder(nil)

	d, err := b.Build(kitchen(t), "stove")
	require.NoError(t, err)
	assert.Equal(t, "stove", d.ID)
	assert.Equal(t, "kitchen", d.CategoryID)
	assert.Equal(t, "A stove is an important part of the Kitchen & Cooking.", d.Definition)
	assert.Equal(t, "noun", d.PartOfSpeech)
	assert.Equal(t, []string{"Point to the stove.", "The stove is essential for daily activities."}, d.Examples)
	assert.Equal(t, "/ˈstove/", d.Pronunciation)
	assert.Nil(t, d.Audio)
	assert.Equal(t, "estufa", d.Translations["es"])

	_, err = b.Build(kitchen(t), "toaster")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestView(t *testing.T) {
	b := worddetail.NewBuilder(map[string]worddetail.Reader{"fr": upperReader{}})
	d, err := b.Build(kitchen(t), "sink")
	require.NoError(t, err)

	v := b.View(d, []string{"en", "fr", "ko"}, true)

	assert.True(t, v.Overview.Saved)
	assert.Equal(t, "sink", v.Overview.Word)
	require.Len(t, v.Translations, 2, "base language has no row")

	fr := v.Translations[0]
	assert.Equal(t, "fr", fr.Code)
	assert.Equal(t, "French", fr.Name)
	assert.Equal(t, "évier", fr.Text)
	assert.True(t, fr.Available)
	assert.Equal(t, "ÉVIER", fr.Reading)

	ko := v.Translations[1]
	assert.Equal(t, "Korean", ko.Name)
	assert.False(t, ko.Available)
	assert.Equal(t, worddetail.Unavailable, ko.Text)
	assert.Empty(t, ko.Reading)

	assert.Equal(t, d.Examples, v.Examples)
}

func TestView_OnlyBaseLanguage(t *testing.T) {
	b := worddetail.NewBuilder(nil)
	d, err := b.Build(kitchen(t), "plate")
	require.NoError(t, err)

	v := b.View(d, []string{"en"}, false)
	assert.Empty(t, v.Translations)
	assert.False(t, v.Overview.Saved)
}

func TestKanaReader(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the IPA dictionary")
	}
	r, err := worddetail.NewKanaReader()
	require.NoError(t, err)

	assert.Equal(t, "レイゾウコ", r.Reading("冷蔵庫"))
	assert.Empty(t, r.Reading("ピアノ"), "katakana needs no reading")
	assert.Empty(t, r.Reading("  "))
}
