// internal/model/flashcard.go
package model

import (
	"maps"
	"slices"
)

// FlashcardSet is the ordered list of saved word details. Entries are unique by
// hotspot id.
type FlashcardSet []WordDetail

// Contains reports whether a card for hotspot id is saved.
func (s FlashcardSet) Contains(id string) bool {
	return slices.ContainsFunc(s, func(d WordDetail) bool { return d.ID == id })
}

// Add appends a snapshot of detail unless a card with the same id exists. The
// second result is true when the set was left unchanged.
func (s FlashcardSet) Add(detail WordDetail) (FlashcardSet, bool) {
	if s.Contains(detail.ID) {
		return s, true
	}
	return append(slices.Clone(s), detail.snapshot()), false
}

// Remove drops the card for id. It reports whether a card was removed.
func (s FlashcardSet) Remove(id string) (FlashcardSet, bool) {
	i := slices.IndexFunc(s, func(d WordDetail) bool { return d.ID == id })
	if i < 0 {
		return s, false
	}
	out := slices.Clone(s)
	return slices.Delete(out, i, i+1), true
}

// Dedup keeps the first card of every id. Used on data read back from storage.
func (s FlashcardSet) Dedup() FlashcardSet {
	seen := make(map[string]bool, len(s))
	out := make(FlashcardSet, 0, len(s))
	for _, d := range s {
		if d.ID == "" || seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		out = append(out, d)
	}
	return out
}

func (d WordDetail) snapshot() WordDetail {
	d.Translations = maps.Clone(d.Translations)
	d.Examples = slices.Clone(d.Examples)
	if d.Audio != nil {
		a := *d.Audio
		d.Audio = &a
	}
	return d
}
