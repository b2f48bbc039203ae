// internal/model/progress.go
package model

import (
	"math"
	"slices"
)

// CategoryRecord is the stored progress for one category. The json names match
// the keys written by the browser version of the app.
type CategoryRecord struct {
	LearnedCount     int      `json:"learned"`
	ViewedHotspotIDs []string `json:"viewed"`
}

// ProgressRecord maps category id to its record. It only ever grows.
type ProgressRecord map[string]CategoryRecord

// RecordView adds hotspotID to the viewed set of categoryID the first time it
// is seen and refreshes the learned count. It reports whether anything changed;
// repeated calls with the same arguments are no-ops.
func (r ProgressRecord) RecordView(categoryID, hotspotID string) bool {
	rec := r[categoryID]
	if slices.Contains(rec.ViewedHotspotIDs, hotspotID) {
		return false
	}
	rec.ViewedHotspotIDs = append(slices.Clone(rec.ViewedHotspotIDs), hotspotID)
	rec.LearnedCount = len(rec.ViewedHotspotIDs)
	r[categoryID] = rec
	return true
}

// Viewed reports whether hotspotID was viewed in categoryID.
func (r ProgressRecord) Viewed(categoryID, hotspotID string) bool {
	return slices.Contains(r[categoryID].ViewedHotspotIDs, hotspotID)
}

// Learned returns the learned count of a category (0 when absent).
func (r ProgressRecord) Learned(categoryID string) int {
	return r[categoryID].LearnedCount
}

// Clone deep-copies the record.
func (r ProgressRecord) Clone() ProgressRecord {
	out := make(ProgressRecord, len(r))
	for k, v := range r {
		v.ViewedHotspotIDs = slices.Clone(v.ViewedHotspotIDs)
		out[k] = v
	}
	return out
}

// CategoryProgress is the progress bar of one category.
type CategoryProgress struct {
	CategoryID string   `json:"category_id"`
	Learned    int      `json:"learned"`
	Total      int      `json:"total"`
	Ratio      float64  `json:"ratio"`
	Percent    int      `json:"percent"`
	Viewed     []string `json:"viewed"`
}

// NewCategoryProgress computes learned/total clamped to [0,1].
func NewCategoryProgress(categoryID string, rec CategoryRecord, total int) CategoryProgress {
	ratio := 0.0
	if total > 0 {
		ratio = float64(rec.LearnedCount) / float64(total)
	}
	ratio = math.Max(0, math.Min(1, ratio))
	viewed := slices.Clone(rec.ViewedHotspotIDs)
	if viewed == nil {
		viewed = []string{}
	}
	return CategoryProgress{
		CategoryID: categoryID,
		Learned:    rec.LearnedCount,
		Total:      total,
		Ratio:      ratio,
		Percent:    int(math.Round(ratio * 100)),
		Viewed:     viewed,
	}
}
