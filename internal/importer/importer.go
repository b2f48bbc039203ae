// Package importer turns an editor-friendly spreadsheet into catalog
// categories. One row describes one hotspot; the category columns are read
// from the first row of each category.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lexiscope/internal/model"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet excelize creates in a new workbook.
const DefaultSheet = "Sheet1"

// Fixed header names. Every other non-empty header is taken as a translation
// language code.
const (
	colCategoryID    = "category_id"
	colCategoryTitle = "category_title"
	colDescription   = "description"
	colDifficulty    = "difficulty"
	colPresentation  = "presentation"
	colImage         = "image"
	colModel         = "model"
	colHotspotID     = "hotspot_id"
	colX             = "x"
	colY             = "y"
	colWord          = "word"
)

var requiredColumns = []string{colCategoryID, colCategoryTitle, colPresentation, colHotspotID, colX, colY, colWord}

var fixedColumns = map[string]struct{}{
	colCategoryID: {}, colCategoryTitle: {}, colDescription: {}, colDifficulty: {},
	colPresentation: {}, colImage: {}, colModel: {}, colHotspotID: {}, colX: {}, colY: {}, colWord: {},
}

// Header is the first row of a workbook Read accepts, without translation columns.
var Header = []string{colCategoryID, colCategoryTitle, colDescription, colDifficulty, colPresentation, colImage, colModel, colHotspotID, colX, colY, colWord}

type columns struct {
	index        map[string]int
	translations map[string]int
}

func parseHeader(row []string) (columns, error) {
	cols := columns{index: map[string]int{}, translations: map[string]int{}}
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, fixed := fixedColumns[name]; fixed {
			cols.index[name] = i
			continue
		}
		if _, ok := model.LookupLanguage(name); !ok {
			return columns{}, fmt.Errorf("header column %d: unknown language %q: %w", i+1, name, model.ErrInvalidInput)
		}
		cols.translations[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols.index[name]; !ok {
			return columns{}, fmt.Errorf("header: missing column %q: %w", name, model.ErrInvalidInput)
		}
	}
	return cols, nil
}

// cell tolerates the short rows excelize returns when trailing cells are empty.
func (c columns) cell(row []string, name string) string {
	i, ok := c.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Read imports sheet from the workbook in r. An empty sheet name selects
// DefaultSheet. Categories keep the order of their first row.
func Read(r io.Reader, sheet string) ([]model.Category, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer.Read: open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer.Read: sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("importer.Read: sheet %q is empty: %w", sheet, model.ErrInvalidInput)
	}
	cols, err := parseHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("importer.Read: %w", err)
	}

	var (
		order []string
		specs = map[string]*model.CategorySpec{}
	)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}
		catID := cols.cell(row, colCategoryID)
		spec, ok := specs[catID]
		if !ok {
			spec, err = cols.categorySpec(row)
			if err != nil {
				return nil, fmt.Errorf("importer.Read: row %d: %w", rowNum, err)
			}
			specs[catID] = spec
			order = append(order, catID)
		}
		h, err := cols.hotspot(row)
		if err != nil {
			return nil, fmt.Errorf("importer.Read: row %d: %w", rowNum, err)
		}
		spec.Hotspots = append(spec.Hotspots, h)
	}

	categories := make([]model.Category, 0, len(order))
	for _, id := range order {
		cat, err := model.NewCategory(*specs[id])
		if err != nil {
			return nil, fmt.Errorf("importer.Read: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (c columns) categorySpec(row []string) (*model.CategorySpec, error) {
	p, err := model.ParsePresentation(c.cell(row, colPresentation))
	if err != nil {
		return nil, err
	}
	return &model.CategorySpec{
		ID:           c.cell(row, colCategoryID),
		Title:        c.cell(row, colCategoryTitle),
		Description:  c.cell(row, colDescription),
		Difficulty:   model.Difficulty(strings.ToLower(c.cell(row, colDifficulty))),
		Presentation: p,
		ImageAsset:   c.cell(row, colImage),
		ModelAsset:   c.cell(row, colModel),
	}, nil
}

func (c columns) hotspot(row []string) (model.Hotspot, error) {
	x, err := parseCoordinate(c.cell(row, colX))
	if err != nil {
		return model.Hotspot{}, fmt.Errorf("column x: %w", err)
	}
	y, err := parseCoordinate(c.cell(row, colY))
	if err != nil {
		return model.Hotspot{}, fmt.Errorf("column y: %w", err)
	}
	tr := make(map[string]string, len(c.translations))
	for code, i := range c.translations {
		if i < len(row) {
			tr[code] = strings.TrimSpace(row[i])
		}
	}
	return model.NewHotspot(c.cell(row, colHotspotID), model.Position{X: x, Y: y}, c.cell(row, colWord), tr)
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, model.ErrInvalidInput)
	}
	return v, nil
}
