package surface

import "lexiscope/internal/model"

// labelOffset is how far above its marker an image label sits, in percent.
const labelOffset = 8

type imagePlacer struct{}

func (imagePlacer) anchor(p model.Position) Point {
	return Point{X: p.X, Y: p.Y}
}

func (imagePlacer) labelAnchor(p model.Position) Point {
	return Point{X: p.X, Y: p.Y - labelOffset}
}

// NewImage mounts hotspots on a flat image. Anchors are percentages of the
// rendered image.
func NewImage(asset string, hotspots []model.Hotspot, opts Options) Surface {
	return newSurface(VariantImage, asset, hotspots, opts, imagePlacer{})
}

// Place scales a percentage anchor to pixels of a width x height image.
func Place(anchor Point, width, height float64) (x, y float64) {
	return anchor.X / 100 * width, anchor.Y / 100 * height
}
