package surface

import "lexiscope/internal/model"

const (
	sceneScale       = 10
	sceneDepth       = 1
	sceneLabelOffset = 0.3
)

type scenePlacer struct{}

// anchor centers the 0..100 range on the model origin: x grows to the right,
// y grows upwards, so the image y axis is flipped.
func (scenePlacer) anchor(p model.Position) Point {
	return Point{
		X: (p.X - 50) / sceneScale,
		Y: (50 - p.Y) / sceneScale,
		Z: sceneDepth,
	}
}

func (sp scenePlacer) labelAnchor(p model.Position) Point {
	a := sp.anchor(p)
	a.Y += sceneLabelOffset
	return a
}

// NewScene mounts hotspots in the scene of a 3D model.
func NewScene(asset string, hotspots []model.Hotspot, opts Options) Surface {
	return newSurface(VariantScene, asset, hotspots, opts, scenePlacer{})
}
