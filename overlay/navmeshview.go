package overlay

import (
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
)

// NavmeshView returns the current triangulation for (layer, netID) as
// built and cached by mesh, for a driver to render alongside the routed
// copper (debug overlays, coverage visualization). It is a read-only
// passthrough: navmesh already owns caching and invalidation, so overlay
// adds nothing but the read-only framing promised by this package.
func NavmeshView(mesh *navmesh.Mesh, layer layout.Layer, netID int32) ([]navmesh.Triangle, error) {
	return mesh.Triangles(layer, netID)
}
