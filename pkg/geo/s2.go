package geo

import (
	"github.com/golang/geo/s2"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
)

// GraphBoundingBox. smallest lat/lng rectangle holding every node of the snapshot. nil for an empty snapshot.
func GraphBoundingBox(g *da.Graph) *da.BoundingBox {
	if g.IsEmpty() {
		return nil
	}

	rect := s2.EmptyRect()
	for _, n := range g.GetNodes() {
		rect = rect.AddPoint(s2.LatLngFromDegrees(n.Lat, n.Lng))
	}
	lo, hi := rect.Lo(), rect.Hi()
	return da.NewBoundingBox(lo.Lat.Degrees(), lo.Lng.Degrees(), hi.Lat.Degrees(), hi.Lng.Degrees())
}

// SnapDistanceMeters. great-circle distance between a query point and the node it snapped to.
func SnapDistanceMeters(q da.Coordinate, n da.Node) float64 {
	from := s2.LatLngFromDegrees(q.Lat, q.Lng)
	to := s2.LatLngFromDegrees(n.Lat, n.Lng)
	return from.Distance(to).Radians() * earthRadiusKM * 1000
}
