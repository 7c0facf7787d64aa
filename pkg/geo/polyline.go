package geo

import (
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

func PolylineFromCoords(coords []da.Coordinate) string {
	s := make([][]float64, 0, len(coords))
	for _, c := range coords {
		s = append(s, []float64{c.Lat, c.Lng})
	}
	return string(polyline.EncodeCoords(s))
}
