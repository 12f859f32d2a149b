package assignment

import (
	"fmt"
	"math"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/tidwall/geodesic"
)

// DistanceFunc — расстояние между точками в километрах.
type DistanceFunc func(a, b domain.Coordinate) float64

// GeodesicKm — расстояние по геодезической на эллипсоиде WGS 84, км.
func GeodesicKm(a, b domain.Coordinate) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &meters, nil, nil)
	return meters / 1000
}

// roundKm — округление до сотых.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// FormatKm — "<км> км" с тем же округлением, что и в списке ресторанов.
func FormatKm(km float64) string {
	return fmt.Sprintf("%.2f км", roundKm(km))
}
