package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Distance calculates the great-circle distance between two points in meters
// using the Haversine formula. NaN inputs propagate as NaN; callers validate
// coordinate ranges before calling.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlng1 := lng1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlng2 := lng2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLng := rlng2 - rlng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceBetween calculates the distance between two GeoPoints in meters.
func DistanceBetween(p1, p2 GeoPoint) float64 {
	return Distance(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

// ValidCoordinates reports whether the pair is inside the WGS84 range.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodeGeohash converts coordinates to a geohash cell of the given precision.
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring cells of a given geohash.
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
