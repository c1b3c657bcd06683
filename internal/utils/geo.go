package utils

import (
	"github.com/mmcloughlin/geohash"
)

// ZonePrecision is the geohash precision used for pickup zones; precision 6
// cells are roughly 1.2km x 0.6km, a sensible pickup radius for town
// traffic.
const ZonePrecision = 6

// EncodeZone converts pickup coordinates to a geohash zone string.
func EncodeZone(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, ZonePrecision)
}

// ZoneNeighborhood returns the zone of the given point plus its eight
// neighboring zones, for proximity filtering.
func ZoneNeighborhood(latitude, longitude float64) []string {
	center := EncodeZone(latitude, longitude)
	return append([]string{center}, geohash.Neighbors(center)...)
}
