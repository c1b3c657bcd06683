package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeZone(t *testing.T) {
	// Quibdó city center
	zone := EncodeZone(5.6947, -76.6583)
	assert.Len(t, zone, ZonePrecision)

	// Nearby points share the zone, distant points do not
	assert.Equal(t, zone, EncodeZone(5.6948, -76.6584))
	assert.NotEqual(t, zone, EncodeZone(5.2610, -76.6870)) // Istmina
}

func TestZoneNeighborhood(t *testing.T) {
	zones := ZoneNeighborhood(5.6947, -76.6583)
	assert.Len(t, zones, 9)
	assert.Equal(t, EncodeZone(5.6947, -76.6583), zones[0])

	seen := make(map[string]bool)
	for _, z := range zones {
		assert.Len(t, z, ZonePrecision)
		seen[z] = true
	}
	assert.Len(t, seen, 9)
}
