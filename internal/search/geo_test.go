package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSamePoint(t *testing.T) {
	p := LatLng{Lat: 14.5547, Lng: 121.0244}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Makati CBD to Quezon City Circle, roughly 11 km apart
	makati := LatLng{Lat: 14.5547, Lng: 121.0244}
	qc := LatLng{Lat: 14.6515, Lng: 121.0493}

	d := DistanceKm(makati, qc)
	assert.InDelta(t, 11.0, d, 1.0)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := LatLng{Lat: 14.5547, Lng: 121.0244}
	b := LatLng{Lat: 10.3157, Lng: 123.8854}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
	assert.Greater(t, DistanceKm(a, b), 0.0)
}
