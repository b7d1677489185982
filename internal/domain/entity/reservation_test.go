package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightsCountsCalendarDates(t *testing.T) {
	arrival := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	r := &Reservation{ArrivalDate: arrival}

	// 50 elapsed hours, but three dates slept over.
	assert.Equal(t, 3, r.Nights(time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC)))

	// Late arrival, early departure next morning: one night.
	assert.Equal(t, 1, r.Nights(time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)))

	// Day-use stays still bill one night.
	assert.Equal(t, 1, r.Nights(arrival.Add(90*time.Minute)))

	// Same calendar distance regardless of the departure's zone.
	lagos := time.FixedZone("WAT", 3600)
	assert.Equal(t, 3, r.Nights(time.Date(2026, 3, 13, 2, 0, 0, 0, lagos)))
}
