package booking

import (
	"testing"
	"time"

	"nestly/models"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlotsForMissingDay(t *testing.T) {
	p := models.Provider{
		Availability: models.WeeklyAvailability{
			"monday": {{Start: 540, End: 720}},
		},
	}

	assert.Empty(t, FreeSlotsFor(p, time.Tuesday))
	assert.Len(t, FreeSlotsFor(p, time.Monday), 1)
}

func TestFreeSlotsForNilAvailability(t *testing.T) {
	assert.Empty(t, FreeSlotsFor(models.Provider{}, time.Monday))
}

func TestCoversIntervalToleratesUnsortedOverlappingSlots(t *testing.T) {
	slots := []models.TimeSlot{
		{Start: 720, End: 900},
		{Start: 540, End: 780}, // unsorted, overlaps the previous
	}

	assert.True(t, coversInterval(slots, 600, 660))
	assert.True(t, coversInterval(slots, 850, 1000))
	assert.False(t, coversInterval(slots, 900, 960))
}
