package inquiries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCalendarBucketsRangeOnEveryDay(t *testing.T) {
	inquiry := Inquiry{
		ID:         uuid.New(),
		ClientName: "Dela Cruz Wedding",
		EventType:  "wedding",
		Status:     StatusConfirmed,
		StartDate:  day(2026, time.March, 10),
		EndDate:    day(2026, time.March, 12),
	}

	cal := BuildCalendar([]Inquiry{inquiry}, 2026, time.March)

	require.Len(t, cal.Days["2026-03-10"], 1)
	require.Len(t, cal.Days["2026-03-11"], 1)
	require.Len(t, cal.Days["2026-03-12"], 1)
	assert.Empty(t, cal.Days["2026-03-09"])
	assert.Empty(t, cal.Days["2026-03-13"])

	entry := cal.Days["2026-03-11"][0]
	assert.Equal(t, "Dela Cruz Wedding", entry.ClientName)
	assert.Equal(t, StatusConfirmed, entry.Status)
}

func TestBuildCalendarSingleDayEvent(t *testing.T) {
	inquiry := Inquiry{
		ID:        uuid.New(),
		Status:    StatusPencil,
		StartDate: day(2026, time.March, 15),
		EndDate:   day(2026, time.March, 15),
	}

	cal := BuildCalendar([]Inquiry{inquiry}, 2026, time.March)

	assert.Len(t, cal.Days["2026-03-15"], 1)
	assert.Empty(t, cal.Days["2026-03-14"])
	assert.Empty(t, cal.Days["2026-03-16"])
}

func TestBuildCalendarMultipleOverlapping(t *testing.T) {
	a := Inquiry{ID: uuid.New(), Status: StatusConfirmed,
		StartDate: day(2026, time.March, 10), EndDate: day(2026, time.March, 12)}
	b := Inquiry{ID: uuid.New(), Status: StatusPencil,
		StartDate: day(2026, time.March, 12), EndDate: day(2026, time.March, 14)}

	cal := BuildCalendar([]Inquiry{a, b}, 2026, time.March)

	assert.Len(t, cal.Days["2026-03-11"], 1)
	assert.Len(t, cal.Days["2026-03-12"], 2)
	assert.Len(t, cal.Days["2026-03-13"], 1)
}

func TestBuildCalendarMonthMetadata(t *testing.T) {
	cal := BuildCalendar(nil, 2026, time.February)

	assert.Equal(t, 2026, cal.Year)
	assert.Equal(t, 2, cal.Month)
	assert.Empty(t, cal.Days)
}
