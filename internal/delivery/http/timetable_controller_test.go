package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lessonreserve/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimetableService records the requested week start.
type fakeTimetableService struct {
	lastWeekStart time.Time
	slots         []domain.LessonSlot
	err           error
}

func (f *fakeTimetableService) GenerateWeek(weekStart time.Time) ([]domain.LessonSlot, error) {
	f.lastWeekStart = weekStart
	return f.slots, f.err
}

func newTimetableTestController(fake *fakeTimetableService) *TimetableController {
	return NewTimetableController(fake, time.UTC, slog.New(slog.DiscardHandler))
}

func TestTimetableController_ExplicitWeekStart(t *testing.T) {
	fake := &fakeTimetableService{
		slots: []domain.LessonSlot{{
			Start:      time.Date(2024, time.January, 7, 11, 45, 0, 0, time.UTC),
			End:        time.Date(2024, time.January, 7, 13, 0, 0, 0, time.UTC),
			Title:      "サンプル１",
			StyleTag:   "sample1",
			Instructor: domain.InstructorUser1,
		}},
	}
	ctrl := newTimetableTestController(fake)

	req := httptest.NewRequest(http.MethodGet, "/timetable?week_start=2024-01-07", nil)
	rr := httptest.NewRecorder()

	ctrl.GetWeek(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), fake.lastWeekStart)

	var slots []domain.LessonSlot
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&slots))
	require.Len(t, slots, 1)
	assert.Equal(t, "サンプル１", slots[0].Title)
	assert.Equal(t, "sample1", slots[0].StyleTag)
}

func TestTimetableController_DefaultsToMostRecentSunday(t *testing.T) {
	fake := &fakeTimetableService{}
	ctrl := newTimetableTestController(fake)

	req := httptest.NewRequest(http.MethodGet, "/timetable", nil)
	rr := httptest.NewRecorder()

	ctrl.GetWeek(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	got := fake.lastWeekStart
	assert.Equal(t, time.Sunday, got.Weekday())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.False(t, got.After(time.Now().UTC()))
}

func TestTimetableController_BadWeekStart(t *testing.T) {
	fake := &fakeTimetableService{}
	ctrl := newTimetableTestController(fake)

	req := httptest.NewRequest(http.MethodGet, "/timetable?week_start=next-sunday", nil)
	rr := httptest.NewRecorder()

	ctrl.GetWeek(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "week_start")
	assert.True(t, fake.lastWeekStart.IsZero(), "generator must not run on bad input")
}

func TestMostRecentSunday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midweek",
			in:   time.Date(2024, time.January, 10, 15, 30, 0, 0, time.UTC), // Wednesday
			want: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday stays put",
			in:   time.Date(2024, time.January, 7, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			in:   time.Date(2024, time.February, 2, 8, 0, 0, 0, time.UTC), // Friday
			want: time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mostRecentSunday(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}
