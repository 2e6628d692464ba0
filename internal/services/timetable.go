package services

import (
	"fmt"
	"time"

	"lessonreserve/internal/domain"
)

type timetableService struct {
	rule domain.WeekScheduleRule
}

// NewTimetableService returns a TimetableService that expands the given
// weekly recurrence rule.
func NewTimetableService(rule domain.WeekScheduleRule) domain.TimetableService {
	return &timetableService{rule: rule}
}

// GenerateWeek expands the rule into dated slots for the 7 days starting at
// weekStart. The caller decides which date is weekday offset 0. Output order
// is weekday-ascending, then declared rule order within each day; consumers
// render in this order, so no sorting or deduplication happens here. The only
// possible error is an out-of-range time value in the rule table itself.
func (s *timetableService) GenerateWeek(weekStart time.Time) ([]domain.LessonSlot, error) {
	total := 0
	for _, entries := range s.rule {
		total += len(entries)
	}
	slots := make([]domain.LessonSlot, 0, total)

	for i := range s.rule {
		day := domain.AddDays(weekStart, i)
		for _, entry := range s.rule[i] {
			start, err := domain.At(day, entry.StartHour, entry.StartMinute)
			if err != nil {
				return nil, fmt.Errorf("slot %q on weekday %d: %w", entry.Title, i, err)
			}
			end, err := domain.At(day, entry.EndHour, entry.EndMinute)
			if err != nil {
				return nil, fmt.Errorf("slot %q on weekday %d: %w", entry.Title, i, err)
			}
			slots = append(slots, domain.LessonSlot{
				Start:      start,
				End:        end,
				Title:      entry.Title,
				StyleTag:   entry.StyleTag,
				Instructor: entry.Instructor,
			})
		}
	}
	return slots, nil
}
