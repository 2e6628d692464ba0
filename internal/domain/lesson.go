package domain

import "time"

// Instructor identifies a member of the instructor roster.
type Instructor string

// Instructors currently on the roster.
const (
	InstructorUser1 Instructor = "user1"
	InstructorUser2 Instructor = "user2"
)

// LessonSlot is one concrete lesson occurrence in a generated week.
// Slots are produced fresh on every generation, never persisted, and
// immutable once produced.
type LessonSlot struct {
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Title      string     `json:"title"`
	StyleTag   string     `json:"class"`
	Instructor Instructor `json:"instructor"`
}

// SlotRule is one entry of the weekly recurrence: a lesson at a fixed
// time-of-day on its weekday.
type SlotRule struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Title       string
	StyleTag    string
	Instructor  Instructor
}

// WeekScheduleRule is the fixed weekly recurrence, indexed by weekday offset
// (0 = first day of the week as chosen by the caller). Entries within a day
// keep their declared order and may overlap across instructors; the generator
// must not reorder or deduplicate them. The rule is loaded once at process
// start and treated as read-only, so concurrent reads are safe.
type WeekScheduleRule [7][]SlotRule

// TimetableService expands the weekly recurrence into dated lesson slots.
type TimetableService interface {
	// GenerateWeek returns the slots for the 7 days starting at weekStart,
	// ordered weekday-ascending then rule order within each day.
	GenerateWeek(weekStart time.Time) ([]LessonSlot, error)
}
