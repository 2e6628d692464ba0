package http

import (
	"log/slog"
	"net/http"
	"time"

	"lessonreserve/internal/domain"
)

// TimetableController serves the generated weekly lesson timetable to the
// reservation form.
type TimetableController struct {
	Service  domain.TimetableService
	Location *time.Location
	Logger   *slog.Logger
}

func NewTimetableController(svc domain.TimetableService, loc *time.Location, logger *slog.Logger) *TimetableController {
	return &TimetableController{
		Service:  svc,
		Location: loc,
		Logger:   logger,
	}
}

// GetWeek godoc
// @Summary Get the weekly lesson timetable
// @Description Expands the fixed weekly recurrence into dated lesson slots for the week starting at week_start. The rule anchors Sunday at offset 0, so week_start defaults to the most recent Sunday.
// @Tags timetable
// @Produce json
// @Param week_start query string false "Week start date (YYYY-MM-DD)"
// @Success 200 {array} domain.LessonSlot
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /timetable [get]
func (c *TimetableController) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekStart := mostRecentSunday(time.Now().In(c.Location))
	if q := r.URL.Query().Get("week_start"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, c.Location)
		if err != nil {
			WriteMessage(w, http.StatusBadRequest, "week_start must be a date in YYYY-MM-DD format")
			return
		}
		weekStart = parsed
	}

	slots, err := c.Service.GenerateWeek(weekStart)
	if err != nil {
		c.Logger.Error("timetable generation failed", "week_start", weekStart, "error", err)
		WriteMessage(w, http.StatusInternalServerError, "timetable generation failed")
		return
	}

	WriteJSON(w, http.StatusOK, slots)
}

// mostRecentSunday returns midnight of the most recent Sunday at or before t,
// in t's location.
func mostRecentSunday(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return domain.AddDays(midnight, -int(midnight.Weekday()))
}
