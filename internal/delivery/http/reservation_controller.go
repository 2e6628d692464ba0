package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"lessonreserve/internal/domain"
)

// User-facing messages, matching the reservation form's expectations.
const (
	msgSendSuccess = "メール送信成功"
	msgSendFailure = "エラー発生"
)

// ReservationController handles inbound reservation submissions.
type ReservationController struct {
	Service domain.ReservationService
	Logger  *slog.Logger
}

func NewReservationController(svc domain.ReservationService, logger *slog.Logger) *ReservationController {
	return &ReservationController{
		Service: svc,
		Logger:  logger,
	}
}

// Create godoc
// @Summary Submit a lesson reservation
// @Description Accepts a reservation with a first and second choice slot, notifies the facility staff (CC'ing the chosen instructors) and sends the applicant a confirmation. Malformed input and delivery failure both surface as 500 with a generic message.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body domain.ReservationSubmission true "Reservation submission"
// @Success 200 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /reservations [post]
func (c *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	var sub domain.ReservationSubmission
	// Unknown fields are tolerated: the form snapshot carries
	// presentation-only fields alongside the ones we read.
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		c.Logger.Warn("malformed reservation payload", "error", err)
		WriteMessage(w, http.StatusInternalServerError, msgSendFailure)
		return
	}

	if errs := sub.Validate(); len(errs) > 0 {
		c.Logger.Warn("invalid reservation submission", "fields", strings.Join(errs, "; "))
		WriteMessage(w, http.StatusInternalServerError, msgSendFailure)
		return
	}

	result, err := c.Service.Notify(r.Context(), &sub)
	if err != nil {
		c.Logger.Error("reservation notification aborted", "error", err)
		WriteMessage(w, http.StatusInternalServerError, msgSendFailure)
		return
	}
	if result.Failed() {
		WriteMessage(w, http.StatusInternalServerError, msgSendFailure)
		return
	}

	WriteMessage(w, http.StatusOK, msgSendSuccess)
}
