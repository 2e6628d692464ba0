package domain

import (
	"context"
	"net/mail"
	"strings"
)

// Applicant is the person submitting a reservation.
type Applicant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SlotChoice is a snapshot of a chosen lesson slot's identifying fields,
// copied client-side when the applicant picks it from the timetable. The
// backend does not re-check it against the live timetable.
type SlotChoice struct {
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Instructor string `json:"instructor"`
}

// ReservationSubmission is the inbound reservation payload. First and second
// choice are both required and may be identical.
type ReservationSubmission struct {
	Applicant    Applicant  `json:"applicant"`
	FirstChoice  SlotChoice `json:"firstChoice"`
	SecondChoice SlotChoice `json:"secondChoice"`
}

// Validate returns one message per missing or invalid required field.
// A nil or empty result means the submission is structurally valid.
func (s *ReservationSubmission) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Applicant.Name) == "" {
		errs = append(errs, "applicant.name is required")
	}
	if strings.TrimSpace(s.Applicant.Email) == "" {
		errs = append(errs, "applicant.email is required")
	} else if _, err := mail.ParseAddress(s.Applicant.Email); err != nil {
		errs = append(errs, "applicant.email is not a valid address")
	}
	if strings.TrimSpace(s.Applicant.Phone) == "" {
		errs = append(errs, "applicant.phone is required")
	}
	errs = append(errs, validateChoice("firstChoice", s.FirstChoice)...)
	errs = append(errs, validateChoice("secondChoice", s.SecondChoice)...)
	return errs
}

func validateChoice(field string, c SlotChoice) []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, field+".title is required")
	}
	if strings.TrimSpace(c.Start) == "" {
		errs = append(errs, field+".start is required")
	}
	if strings.TrimSpace(c.End) == "" {
		errs = append(errs, field+".end is required")
	}
	return errs
}

// InstructorDirectory maps instructor identifiers to contact addresses.
// Built once at process start and never mutated afterwards.
type InstructorDirectory map[Instructor]string

// Resolve returns the contact address for ref, or the empty string when ref
// is unmapped. An unknown instructor must not block delivery, so this never
// fails; the dispatcher side filters out empty addresses.
func (d InstructorDirectory) Resolve(ref string) string {
	return d[Instructor(ref)]
}

// ReservationService turns one validated submission into the staff and
// applicant notifications.
type ReservationService interface {
	Notify(ctx context.Context, sub *ReservationSubmission) (DispatchResult, error)
}
