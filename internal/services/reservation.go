package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lessonreserve/internal/domain"
)

type reservationService struct {
	mailer         domain.Mailer
	renderer       domain.MessageRenderer
	directory      domain.InstructorDirectory
	staffAddress   string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewReservationService returns a ReservationService that notifies the staff
// address (CC'ing the chosen instructors) and the applicant through the given
// mailer. timeout bounds the whole dispatch so a stalled transport cannot
// hang the handler.
func NewReservationService(mailer domain.Mailer, renderer domain.MessageRenderer, directory domain.InstructorDirectory, staffAddress string, logger *slog.Logger, timeout time.Duration) domain.ReservationService {
	return &reservationService{
		mailer:         mailer,
		renderer:       renderer,
		directory:      directory,
		staffAddress:   staffAddress,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Notify composes and dispatches both notifications for one validated
// submission. Both sends are attempted even when the first fails; the
// per-role outcomes are collected into the returned DispatchResult. An error
// return means composition failed and nothing was dispatched.
func (s *reservationService) Notify(ctx context.Context, sub *domain.ReservationSubmission) (domain.DispatchResult, error) {
	if sub == nil {
		return domain.DispatchResult{}, fmt.Errorf("submission is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staffMsg, err := s.composeStaffMessage(sub)
	if err != nil {
		return domain.DispatchResult{}, fmt.Errorf("compose staff message: %w", err)
	}
	applicantMsg, err := s.composeApplicantMessage(sub)
	if err != nil {
		return domain.DispatchResult{}, fmt.Errorf("compose applicant message: %w", err)
	}

	return domain.DispatchResult{
		Staff:     s.dispatch(ctx, domain.RoleStaff, staffMsg),
		Applicant: s.dispatch(ctx, domain.RoleApplicant, applicantMsg),
	}, nil
}

// composeStaffMessage renders the staff notification. Instructor references
// that resolve to no address are dropped from the CC list rather than sent
// blank.
func (s *reservationService) composeStaffMessage(sub *domain.ReservationSubmission) (domain.EmailMessage, error) {
	subject, body, err := s.renderer.Render("staff", sub)
	if err != nil {
		return domain.EmailMessage{}, err
	}
	cc := make([]string, 0, 2)
	for _, ref := range []string{sub.FirstChoice.Instructor, sub.SecondChoice.Instructor} {
		if addr := s.directory.Resolve(ref); addr != "" {
			cc = append(cc, addr)
		}
	}
	return domain.EmailMessage{
		To:      []string{s.staffAddress},
		Cc:      cc,
		Subject: subject,
		Body:    body,
	}, nil
}

func (s *reservationService) composeApplicantMessage(sub *domain.ReservationSubmission) (domain.EmailMessage, error) {
	subject, body, err := s.renderer.Render("applicant", sub)
	if err != nil {
		return domain.EmailMessage{}, err
	}
	return domain.EmailMessage{
		To:      []string{sub.Applicant.Email},
		Subject: subject,
		Body:    body,
	}, nil
}

func (s *reservationService) dispatch(ctx context.Context, role domain.RecipientRole, msg domain.EmailMessage) domain.NotificationOutcome {
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("notification dispatch failed", "role", role, "to", msg.To, "error", err)
		return domain.NotificationOutcome{Role: role, Err: err}
	}
	s.logger.Info("notification dispatched", "role", role, "to", msg.To, "cc", msg.Cc)
	return domain.NotificationOutcome{Role: role, Delivered: true}
}
