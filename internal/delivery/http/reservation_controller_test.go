package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lessonreserve/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReservationService implements domain.ReservationService for handler tests.
type fakeReservationService struct {
	notifyCalls int
	lastSub     *domain.ReservationSubmission
	result      domain.DispatchResult
	err         error
}

func (f *fakeReservationService) Notify(ctx context.Context, sub *domain.ReservationSubmission) (domain.DispatchResult, error) {
	f.notifyCalls++
	f.lastSub = sub
	return f.result, f.err
}

func deliveredResult() domain.DispatchResult {
	return domain.DispatchResult{
		Staff:     domain.NotificationOutcome{Role: domain.RoleStaff, Delivered: true},
		Applicant: domain.NotificationOutcome{Role: domain.RoleApplicant, Delivered: true},
	}
}

const validBody = `{
	"applicant": {"name": "田中太郎", "email": "taro@example.com", "phone": "090-0000-0000"},
	"firstChoice": {"title": "サンプル１", "start": "2024-01-07T11:45:00+09:00", "end": "2024-01-07T13:00:00+09:00", "instructor": "user1"},
	"secondChoice": {"title": "サンプル5", "start": "2024-01-08T14:00:00+09:00", "end": "2024-01-08T15:00:00+09:00", "instructor": "user2"}
}`

func TestReservationController_Create(t *testing.T) {
	applicantFailed := deliveredResult()
	applicantFailed.Applicant = domain.NotificationOutcome{
		Role: domain.RoleApplicant,
		Err:  errors.New("mailbox unavailable"),
	}

	tests := []struct {
		name            string
		body            string
		result          domain.DispatchResult
		serviceErr      error
		wantStatus      int
		wantMessage     string
		wantNotifyCalls int
	}{
		{
			name:            "success",
			body:            validBody,
			result:          deliveredResult(),
			wantStatus:      http.StatusOK,
			wantMessage:     "メール送信成功",
			wantNotifyCalls: 1,
		},
		{
			name:            "malformed json never reaches dispatcher",
			body:            `{invalid`,
			wantStatus:      http.StatusInternalServerError,
			wantMessage:     "エラー発生",
			wantNotifyCalls: 0,
		},
		{
			name:            "missing applicant email never reaches dispatcher",
			body:            `{"applicant": {"name": "田中太郎", "phone": "090-0000-0000"}, "firstChoice": {"title": "サンプル１", "start": "a", "end": "b", "instructor": "user1"}, "secondChoice": {"title": "サンプル5", "start": "a", "end": "b", "instructor": "user2"}}`,
			wantStatus:      http.StatusInternalServerError,
			wantMessage:     "エラー発生",
			wantNotifyCalls: 0,
		},
		{
			name:            "partial dispatch failure",
			body:            validBody,
			result:          applicantFailed,
			wantStatus:      http.StatusInternalServerError,
			wantMessage:     "エラー発生",
			wantNotifyCalls: 1,
		},
		{
			name:            "composition failure",
			body:            validBody,
			serviceErr:      errors.New("compose staff message: template missing"),
			wantStatus:      http.StatusInternalServerError,
			wantMessage:     "エラー発生",
			wantNotifyCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeReservationService{result: tt.result, err: tt.serviceErr}
			ctrl := NewReservationController(fake, slog.New(slog.DiscardHandler))
			req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Contains(t, rr.Body.String(), tt.wantMessage, "response body")
			assert.Equal(t, tt.wantNotifyCalls, fake.notifyCalls, "Notify calls")
		})
	}
}

func TestReservationController_IdenticalChoicesAccepted(t *testing.T) {
	fake := &fakeReservationService{result: deliveredResult()}
	ctrl := NewReservationController(fake, slog.New(slog.DiscardHandler))

	body := `{
		"applicant": {"name": "田中太郎", "email": "taro@example.com", "phone": "090-0000-0000"},
		"firstChoice": {"title": "サンプル１", "start": "a", "end": "b", "instructor": "user1"},
		"secondChoice": {"title": "サンプル１", "start": "a", "end": "b", "instructor": "user1"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	ctrl.Create(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, fake.notifyCalls)
	assert.Equal(t, fake.lastSub.FirstChoice, fake.lastSub.SecondChoice)
}
