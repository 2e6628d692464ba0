package domain

import "context"

// EmailMessage is one plain-text outbound email.
type EmailMessage struct {
	To      []string
	Cc      []string
	Subject string
	Body    string
}

// Mailer defines the contract for the outbound mail transport
// (infrastructure port). Implementations must respect ctx so a stalled
// transport cannot hang the caller.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// MessageRenderer renders a notification subject and plain-text body from a
// named template with the given data.
type MessageRenderer interface {
	Render(templateName string, data any) (subject, body string, err error)
}

// RecipientRole names which party a notification targets.
type RecipientRole string

const (
	RoleStaff     RecipientRole = "staff"
	RoleApplicant RecipientRole = "applicant"
)

// NotificationOutcome records the result of one dispatch attempt. It lives
// only for the duration of one submission's handling.
type NotificationOutcome struct {
	Role      RecipientRole
	Delivered bool
	Err       error
}

// DispatchResult aggregates the two independent dispatch outcomes of one
// submission. Both sends are always attempted; a failure on one side never
// rolls back the other.
type DispatchResult struct {
	Staff     NotificationOutcome
	Applicant NotificationOutcome
}

// Failed reports whether either notification failed to deliver.
func (r DispatchResult) Failed() bool {
	return !r.Staff.Delivered || !r.Applicant.Delivered
}
