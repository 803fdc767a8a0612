package interfaces

import "context"

// IEmailSender delivers notification emails (SES in production). A nil
// sender means notifications are persisted but not emailed.
type IEmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
