// internal/sms/sms.go
package sms

import "context"

// Sender is the SMS gateway port. OTP delivery and booking notifications go
// through it; failures on the notification paths are logged and swallowed so
// they never block the primary flow.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}
