// Package delivery sends outbound text messages through a carrier
// gateway. Delivery is fire-and-forget from the engine's perspective:
// callers log failures and never surface them to the state machine.
package delivery

import "context"

// Sender delivers one text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}
