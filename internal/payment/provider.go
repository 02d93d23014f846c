package payment

import "context"

// LineItem describes the single ticket a hosted checkout session sells.
type LineItem struct {
	Name        string
	Description string
	Currency    string
	UnitAmount  int64
}

// Provider opens hosted payment sessions. The returned id is an opaque
// handle the caller redirects to; nothing about the purchase is recorded
// here. SessionPaid reports whether the session's payment has settled,
// which is what the confirm leg checks before touching inventory.
type Provider interface {
	CreateSession(ctx context.Context, item LineItem) (sessionID string, err error)
	SessionPaid(ctx context.Context, sessionID string) (bool, error)
}
