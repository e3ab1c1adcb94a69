// Package notify fans booking events out to external channels on a
// best-effort basis. A channel failure is logged and swallowed; it can never
// fail or delay the reservation that triggered it.
package notify

import "context"

type Message struct {
	Subject string
	Body    string
}

// Channel is one outbound notification target. Implementations are attempted
// independently of each other.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}
