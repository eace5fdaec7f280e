// Package pubsub is the in-process event bus between request handlers and
// background consumers such as the contact notifier.
package pubsub

import (
	"context"
)

// Message is a published event.
type Message struct {
	// ID is assigned on publish when empty.
	ID    string
	Topic string
	// Payload is JSON for typed events.
	Payload  []byte
	Metadata map[string]string
}

// Handler processes one delivered message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to a topic.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Subscriber delivers messages of a topic to a handler. Subscribe returns once
// the subscription is active; delivery stops when ctx is canceled.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
}
