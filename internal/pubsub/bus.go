package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// DefaultBufferSize is the per-subscriber output buffer.
const DefaultBufferSize = 64

var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)

// Option configures a Bus.
type Option func(*Bus)

// WithBufferSize sets the per-subscriber output buffer.
func WithBufferSize(n int) Option {
	return func(b *Bus) { b.buffer = n }
}

// WithLogger sets the logger for delivery failures and watermill internals.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) { b.logger = l }
}

// Bus is an in-memory Publisher and Subscriber on a watermill GoChannel.
// Each subscription runs its handler on its own goroutine, one message at a time.
type Bus struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
	buffer  int

	loops     sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewBus creates a ready to use bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{logger: slog.Default(), buffer: DefaultBufferSize}
	for _, opt := range opts {
		opt(b)
	}
	b.channel = gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: int64(b.buffer)},
		newSlogAdapter(b.logger),
	)
	return b
}

// Publish implements Publisher.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.channel.Publish(msg.Topic, toWatermill(msg)); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Topic, err)
	}
	return nil
}

// Subscribe implements Subscriber. A handler error or panic is logged and the
// message is acked; the in-memory channel has no dead letter queue.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}

	b.loops.Add(1)
	go func() {
		defer b.loops.Done()
		for wmMsg := range messages {
			b.dispatch(ctx, topic, handler, wmMsg)
		}
		b.logger.Debug("Subscription message loop ended", "topic", topic)
	}()
	return nil
}

func (b *Bus) dispatch(ctx context.Context, topic string, handler Handler, wmMsg *message.Message) {
	defer wmMsg.Ack()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Subscriber panicked", "topic", topic, "msg_id", wmMsg.UUID, "panic", r)
		}
	}()

	if err := handler(ctx, fromWatermill(wmMsg)); err != nil {
		b.logger.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
	}
}

// Close stops all subscriptions and waits for running handlers to return.
func (b *Bus) Close() error {
	b.closeOnce.Do(func() {
		b.closeErr = b.channel.Close()
		b.loops.Wait()
	})
	return b.closeErr
}

func toWatermill(msg Message) *message.Message {
	id := msg.ID
	if id == "" {
		id = watermill.NewUUID()
	}
	wmMsg := message.NewMessage(id, msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		ID:       wmMsg.UUID,
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}
