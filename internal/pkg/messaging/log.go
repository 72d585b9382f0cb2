package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Log is a Publisher that writes messages to the structured logger instead of
// a broker. It is the default driver for local runs.
type Log struct {
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewLog returns a Log publisher. A nil logger means slog.Default at publish time.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Publish logs the message body, decoded when it is JSON.
func (l *Log) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrDestinationRequired
	}

	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return PublishResult{}, ErrClosed
	}

	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	var body any = string(msg.Body)
	if json.Valid(msg.Body) {
		body = json.RawMessage(msg.Body)
	}

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = h.Value
	}

	logger.InfoContext(ctx, "message published",
		"destination", destination,
		"key", string(msg.Key),
		"headers", headers,
		"body", body,
	)

	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

// Close marks the publisher closed.
func (l *Log) Close() error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	return nil
}
