package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedNumber int64

func (f fixedNumber) Generate() int64 { return int64(f) }

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, messaging.OutgoingMessage) (messaging.PublishResult, error) {
	return messaging.PublishResult{}, errors.New("broker down")
}

func (failingPublisher) Close() error { return nil }

var now = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func TestDispatch_Publish(t *testing.T) {
	var buf bytes.Buffer
	pub := messaging.NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))
	d := New(pub, "mail.dispatch", fixedNumber(1879048192), clock.Fixed(now), instrument.NewNoop())

	err := d.Publish(context.Background(), entity.OCIPayload{
		RecipientEmail: "a@b.com", RecipientName: "Bob", SenderEmail: "s@b.com", Subject: "Hi", Body: "Hello",
	})
	require.NoError(t, err)

	var line struct {
		Destination string            `json:"destination"`
		Key         string            `json:"key"`
		Headers     map[string]string `json:"headers"`
		Body        json.RawMessage   `json:"body"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "mail.dispatch", line.Destination)
	assert.Equal(t, "1879048192", line.Key)
	assert.Equal(t, "OCI", line.Headers["provider"])
	assert.JSONEq(t, `{
		"id": "1879048192",
		"provider": "OCI",
		"payload": {"recipientEmail":"a@b.com","recipientName":"Bob","senderEmail":"s@b.com","subject":"Hi","body":"Hello"},
		"created_at": "2025-01-02T03:04:05Z"
	}`, string(line.Body))
}

func TestDispatch_PublishError(t *testing.T) {
	d := New(failingPublisher{}, "mail.dispatch", fixedNumber(1), clock.Fixed(now), instrument.NewNoop())

	err := d.Publish(context.Background(), entity.AWSPayload{Recipient: "a@b.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish to mail.dispatch")
}
