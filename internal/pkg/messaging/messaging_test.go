package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Publish(t *testing.T) {
	var buf bytes.Buffer
	pub := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))

	res, err := pub.Publish(context.Background(), "mail.dispatch", OutgoingMessage{
		Body:    []byte(`{"provider":"AWS"}`),
		Key:     []byte("42"),
		Headers: []Header{{Key: "provider", Value: "AWS"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "mail.dispatch", res.Topic)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "message published", line["msg"])
	assert.Equal(t, "mail.dispatch", line["destination"])
	assert.Equal(t, "42", line["key"])
	assert.Equal(t, map[string]any{"provider": "AWS"}, line["body"])
	assert.Equal(t, map[string]any{"provider": "AWS"}, line["headers"])
}

func TestLog_PublishErrors(t *testing.T) {
	pub := NewLog(slog.New(slog.DiscardHandler))

	_, err := pub.Publish(context.Background(), "", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrDestinationRequired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pub.Publish(ctx, "t", OutgoingMessage{})
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, pub.Close())
	_, err = pub.Publish(context.Background(), "t", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNewFromDriver(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		driver  string
		opts    FactoryOptions
		wantErr error
		wantLog bool
	}{
		{name: "empty driver falls back to log", driver: "", wantLog: true},
		{name: "log driver", driver: " LOG ", wantLog: true},
		{name: "unknown driver", driver: "smtp", wantErr: ErrUnknownDriver},
		{name: "nats without url", driver: DriverNATS, opts: FactoryOptions{ConnectRetries: 3}, wantErr: ErrNATSURLRequired},
		{name: "nsq without address", driver: DriverNSQ, wantErr: ErrNSQProducerAddrRequired},
		{name: "kafka without brokers", driver: DriverKafka, wantErr: ErrKafkaBrokersRequired},
		{name: "pubsub without project", driver: DriverGooglePubSub, wantErr: ErrPubSubProjectIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, err := NewFromDriver(ctx, tt.driver, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pub)
				return
			}

			require.NoError(t, err)
			_, ok := pub.(*Log)
			assert.Equal(t, tt.wantLog, ok)
		})
	}
}
