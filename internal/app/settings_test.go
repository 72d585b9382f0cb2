package app

import (
	"errors"
	"testing"

	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
app:
  name: mailbridge
  server:
    http:
      address: ":8080"
mail:
  integration: AWS
dispatch:
  topic: mail.dispatch
`

func TestLoadSettings(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		extra     string
		wantField string
	}{
		{name: "defaults to the log driver", extra: ""},
		{name: "nats with url", extra: "messaging:\n  driver: nats\n  nats:\n    url: nats://localhost:4222\n"},
		{name: "kafka with brokers", extra: "messaging:\n  driver: kafka\n  kafka:\n    brokers: localhost:9092,localhost:9093\n"},
		{name: "unsupported driver", extra: "messaging:\n  driver: smtp\n", wantField: "driver"},
		{name: "nats without url", extra: "messaging:\n  driver: nats\n", wantField: "nats_server"},
		{name: "nsq without address", extra: "messaging:\n  driver: nsq\n", wantField: "nsq_address"},
		{name: "pubsub without project", extra: "messaging:\n  driver: google-pubsub\n", wantField: "pub_sub_project"},
		{name: "sample ratio out of range", extra: "instrument:\n  trace_sample_ratio: 2\n", wantField: "trace_sample_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.NewViperFromBytes("yaml", []byte(baseConfig+tt.extra))
			require.NoError(t, err)

			s, err := loadSettings(cfg, v)

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, "AWS", s.Integration)
				return
			}

			var verr validator.V10ValidationError
			require.True(t, errors.As(err, &verr), "%v", err)
			assert.Contains(t, verr.Values(), tt.wantField)
		})
	}
}

func TestLoadSettings_MissingBasics(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}\n"))
	require.NoError(t, err)

	_, err = loadSettings(cfg, v)

	var verr validator.V10ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"name", "http_address", "integration", "dispatch_topic"} {
		assert.Contains(t, verr.Values(), field)
	}
}
