package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// DriverLog writes messages to the logger.
	DriverLog = "log"
	// DriverNSQ selects the NSQ backend.
	DriverNSQ = "nsq"
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
	// DriverGooglePubSub selects the Google Pub/Sub backend.
	DriverGooglePubSub = "google-pubsub"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions groups config for supported messaging backends.
type FactoryOptions struct {
	// Logger is used by the log driver.
	Logger *slog.Logger
	// ConnectRetries bounds connection attempts for broker drivers.
	ConnectRetries uint64
	// ConnectBackoff is the base delay between connection attempts.
	ConnectBackoff time.Duration

	NSQ    NSQConfig
	Kafka  KafkaConfig
	NATS   NATSConfig
	PubSub PubSubConfig
}

// NewFromDriver constructs a Publisher by driver name. Broker connections
// are retried with exponential backoff. An empty driver selects DriverLog.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Publisher, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))

	var connect func(context.Context) (Publisher, error)
	switch driver {
	case "", DriverLog:
		return NewLog(opts.Logger), nil
	case DriverNSQ:
		connect = func(context.Context) (Publisher, error) { return NewNSQ(opts.NSQ) }
	case DriverKafka:
		connect = func(ctx context.Context) (Publisher, error) { return NewKafka(ctx, opts.Kafka) }
	case DriverNATS:
		connect = func(context.Context) (Publisher, error) { return NewNATS(opts.NATS) }
	case DriverGooglePubSub:
		connect = func(ctx context.Context) (Publisher, error) { return NewPubSub(ctx, opts.PubSub) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	backoff := opts.ConnectBackoff
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}

	var pub Publisher
	err := retry.Do(ctx, retry.WithMaxRetries(opts.ConnectRetries, retry.NewExponential(backoff)), func(ctx context.Context) error {
		p, err := connect(ctx)
		if err != nil {
			if isConfigError(err) {
				return err
			}
			slog.WarnContext(ctx, "messaging connect failed, retrying", "driver", driver, "error", err)
			return retry.RetryableError(err)
		}
		pub = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pub, nil
}

func isConfigError(err error) bool {
	return errors.Is(err, ErrNATSURLRequired) ||
		errors.Is(err, ErrNSQProducerAddrRequired) ||
		errors.Is(err, ErrKafkaBrokersRequired) ||
		errors.Is(err, ErrPubSubProjectIDRequired)
}
