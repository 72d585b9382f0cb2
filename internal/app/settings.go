package app

import (
	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
)

// settings holds the values that must be sane before the service starts.
type settings struct {
	Name             string   `validate:"required"`
	HTTPAddress      string   `validate:"required,hostname_port"`
	Integration      string   `validate:"required"`
	DispatchTopic    string   `validate:"required"`
	Driver           string   `validate:"omitempty,oneof=log nats nsq kafka google-pubsub"`
	NATSServer       string   `validate:"required_if=Driver nats,omitempty,url"`
	NSQAddress       string   `validate:"required_if=Driver nsq,omitempty,hostname_port"`
	KafkaBrokers     []string `validate:"required_if=Driver kafka,dive,hostname_port"`
	PubSubProject    string   `validate:"required_if=Driver google-pubsub"`
	MaxGoroutine     int      `validate:"gte=0"`
	TraceSampleRatio float64  `validate:"gte=0,lte=1"`
}

func loadSettings(cfg config.Config, v validator.Validator) (settings, error) {
	s := settings{
		Name:             cfg.GetString("app.name"),
		HTTPAddress:      cfg.GetString("app.server.http.address"),
		Integration:      cfg.GetString("mail.integration"),
		DispatchTopic:    cfg.GetString("dispatch.topic"),
		Driver:           cfg.GetString("messaging.driver"),
		NATSServer:       cfg.GetString("messaging.nats.url"),
		NSQAddress:       cfg.GetString("messaging.nsq.producer_addr"),
		KafkaBrokers:     cfg.GetArray("messaging.kafka.brokers"),
		PubSubProject:    cfg.GetString("messaging.pubsub.project_id"),
		MaxGoroutine:     cfg.GetInt("app.server.max_goroutine"),
		TraceSampleRatio: cfg.GetFloat64("instrument.trace_sample_ratio"),
	}

	if err := v.Validate(s); err != nil {
		return settings{}, err
	}

	return s, nil
}
