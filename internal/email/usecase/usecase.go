package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"github.com/shandysiswandi/mailbridge/internal/pkg/goroutine"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const keyIntegration = "mail.integration"

const (
	outcomeSuccess         = "success"
	outcomeInvalidRequest  = "invalid_request"
	outcomeUnknownProvider = "unknown_provider"
	outcomeInvalidPayload  = "invalid_payload"
)

type dispatcher interface {
	Publish(ctx context.Context, payload entity.Payload) error
}

type Usecase struct {
	validator   validator.Validator
	ins         instrument.Instrumentation
	goroutine   *goroutine.Manager
	dispatcher  dispatcher
	integration *atomic.String
	adaptResult metric.Int64Counter
}

type Dependency struct {
	Config     config.Config
	Validator  validator.Validator
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
	Dispatcher dispatcher
}

func New(dep Dependency) *Usecase {
	s := &Usecase{
		validator:   dep.Validator,
		ins:         dep.Instrument,
		goroutine:   dep.Goroutine,
		dispatcher:  dep.Dispatcher,
		integration: atomic.NewString(dep.Config.GetString(keyIntegration)),
	}

	counter, err := s.ins.Meter("email.usecase").Int64Counter("email.adapt.result",
		metric.WithDescription("Number of adaptations by provider and outcome"))
	if err != nil {
		slog.Error("failed to create email adapt counter", "error", err)
	}
	s.adaptResult = counter

	dep.Config.OnChange(func() {
		prev, next := s.integration.Load(), dep.Config.GetString(keyIntegration)
		s.integration.Store(next)
		if prev != next {
			slog.Info("mail integration changed", "from", prev, "to", next)
		}
	})

	return s
}

// Integration returns the active integration identifier.
func (s *Usecase) Integration() string {
	return s.integration.Load()
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("email.usecase").Start(ctx, name)
}

func (s *Usecase) recordAdapt(ctx context.Context, provider, outcome string) {
	if s.adaptResult == nil {
		return
	}
	s.adaptResult.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	))
}
