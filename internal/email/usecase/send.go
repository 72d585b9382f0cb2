package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
)

// Send adapts email for the configured integration and hands the payload to
// the dispatcher in the background. Dispatch failures are logged only.
func (s *Usecase) Send(ctx context.Context, email entity.Email) (entity.Payload, error) {
	ctx, span := s.startSpan(ctx, "Send")
	defer span.End()

	payload, err := s.Adapt(ctx, email, s.Integration())
	if err != nil {
		return nil, err
	}

	started := s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.dispatcher.Publish(ctx, payload); err != nil {
			slog.ErrorContext(ctx, "failed to dispatch email payload", "provider", payload.Provider().String(), "error", err)
		}
		return nil
	})
	if !started {
		slog.ErrorContext(ctx, "email payload not dispatched", "provider", payload.Provider().String())
	}

	return payload, nil
}
