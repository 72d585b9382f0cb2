package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/goerror"
	"go.opentelemetry.io/otel/attribute"
)

// Adapt validates email, maps it onto the payload of the provider named by
// providerID and validates the result against that provider's constraints.
// No payload is returned alongside an error.
func (s *Usecase) Adapt(ctx context.Context, email entity.Email, providerID string) (entity.Payload, error) {
	ctx, span := s.startSpan(ctx, "Adapt")
	defer span.End()

	span.SetAttributes(attribute.String("email.provider_id", providerID))

	provider := entity.ProviderFromString(providerID)

	if res := s.validator.Check(email.Fields(), canonicalConstraints); !res.Valid() {
		s.recordAdapt(ctx, provider.String(), outcomeInvalidRequest)
		slog.WarnContext(ctx, "email request rejected", "violations", res.Messages())
		return nil, goerror.NewInvalidInput("Invalid email request", res.Pairs()...)
	}

	schema, ok := schemas[provider]
	if !ok {
		s.recordAdapt(ctx, provider.String(), outcomeUnknownProvider)
		slog.WarnContext(ctx, "unknown integration provider", "provider_id", providerID)
		return nil, goerror.NewBusiness(
			fmt.Errorf("%w: %s", entity.ErrUnknownProvider, providerID),
			"unknown integration provider: "+providerID,
			goerror.CodeUnknownProvider,
		)
	}

	payload := schema.build(email)

	if res := s.validator.Check(payload.Fields(), schema.constraints); !res.Valid() {
		s.recordAdapt(ctx, provider.String(), outcomeInvalidPayload)
		slog.WarnContext(ctx, "adapted payload rejected", "provider", provider.String(), "violations", res.Messages())
		return nil, goerror.NewInvalidInput("Invalid payload for provider "+provider.String(), res.Pairs()...)
	}

	s.recordAdapt(ctx, provider.String(), outcomeSuccess)

	return payload, nil
}
