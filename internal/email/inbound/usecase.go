package inbound

import (
	"context"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
)

type uc interface {
	Send(ctx context.Context, email entity.Email) (entity.Payload, error)
	Adapt(ctx context.Context, email entity.Email, providerID string) (entity.Payload, error)
	Providers(ctx context.Context) []entity.ProviderSchema
}
