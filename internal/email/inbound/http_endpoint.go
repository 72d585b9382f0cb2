package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Send adapts an email for the configured integration and queues it for dispatch.
// @Summary Send email
// @Description Validates the request, adapts it to the active provider and dispatches it.
// @Tags Email
// @Accept json
// @Param request body EmailRequest true "Email payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/email/send [post]
func (h *HTTPEndpoint) Send(r *router.Request) (any, error) {
	var req EmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if _, err := h.uc.Send(r.Context(), req.toEntity()); err != nil {
		return nil, err
	}

	return nil, nil
}

// Adapt returns the payload an email would be sent with for the given provider.
// @Summary Preview provider payload
// @Description Validates the request and adapts it to the provider in the path without dispatching.
// @Tags Email
// @Accept json
// @Produce json
// @Param provider path string true "Provider (AWS or OCI, any case)"
// @Param request body EmailRequest true "Email payload"
// @Success 200 {object} object "Provider payload"
// @Failure 400 {object} router.errorResponse "Invalid request or unknown provider"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/email/adapt/{provider} [post]
func (h *HTTPEndpoint) Adapt(r *router.Request) (any, error) {
	var req EmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.uc.Adapt(r.Context(), req.toEntity(), r.GetParam("provider"))
}

// Providers lists the supported providers and their payload fields.
// @Summary List providers
// @Tags Email
// @Produce json
// @Success 200 {object} ProvidersResponse "Provider schemas"
// @Router /api/v1/email/providers [get]
func (h *HTTPEndpoint) Providers(r *router.Request) (any, error) {
	items := h.uc.Providers(r.Context())

	return ProvidersResponse{
		Providers: lo.Map(items, func(ps entity.ProviderSchema, _ int) ProviderResponse {
			return ProviderResponse{
				Name: ps.Provider.String(),
				Fields: lo.Map(ps.Fields, func(f entity.ProviderField, _ int) ProviderFieldResponse {
					return ProviderFieldResponse{
						Name:      f.Name,
						Source:    f.Source,
						Required:  f.Required,
						Email:     f.Email,
						MaxLength: f.MaxLength,
					}
				}),
			}
		}),
	}, nil
}
