package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
)

// Providers describes the payload shape of every supported provider.
func (s *Usecase) Providers(ctx context.Context) []entity.ProviderSchema {
	_, span := s.startSpan(ctx, "Providers")
	defer span.End()

	return lo.Map(entity.Providers(), func(p entity.Provider, _ int) entity.ProviderSchema {
		schema := schemas[p]
		return entity.ProviderSchema{
			Provider: p,
			Fields: lo.Map(schema.constraints, func(fc validator.FieldConstraint, _ int) entity.ProviderField {
				return entity.ProviderField{
					Name:      fc.Field,
					Source:    schema.sources[fc.Field],
					Required:  hasRule(fc, validator.RuleRequired),
					Email:     hasRule(fc, validator.RuleEmail),
					MaxLength: ruleLimit(fc, validator.RuleMaxLength),
				}
			}),
		}
	})
}

func hasRule(fc validator.FieldConstraint, kind validator.RuleKind) bool {
	return lo.ContainsBy(fc.Rules, func(r validator.Rule) bool { return r.Kind() == kind })
}

func ruleLimit(fc validator.FieldConstraint, kind validator.RuleKind) int {
	rule, ok := lo.Find(fc.Rules, func(r validator.Rule) bool { return r.Kind() == kind })
	if !ok {
		return 0
	}
	return rule.Limit()
}
