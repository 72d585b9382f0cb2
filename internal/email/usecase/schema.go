package usecase

import (
	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
)

// providerSchema binds a provider to its payload builder and constraints.
// sources maps each payload field to the canonical field it is copied from.
type providerSchema struct {
	constraints validator.ConstraintSet
	sources     map[string]string
	build       func(entity.Email) entity.Payload
}

var canonicalConstraints = validator.ConstraintSet{
	validator.Field(entity.FieldRecipientEmail, validator.Required(), validator.Email()),
	validator.Field(entity.FieldRecipientName, validator.Required(), validator.MaxLength(255)),
	validator.Field(entity.FieldSenderEmail, validator.Required(), validator.Email()),
	validator.Field(entity.FieldSubject, validator.Required(), validator.MaxLength(255)),
	validator.Field(entity.FieldBody, validator.Required(), validator.MaxLength(1000)),
}

var schemas = map[entity.Provider]providerSchema{
	entity.ProviderAWS: {
		constraints: validator.ConstraintSet{
			validator.Field("recipient", validator.Required(), validator.Email(), validator.MaxLength(45)),
			validator.Field("recipientName", validator.Required(), validator.MaxLength(60)),
			validator.Field("sender", validator.Required(), validator.Email(), validator.MaxLength(45)),
			validator.Field("subject", validator.Required(), validator.MaxLength(120)),
			validator.Field("content", validator.Required(), validator.MaxLength(256)),
		},
		sources: map[string]string{
			"recipient":     entity.FieldRecipientEmail,
			"recipientName": entity.FieldRecipientName,
			"sender":        entity.FieldSenderEmail,
			"subject":       entity.FieldSubject,
			"content":       entity.FieldBody,
		},
		build: func(e entity.Email) entity.Payload {
			return entity.AWSPayload{
				Recipient:     e.RecipientEmail,
				RecipientName: e.RecipientName,
				Sender:        e.SenderEmail,
				Subject:       e.Subject,
				Content:       e.Body,
			}
		},
	},
	entity.ProviderOCI: {
		constraints: validator.ConstraintSet{
			validator.Field("recipientEmail", validator.Required(), validator.Email(), validator.MaxLength(40)),
			validator.Field("recipientName", validator.Required(), validator.MaxLength(50)),
			validator.Field("senderEmail", validator.Required(), validator.Email(), validator.MaxLength(40)),
			validator.Field("subject", validator.Required(), validator.MaxLength(100)),
			validator.Field("body", validator.Required(), validator.MaxLength(250)),
		},
		sources: map[string]string{
			"recipientEmail": entity.FieldRecipientEmail,
			"recipientName":  entity.FieldRecipientName,
			"senderEmail":    entity.FieldSenderEmail,
			"subject":        entity.FieldSubject,
			"body":           entity.FieldBody,
		},
		build: func(e entity.Email) entity.Payload {
			return entity.OCIPayload{
				RecipientEmail: e.RecipientEmail,
				RecipientName:  e.RecipientName,
				SenderEmail:    e.SenderEmail,
				Subject:        e.Subject,
				Body:           e.Body,
			}
		},
	},
}
