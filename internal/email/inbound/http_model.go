package inbound

import "github.com/shandysiswandi/mailbridge/internal/email/entity"

type EmailRequest struct {
	RecipientEmail string `json:"recipient_email" example:"a@b.com"`
	RecipientName  string `json:"recipient_name" example:"Bob"`
	SenderEmail    string `json:"sender_email" example:"s@b.com"`
	Subject        string `json:"subject" example:"Hi"`
	Body           string `json:"body" example:"Hello"`
}

func (r EmailRequest) toEntity() entity.Email {
	return entity.Email{
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		SenderEmail:    r.SenderEmail,
		Subject:        r.Subject,
		Body:           r.Body,
	}
}

type ProviderFieldResponse struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	Required  bool   `json:"required"`
	Email     bool   `json:"email"`
	MaxLength int    `json:"max_length"`
}

type ProviderResponse struct {
	Name   string                  `json:"name"`
	Fields []ProviderFieldResponse `json:"fields"`
}

type ProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
}
