package entity

// Payload is a provider-specific rendition of an Email.
// It is implemented only by the payload types of this package.
type Payload interface {
	Provider() Provider
	// Fields returns the provider field name to value map.
	Fields() map[string]string

	sealed()
}

// AWSPayload is the payload accepted by the AWS integration.
type AWSPayload struct {
	Recipient     string `json:"recipient"`
	RecipientName string `json:"recipientName"`
	Sender        string `json:"sender"`
	Subject       string `json:"subject"`
	Content       string `json:"content"`
}

func (AWSPayload) Provider() Provider { return ProviderAWS }

func (p AWSPayload) Fields() map[string]string {
	return map[string]string{
		"recipient":     p.Recipient,
		"recipientName": p.RecipientName,
		"sender":        p.Sender,
		"subject":       p.Subject,
		"content":       p.Content,
	}
}

func (AWSPayload) sealed() {}

// OCIPayload is the payload accepted by the OCI integration.
type OCIPayload struct {
	RecipientEmail string `json:"recipientEmail"`
	RecipientName  string `json:"recipientName"`
	SenderEmail    string `json:"senderEmail"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

func (OCIPayload) Provider() Provider { return ProviderOCI }

func (p OCIPayload) Fields() map[string]string {
	return map[string]string{
		"recipientEmail": p.RecipientEmail,
		"recipientName":  p.RecipientName,
		"senderEmail":    p.SenderEmail,
		"subject":        p.Subject,
		"body":           p.Body,
	}
}

func (OCIPayload) sealed() {}
