package entity

// Email is the provider-agnostic send request.
type Email struct {
	RecipientEmail string
	RecipientName  string
	SenderEmail    string
	Subject        string
	Body           string
}

// Canonical field names, shared with the JSON transport.
const (
	FieldRecipientEmail = "recipient_email"
	FieldRecipientName  = "recipient_name"
	FieldSenderEmail    = "sender_email"
	FieldSubject        = "subject"
	FieldBody           = "body"
)

// Fields returns the canonical field name to value map used for validation.
func (e Email) Fields() map[string]string {
	return map[string]string{
		FieldRecipientEmail: e.RecipientEmail,
		FieldRecipientName:  e.RecipientName,
		FieldSenderEmail:    e.SenderEmail,
		FieldSubject:        e.Subject,
		FieldBody:           e.Body,
	}
}
