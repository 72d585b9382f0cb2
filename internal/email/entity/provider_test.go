package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderFromString(t *testing.T) {
	tests := []struct {
		raw  string
		want Provider
	}{
		{raw: "AWS", want: ProviderAWS},
		{raw: "aws", want: ProviderAWS},
		{raw: "Aws", want: ProviderAWS},
		{raw: "oci", want: ProviderOCI},
		{raw: "OCI", want: ProviderOCI},
		{raw: " AWS", want: ProviderUnknown},
		{raw: "UNKNOWN", want: ProviderUnknown},
		{raw: "", want: ProviderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderFromString(tt.raw))
		})
	}
}

func TestProvider_String(t *testing.T) {
	assert.Equal(t, "AWS", ProviderAWS.String())
	assert.Equal(t, "OCI", ProviderOCI.String())
	assert.Equal(t, "UNKNOWN", ProviderUnknown.String())
	assert.Equal(t, []Provider{ProviderAWS, ProviderOCI}, Providers())
}

func TestPayload_Fields(t *testing.T) {
	aws := AWSPayload{Recipient: "a@b.com", RecipientName: "Bob", Sender: "s@b.com", Subject: "Hi", Content: "Hello"}
	assert.Equal(t, ProviderAWS, aws.Provider())
	assert.Equal(t, "Hello", aws.Fields()["content"])
	assert.Len(t, aws.Fields(), 5)

	oci := OCIPayload{RecipientEmail: "a@b.com", RecipientName: "Bob", SenderEmail: "s@b.com", Subject: "Hi", Body: "Hello"}
	assert.Equal(t, ProviderOCI, oci.Provider())
	assert.Equal(t, "a@b.com", oci.Fields()["recipientEmail"])
	assert.Len(t, oci.Fields(), 5)
}
