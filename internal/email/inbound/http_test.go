package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/goerror"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUsecase struct {
	mock.Mock
}

func (m *mockUsecase) Send(ctx context.Context, email entity.Email) (entity.Payload, error) {
	args := m.Called(ctx, email)
	p, _ := args.Get(0).(entity.Payload)
	return p, args.Error(1)
}

func (m *mockUsecase) Adapt(ctx context.Context, email entity.Email, providerID string) (entity.Payload, error) {
	args := m.Called(ctx, email, providerID)
	p, _ := args.Get(0).(entity.Payload)
	return p, args.Error(1)
}

func (m *mockUsecase) Providers(ctx context.Context) []entity.ProviderSchema {
	return m.Called(ctx).Get(0).([]entity.ProviderSchema)
}

const requestBody = `{"recipient_email":"a@b.com","recipient_name":"Bob","sender_email":"s@b.com","subject":"Hi","body":"Hello"}`

var requestEmail = entity.Email{
	RecipientEmail: "a@b.com", RecipientName: "Bob", SenderEmail: "s@b.com", Subject: "Hi", Body: "Hello",
}

func newServer(t *testing.T) (*router.Router, *mockUsecase) {
	t.Helper()

	r := router.NewRouter(router.Config{
		Name:       "mailbridge",
		Clock:      clock.Fixed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Instrument: instrument.NewNoop(),
	})
	m := &mockUsecase{}
	RegisterHTTPEndpoint(r, m)

	return r, m
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTPEndpoint_Send(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		r, m := newServer(t)
		m.On("Send", mock.Anything, requestEmail).Return(entity.AWSPayload{Recipient: "a@b.com"}, nil).Once()

		rec := do(r, http.MethodPost, "/api/v1/email/send", requestBody)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		m.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, m := newServer(t)

		rec := do(r, http.MethodPost, "/api/v1/email/send", `{"recipient_email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("validation failure", func(t *testing.T) {
		r, m := newServer(t)
		m.On("Send", mock.Anything, mock.Anything).
			Return(nil, goerror.NewInvalidInput("Invalid email request", "sender_email", "sender_email must be a valid email address")).Once()

		rec := do(r, http.MethodPost, "/api/v1/email/send", requestBody)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email request", resp["message"])
		assert.Equal(t, []any{"sender_email must be a valid email address"}, resp["errors"])
		assert.Equal(t, float64(http.StatusBadRequest), resp["status"])
		assert.Equal(t, "2025-01-01T00:00:00Z", resp["timestamp"])
	})

	t.Run("unknown integration", func(t *testing.T) {
		r, m := newServer(t)
		m.On("Send", mock.Anything, mock.Anything).
			Return(nil, goerror.NewBusiness(entity.ErrUnknownProvider, "unknown integration provider: SES", goerror.CodeUnknownProvider)).Once()

		rec := do(r, http.MethodPost, "/api/v1/email/send", requestBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown integration provider: SES")
	})

	t.Run("unexpected failure", func(t *testing.T) {
		r, m := newServer(t)
		m.On("Send", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		rec := do(r, http.MethodPost, "/api/v1/email/send", requestBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestHTTPEndpoint_Adapt(t *testing.T) {
	r, m := newServer(t)
	m.On("Adapt", mock.Anything, requestEmail, "oci").Return(entity.OCIPayload{
		RecipientEmail: "a@b.com", RecipientName: "Bob", SenderEmail: "s@b.com", Subject: "Hi", Body: "Hello",
	}, nil).Once()

	rec := do(r, http.MethodPost, "/api/v1/email/adapt/oci", requestBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"recipientEmail":"a@b.com","recipientName":"Bob","senderEmail":"s@b.com","subject":"Hi","body":"Hello"}`,
		rec.Body.String())
	m.AssertExpectations(t)
}

func TestHTTPEndpoint_Providers(t *testing.T) {
	r, m := newServer(t)
	m.On("Providers", mock.Anything).Return([]entity.ProviderSchema{{
		Provider: entity.ProviderAWS,
		Fields:   []entity.ProviderField{{Name: "recipient", Source: "recipient_email", Required: true, Email: true, MaxLength: 45}},
	}}).Once()

	rec := do(r, http.MethodGet, "/api/v1/email/providers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"providers":[{"name":"AWS","fields":[
		{"name":"recipient","source":"recipient_email","required":true,"email":true,"max_length":45}
	]}]}`, rec.Body.String())
}
