package validator

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)

	return v
}

var testSet = ConstraintSet{
	Field("sender", Required(), Email(), MaxLength(20)),
	Field("subject", Required(), MaxLength(5)),
	Field("note", MaxLength(3)),
}

func TestV10Validator_Check(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name   string
		values map[string]string
		want   []Violation
	}{
		{
			name:   "all valid",
			values: map[string]string{"sender": "a@b.com", "subject": "Hi"},
		},
		{
			name:   "missing and blank values fail required only",
			values: map[string]string{"subject": "   "},
			want: []Violation{
				{Field: "sender", Message: "sender is a required field"},
				{Field: "subject", Message: "subject is a required field"},
			},
		},
		{
			name:   "format is checked before length",
			values: map[string]string{"sender": strings.Repeat("x", 30), "subject": "Hi"},
			want: []Violation{
				{Field: "sender", Message: "sender must be a valid email address"},
			},
		},
		{
			name:   "address without a domain dot is rejected",
			values: map[string]string{"sender": "a@b", "subject": "Hi"},
			want: []Violation{
				{Field: "sender", Message: "sender must be a valid email address"},
			},
		},
		{
			name:   "plus addressing is accepted",
			values: map[string]string{"sender": "user+tag@ex.com", "subject": "Hi"},
		},
		{
			name:   "length exceeded",
			values: map[string]string{"sender": "a@b.com", "subject": "Hello!"},
			want: []Violation{
				{Field: "subject", Message: "subject must be a maximum of 5 characters in length"},
			},
		},
		{
			name:   "optional field still checked when present",
			values: map[string]string{"sender": "a@b.com", "subject": "Hi", "note": "long"},
			want: []Violation{
				{Field: "note", Message: "note must be a maximum of 3 characters in length"},
			},
		},
		{
			name:   "length counts characters not bytes",
			values: map[string]string{"sender": "a@b.com", "subject": "ééééé"},
		},
		{
			name:   "violations follow constraint set order",
			values: map[string]string{"subject": "toolong", "sender": "nope"},
			want: []Violation{
				{Field: "sender", Message: "sender must be a valid email address"},
				{Field: "subject", Message: "subject must be a maximum of 5 characters in length"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			res := v.Check(tt.values, testSet)

			// Assert
			assert.Equal(t, len(tt.want) == 0, res.Valid())
			assert.Equal(t, tt.want, res.Violations())
		})
	}
}

func TestV10Validator_CheckCustomMessage(t *testing.T) {
	v := newTestValidator(t)
	set := ConstraintSet{Field("to", Required().WithMessage("recipient is mandatory"))}

	res := v.Check(map[string]string{}, set)

	assert.Equal(t, []string{"recipient is mandatory"}, res.Messages())
	assert.Equal(t, []string{"to", "recipient is mandatory"}, res.Pairs())
}

func TestV10Validator_CheckConcurrent(t *testing.T) {
	v := newTestValidator(t)
	values := map[string]string{"sender": "bad", "subject": "Hi"}

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Check(values, testSet)
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, results[0], res)
	}
}

func TestV10Validator_Validate(t *testing.T) {
	v := newTestValidator(t)

	type settings struct {
		HTTPAddress string `validate:"required"`
		Driver      string `validate:"oneof=log nats"`
	}

	err := v.Validate(settings{Driver: "smtp"})

	var verr V10ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Values(), "http_address")
	assert.Contains(t, verr.Values(), "driver")
	assert.NoError(t, v.Validate(settings{HTTPAddress: ":8080", Driver: "log"}))
}

func TestConstraintSet_Limits(t *testing.T) {
	assert.Equal(t, []string{"sender", "subject", "note"}, testSet.Fields())
	assert.Equal(t, 20, testSet[0].Rules[2].Limit())
	assert.Equal(t, 0, testSet[0].Rules[0].Limit())
}
