package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
)

type stubContactSender struct {
	fail  bool
	refID string
	last  models.ContactMessage
}

func (s *stubContactSender) SubmitContact(_ context.Context, msg models.ContactMessage) (domain.SubmissionResult, error) {
	s.last = msg
	if s.fail {
		return domain.SubmissionResult{}, errors.New("dns failure")
	}
	return domain.SubmissionResult{Success: true, RefID: s.refID}, nil
}

func TestContactSubmitRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	f := NewContactForm(&stubContactSender{})

	require.False(t, f.Submit(ctx))
	errs := f.Errors()
	assert.Equal(t, CodeRequired, errs["name"])
	assert.Equal(t, CodeRequired, errs["email"])
	assert.Equal(t, CodeRequired, errs["message"])
}

func TestContactSubmitChecksEmailFormat(t *testing.T) {
	ctx := context.Background()
	f := NewContactForm(&stubContactSender{})
	f.SetField("name", "Riley")
	f.SetField("email", "riley@nowhere")
	f.SetField("message", "Looking for LTL rates.")

	require.False(t, f.Submit(ctx))
	assert.Equal(t, CodeInvalidEmail, f.Errors()["email"])
}

func TestContactHappyPathAndReset(t *testing.T) {
	ctx := context.Background()
	sender := &stubContactSender{refID: "APX-N-26-DGHJ"}
	f := NewContactForm(sender)
	f.SetField("name", "Riley")
	f.SetField("email", "riley@example.com")
	f.SetField("message", "Looking for LTL rates.")

	require.True(t, f.Submit(ctx))
	assert.True(t, f.Submitted())
	assert.Equal(t, "APX-N-26-DGHJ", f.RefID())
	assert.Equal(t, "Riley", sender.last.Name)

	f.Reset()
	assert.False(t, f.Submitted())
	assert.Empty(t, f.Message().Name)
}
