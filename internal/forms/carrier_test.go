package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
)

type stubCarrierSender struct {
	fail  bool
	refID string
	last  models.CarrierApplication
	calls int
}

func (s *stubCarrierSender) SubmitCarrier(_ context.Context, app models.CarrierApplication) (domain.SubmissionResult, error) {
	s.calls++
	s.last = app
	if s.fail {
		return domain.SubmissionResult{}, errors.New("gateway timeout")
	}
	return domain.SubmissionResult{Success: true, RefID: s.refID}, nil
}

// instantSleep records requested delays without waiting.
func instantSleep(slept *[]time.Duration) Sleeper {
	return func(_ context.Context, d time.Duration) {
		*slept = append(*slept, d)
	}
}

func validCarrierForm(ctx context.Context, sender *stubCarrierSender) *CarrierForm {
	f := NewCarrierForm(sender, func(context.Context, time.Duration) {})
	f.SetField(ctx, "organization", "Redline Logistics LLC")
	f.SetField(ctx, "dispatcherName", "Casey Morgan")
	f.SetField(ctx, "email", "dispatch@redline.example")
	f.SetField(ctx, "mcDot", "MC123456")
	f.SetField(ctx, "taxId", "123456789")
	f.ToggleEquipment("DRY VAN")
	f.ToggleEquipment("REEFER")
	return f
}

func TestCarrierSubmitEmptyReportsEveryField(t *testing.T) {
	ctx := context.Background()
	f := NewCarrierForm(&stubCarrierSender{}, func(context.Context, time.Duration) {})

	require.False(t, f.Submit(ctx))
	assert.Equal(t, CarrierEditing, f.State())

	errs := f.Errors()
	for _, key := range []string{"organization", "dispatcherName", "email", "mcDot", "taxId"} {
		assert.Contains(t, errs, key)
	}
}

func TestCarrierAuthorityCodes(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		mcDot string
		want  string
	}{
		{"1234", CodeInvalid},
		{"123456789", CodeInvalidFormat},
		{"XXYYZZ", CodeInvalid}, // no digits captured at all
	}
	for _, tc := range cases {
		f := validCarrierForm(ctx, &stubCarrierSender{refID: "APX-C-26-ABCD"})
		f.SetField(ctx, "mcDot", tc.mcDot)
		require.False(t, f.Submit(ctx), "mcDot %q", tc.mcDot)
		assert.Equal(t, tc.want, f.Errors()["mcDot"], "mcDot %q", tc.mcDot)
	}
}

func TestCarrierTaxIDLiveFormat(t *testing.T) {
	ctx := context.Background()
	f := NewCarrierForm(&stubCarrierSender{}, func(context.Context, time.Duration) {})

	f.SetField(ctx, "taxId", "123456789")
	assert.Equal(t, "12-3456789", f.Application().TaxID)

	f.SetField(ctx, "taxId", "12")
	f.BlurTaxID()
	assert.Equal(t, CodeInvalidEIN, f.Errors()["taxId"])
}

func TestCarrierBlurMcDotTooShort(t *testing.T) {
	ctx := context.Background()
	f := NewCarrierForm(&stubCarrierSender{}, func(context.Context, time.Duration) {})

	f.SetField(ctx, "mcDot", "123")
	f.BlurMcDot()
	assert.Equal(t, CodeAuthorityShort, f.Errors()["mcDot"])
	assert.False(t, f.AuthorityVerified())
}

func TestAuthorityIndicatorIsCosmetic(t *testing.T) {
	ctx := context.Background()
	var slept []time.Duration
	f := NewCarrierForm(&stubCarrierSender{refID: "APX-C-26-ABCD"}, instantSleep(&slept))

	f.SetField(ctx, "mcDot", "123456")
	assert.True(t, f.AuthorityVerified(), "indicator always resolves verified")
	assert.False(t, f.VerifyingAuthority())
	require.Len(t, slept, 1)
	assert.Equal(t, authorityIndicatorDelay, slept[0])
	assert.Empty(t, f.Errors(), "the badge never writes the error map")

	// shrinking below 6 digits drops the badge
	f.SetField(ctx, "mcDot", "12345")
	assert.False(t, f.AuthorityVerified())

	// an unverified badge never gates submission
	f.SetField(ctx, "mcDot", "7654321")
	f.SetField(ctx, "organization", "Redline Logistics LLC")
	f.SetField(ctx, "dispatcherName", "Casey Morgan")
	f.SetField(ctx, "email", "dispatch@redline.example")
	f.SetField(ctx, "taxId", "123456789")
	require.True(t, f.Submit(ctx))
}

func TestCarrierHappyPath(t *testing.T) {
	ctx := context.Background()
	sender := &stubCarrierSender{refID: "APX-C-26-QRST"}
	f := validCarrierForm(ctx, sender)

	require.True(t, f.Submit(ctx))
	assert.Equal(t, CarrierSubmitted, f.State())
	assert.Equal(t, "APX-C-26-QRST", f.RefID())
	assert.Equal(t, []string{"DRY VAN", "REEFER"}, sender.last.Equipment)
	assert.Equal(t, "12-3456789", sender.last.TaxID)
}

func TestCarrierTransportFailurePreservesApplication(t *testing.T) {
	ctx := context.Background()
	sender := &stubCarrierSender{fail: true}
	f := validCarrierForm(ctx, sender)

	require.False(t, f.Submit(ctx))
	assert.Equal(t, CarrierEditing, f.State())
	assert.Equal(t, CodeTransmissionFailed, f.Errors()[SubmitErrorKey])
	assert.Equal(t, "Redline Logistics LLC", f.Application().Organization)

	sender.fail = false
	require.True(t, f.Submit(ctx))
	assert.Equal(t, 2, sender.calls)
}

func TestCarrierToggleEquipment(t *testing.T) {
	f := NewCarrierForm(&stubCarrierSender{}, func(context.Context, time.Duration) {})
	f.ToggleEquipment("FLATBED")
	f.ToggleEquipment("HOTSHOT")
	f.ToggleEquipment("FLATBED")
	assert.Equal(t, []string{"HOTSHOT"}, f.Application().Equipment)
}
