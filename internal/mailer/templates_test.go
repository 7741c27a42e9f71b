package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
)

func TestQuoteAdminEscapesInput(t *testing.T) {
	d := models.QuoteDraft{
		Organization:    "Acme <script>alert(1)</script>",
		Email:           "ops@acme.com",
		OriginCity:      "Fresno, CA",
		DestinationCity: "Chicago, IL",
		Commodity:       "Produce & dairy",
		ContactName:     "Dana",
		Phone:           "(555) 123-4567",
	}
	subject, html, err := QuoteAdmin(d, "APX-Q-25-7K2M")
	if err != nil {
		t.Fatalf("QuoteAdmin: %v", err)
	}
	if !strings.Contains(subject, "APX-Q-25-7K2M") {
		t.Errorf("subject missing ref: %q", subject)
	}
	if strings.Contains(html, "<script>") {
		t.Error("user input must be escaped")
	}
	if !strings.Contains(html, "Produce &amp; dairy") {
		t.Error("escaped commodity should survive into the body")
	}
}

func TestQuoteReceiptCarriesLaneAndEmail(t *testing.T) {
	d := models.QuoteDraft{Email: "dana@acmeproduce.com", OriginCity: "Fresno, CA", DestinationCity: "Chicago, IL"}
	_, html, err := QuoteReceipt(d, "APX-Q-25-7K2M")
	if err != nil {
		t.Fatalf("QuoteReceipt: %v", err)
	}
	if !strings.Contains(html, "Fresno, CA to Chicago, IL") {
		t.Error("receipt should state the requested lane")
	}
	if !strings.Contains(html, "dana@acmeproduce.com") {
		t.Error("receipt should name the address the rate will go to")
	}
	if !strings.Contains(html, "APX-Q-25-7K2M") {
		t.Error("receipt should carry the reference ID")
	}
}

func TestCarrierAdminListsEquipment(t *testing.T) {
	app := models.CarrierApplication{
		Organization:   "Redline Haulage",
		DispatcherName: "Marcus Webb",
		Email:          "dispatch@redline.com",
		McDot:          "MC1234567",
		TaxID:          "12-3456789",
		Equipment:      []string{"DRY VAN", "REEFER"},
	}
	_, html, err := CarrierAdmin(app, "APX-C-25-8H4N")
	if err != nil {
		t.Fatalf("CarrierAdmin: %v", err)
	}
	for _, want := range []string{"Redline Haulage", "MC1234567", "DRY VAN", "REEFER"} {
		if !strings.Contains(html, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestContactAdminUsesPacificTimestamp(t *testing.T) {
	// 2025-03-14 21:30 UTC is 14:30 in Los Angeles (PDT).
	now := time.Date(2025, 3, 14, 21, 30, 0, 0, time.UTC)
	msg := models.ContactMessage{Name: "Jordan Lee", Email: "jordan@example.com", Message: "Hello"}
	subject, html, err := ContactAdmin(msg, "APX-N-25-2Q9R", now)
	if err != nil {
		t.Fatalf("ContactAdmin: %v", err)
	}
	if !strings.Contains(subject, "JORDAN LEE") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(html, "03/14/2025, 14:30:00") {
		t.Error("body should carry the Pacific timestamp")
	}
}

func TestResendWithoutKeyReportsNotConfigured(t *testing.T) {
	r := NewResend("", "noreply@apexfreightbrokerage.com")
	err := r.Send(context.Background(), Email{To: "a@b.com", Subject: "x", HTML: "<p>x</p>"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
