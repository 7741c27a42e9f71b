package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
)

// DocsService renders a submitted quote draft as a downloadable PDF summary
// so the requester can file a copy alongside the emailed receipt.
type DocsService struct {
	RequestID string
}

// GenerateQuoteSummary returns the PDF bytes and a suggested filename.
func (s DocsService) GenerateQuoteSummary(d models.QuoteDraft, refID string) ([]byte, string, error) {
	if strings.TrimSpace(refID) == "" {
		return nil, "", domain.ValidationError{Field: "refId", Msg: "required"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_quote_summary", "ref_id="+refID)
	return buildQuoteSummaryPDF(d, refID)
}

func buildQuoteSummaryPDF(d models.QuoteDraft, refID string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote Request Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "QUOTE REQUEST SUMMARY")
	pdf.Ln(12)

	hazmat := "No"
	if d.IsHazardous {
		hazmat = "Yes"
	}

	ready := safe(d.DateReady, "-")
	if t, err := utils.ParseDate(d.DateReady); err == nil {
		ready = t.Format("Jan 2, 2006")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference ID   : %s", refID),
		fmt.Sprintf("Organization   : %s", safe(d.Organization, "-")),
		fmt.Sprintf("Lane           : %s (%s) -> %s (%s)",
			safe(d.OriginCity, "-"), safe(d.OriginZip, "-"),
			safe(d.DestinationCity, "-"), safe(d.DestinationZip, "-")),
		fmt.Sprintf("Commodity      : %s", safe(d.Commodity, "-")),
		fmt.Sprintf("Equipment      : %s", safe(d.Equipment, "-")),
		fmt.Sprintf("Weight         : %s lbs", safe(d.Weight, "-")),
		fmt.Sprintf("Cargo Value    : $%s", safe(d.CargoValue, "-")),
		fmt.Sprintf("Date Ready     : %s", ready),
		fmt.Sprintf("Hazmat         : %s", hazmat),
		fmt.Sprintf("Contact        : %s | %s", safe(d.ContactName, "-"), safe(d.Phone, "-")),
		fmt.Sprintf("Email          : %s", safe(d.Email, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(d.Notes) != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Notes")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, d.Notes, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this reference ID for follow-up. A logistics analyst will respond with a tailored rate within one business day.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("quote-%s.pdf", refID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
