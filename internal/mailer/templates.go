package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
	"github.com/imabhi25/apex-freight-brokerage/internal/utils"
)

// Light layout used by quote and carrier transmissions.
const lightLayoutHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<style>
  body { background:#F8FAFC; margin:0; padding:40px; font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif; color:#111827; }
  .container { max-width:620px; margin:0 auto; border:1px solid #E2E8F0; background:#ffffff; padding:40px; border-radius:12px; }
  .header { border-bottom:1px solid #E2E8F0; padding-bottom:24px; margin-bottom:32px; }
  .tag { font-size:10px; font-weight:700; letter-spacing:0.2em; color:#64748B; text-transform:uppercase; margin-bottom:12px; }
  .title { font-size:20px; font-weight:800; letter-spacing:-0.01em; color:#111827; text-transform:uppercase; }
  .field-label { font-size:10px; font-weight:700; letter-spacing:0.2em; color:#2563EB; text-transform:uppercase; margin-bottom:8px; margin-top:24px; }
  .field-value { font-size:15px; color:#1f2937; line-height:1.6; white-space:pre-wrap; word-break:break-word; background:#F9FAFB; padding:12px; border-radius:8px; border:1px solid #F1F5F9; }
  .footer { margin-top:40px; padding-top:24px; border-top:1px solid #E2E8F0; font-size:10px; letter-spacing:0.1em; color:#94A3B8; text-transform:uppercase; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <div class="tag">Apex Freight Brokerage &mdash; Official Transmission</div>
    <div class="title">{{.Title}}</div>
    <div class="tag" style="margin-top:8px;">REF ID: {{.RefID}}</div>
  </div>
  {{.Content}}
  <div class="footer">
    APEX FREIGHT BROKERAGE &nbsp;|&nbsp; MC #000000 &nbsp;|&nbsp; DOT #000000<br/>
    Standard Technical Dispatch. Prepared for Priority Processing.
  </div>
</div>
</body>
</html>`

// Dark terminal layout used by contact inquiries.
const darkLayoutHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<style>
  body { background:#000; margin:0; padding:40px; font-family:'Courier New',Courier,monospace; color:#e5e5e5; }
  .container { max-width:620px; margin:0 auto; border:1px solid rgba(255,255,255,0.12); padding:40px; }
  .header { border-bottom:1px solid rgba(255,255,255,0.12); padding-bottom:24px; margin-bottom:32px; }
  .tag { font-size:10px; letter-spacing:0.3em; color:rgba(255,255,255,0.35); text-transform:uppercase; margin-bottom:12px; }
  .title { font-size:18px; letter-spacing:0.15em; color:#fff; text-transform:uppercase; }
  .field-label { font-size:10px; letter-spacing:0.3em; color:rgba(255,255,255,0.35); text-transform:uppercase; margin-bottom:6px; margin-top:24px; }
  .field-value { font-size:15px; color:#e5e5e5; line-height:1.6; white-space:pre-wrap; word-break:break-word; }
  .footer { margin-top:40px; padding-top:24px; border-top:1px solid rgba(255,255,255,0.12); font-size:10px; letter-spacing:0.2em; color:rgba(255,255,255,0.2); text-transform:uppercase; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <div class="tag">Apex Freight Brokerage &mdash; Secure Transmission</div>
    <div class="title">NEW INQUIRY RECEIVED: {{.Timestamp}}</div>
    <div class="tag" style="margin-top:8px; color:rgba(255,255,255,0.5);">REF ID: {{.RefID}}</div>
  </div>
  {{.Content}}
  <div class="footer">
    APEX FREIGHT BROKERAGE &nbsp;|&nbsp; MC #000000 &nbsp;|&nbsp; DOT #000000<br/>
    This is an automated dispatch from the contact terminal.
  </div>
</div>
</body>
</html>`

const quoteAdminContentHTML = `
<div class="field-label">ORGANIZATION</div>
<div class="field-value">{{.Organization}}</div>
<div class="field-label">LANE DETAILS</div>
<div class="field-value">{{.OriginCity}} ({{.OriginZip}}) &rarr; {{.DestinationCity}} ({{.DestinationZip}})</div>
<div class="field-label">LOAD SPECS</div>
<div class="field-value">Commodity: {{.Commodity}}<br/>Equipment: {{.Equipment}}<br/>Weight: {{.Weight}} lbs<br/>Value: ${{.CargoValue}}</div>
<div class="field-label">CONTACT INFO</div>
<div class="field-value">{{.ContactName}} | {{.Phone}}<br/>{{.Email}}</div>
{{if .Notes}}<div class="field-label">NOTES</div><div class="field-value">{{.Notes}}</div>{{end}}`

const quoteReceiptContentHTML = `
<p style="font-size:16px; color:#4B5563; line-height:1.6;">
  Our analysis engine is currently processing your quote request for the lane: <strong>{{.OriginCity}} to {{.DestinationCity}}</strong>.
</p>
<p style="font-size:16px; color:#4B5563; line-height:1.6;">
  A specialized logistics analyst will contact you at <strong>{{.Email}}</strong> with a tailored rate within one business day.
</p>`

const carrierAdminContentHTML = `
<div class="field-label">CARRIER ENTITY</div>
<div class="field-value">{{.Organization}}</div>
<div class="field-label">AUTHORITY &amp; TAX ID</div>
<div class="field-value">MC/DOT: {{.McDot}}<br/>EIN: {{.TaxID}}</div>
<div class="field-label">EQUIPMENT PROFILE</div>
<div class="field-value">{{.EquipmentList}}</div>
<div class="field-label">CONTACT PERSON</div>
<div class="field-value">{{.DispatcherName}}<br/>{{.Email}}</div>`

const carrierReceiptContentHTML = `
<p style="font-size:16px; color:#4B5563; line-height:1.6;">
  Your application to join the Apex Freight Brokerage network has been successfully received and logged under Reference ID: <strong>{{.RefID}}</strong>.
</p>
<p style="font-size:16px; color:#4B5563; line-height:1.6;">
  Our compliance team is currently verifying your authority (MC/DOT: <strong>{{.McDot}}</strong>). You will receive a status update via <strong>{{.Email}}</strong> shortly.
</p>`

const contactContentHTML = `
<div class="field-label">SENDER NAME</div>
<div class="field-value">{{.Name}}</div>
<div class="field-label">SENDER EMAIL</div>
<div class="field-value">{{.Email}}</div>
<div class="field-label">MESSAGE BODY</div>
<div class="field-value">{{.Message}}</div>`

var (
	lightLayoutT    = template.Must(template.New("light").Parse(lightLayoutHTML))
	darkLayoutT     = template.Must(template.New("dark").Parse(darkLayoutHTML))
	quoteAdminT     = template.Must(template.New("quoteAdmin").Parse(quoteAdminContentHTML))
	quoteReceiptT   = template.Must(template.New("quoteReceipt").Parse(quoteReceiptContentHTML))
	carrierAdminT   = template.Must(template.New("carrierAdmin").Parse(carrierAdminContentHTML))
	carrierReceiptT = template.Must(template.New("carrierReceipt").Parse(carrierReceiptContentHTML))
	contactT        = template.Must(template.New("contact").Parse(contactContentHTML))
)

type lightLayoutData struct {
	Title   string
	RefID   string
	Content template.HTML
}

type darkLayoutData struct {
	Timestamp string
	RefID     string
	Content   template.HTML
}

func renderContent(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	// user values were escaped by the content template above
	return template.HTML(buf.String()), nil
}

func renderLight(title, refID string, t *template.Template, data any) (string, error) {
	content, err := renderContent(t, data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := lightLayoutT.Execute(&buf, lightLayoutData{Title: title, RefID: refID, Content: content}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// QuoteAdmin is the internal dispatch notification for a new quote request.
func QuoteAdmin(d models.QuoteDraft, refID string) (subject, html string, err error) {
	html, err = renderLight("NEW QUOTE REQUEST", refID, quoteAdminT, d)
	subject = fmt.Sprintf("[NEW QUOTE] %s | %s to %s", refID, d.OriginCity, d.DestinationCity)
	return subject, html, err
}

// QuoteReceipt is the confirmation sent back to the requester.
func QuoteReceipt(d models.QuoteDraft, refID string) (subject, html string, err error) {
	html, err = renderLight("QUOTE REQUEST RECEIVED", refID, quoteReceiptT, d)
	subject = fmt.Sprintf("RECEIPT: Apex Quote Request [%s]", refID)
	return subject, html, err
}

type carrierEmailData struct {
	models.CarrierApplication
	RefID         string
	EquipmentList string
}

// CarrierAdmin is the internal notification for a new carrier application.
func CarrierAdmin(app models.CarrierApplication, refID string) (subject, html string, err error) {
	data := carrierEmailData{CarrierApplication: app, RefID: refID, EquipmentList: strings.Join(app.Equipment, ", ")}
	html, err = renderLight("NEW CARRIER APPLICATION", refID, carrierAdminT, data)
	subject = fmt.Sprintf("[CARRIER APP] %s | %s", refID, app.McDot)
	return subject, html, err
}

// CarrierReceipt is the confirmation sent back to the dispatcher.
func CarrierReceipt(app models.CarrierApplication, refID string) (subject, html string, err error) {
	data := carrierEmailData{CarrierApplication: app, RefID: refID, EquipmentList: strings.Join(app.Equipment, ", ")}
	html, err = renderLight("APPLICATION RECEIVED", refID, carrierReceiptT, data)
	subject = fmt.Sprintf("RECEIPT: Apex Carrier Application [%s]", refID)
	return subject, html, err
}

var pacific = mustLoadPacific()

func mustLoadPacific() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.UTC
	}
	return loc
}

// ContactAdmin is the terminal-styled inquiry dispatch. The timestamp is
// rendered in the brokerage's home timezone.
func ContactAdmin(msg models.ContactMessage, refID string, now time.Time) (subject, html string, err error) {
	content, err := renderContent(contactT, msg)
	if err != nil {
		return "", "", err
	}
	ts := now.In(pacific).Format("01/02/2006, 15:04:05")
	var buf bytes.Buffer
	if err := darkLayoutT.Execute(&buf, darkLayoutData{Timestamp: ts, RefID: refID, Content: content}); err != nil {
		return "", "", err
	}
	subject = fmt.Sprintf("NEW INQUIRY — %s [%s]", strings.ToUpper(utils.NormalizeSpace(msg.Name)), refID)
	return subject, buf.String(), nil
}
