package models

// QuoteDraft is the in-progress quote request owned by one form session. It is
// mutated field-by-field as the user types and submitted whole on step 3.
type QuoteDraft struct {
	Organization    string `json:"organization"`
	Email           string `json:"email"`
	OriginCity      string `json:"originCity"`
	OriginZip       string `json:"originZip"`
	DestinationCity string `json:"destinationCity"`
	DestinationZip  string `json:"destinationZip"`
	Commodity       string `json:"commodity"`
	Equipment       string `json:"equipment"`
	Weight          string `json:"weight"`
	CargoValue      string `json:"cargoValue"`
	DateReady       string `json:"dateReady"`
	IsHazardous     bool   `json:"isHazardous"`
	ContactName     string `json:"contactName"`
	Phone           string `json:"phone"`
	JobTitle        string `json:"jobTitle"`
	Notes           string `json:"notes"`
}

// QuoteEquipmentOptions is the fixed equipment menu of the quote form.
var QuoteEquipmentOptions = []string{
	"Dry Van",
	"Refrigerated",
	"Flatbed",
	"Step-Deck",
	"Less-Than-Truckload (LTL)",
	"Full-Truckload (FTL)",
}

// IsQuoteEquipment reports whether v is one of the enumerated equipment values.
func IsQuoteEquipment(v string) bool {
	for _, opt := range QuoteEquipmentOptions {
		if v == opt {
			return true
		}
	}
	return false
}
