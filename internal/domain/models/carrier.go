package models

// CarrierApplication is the single-page carrier onboarding payload.
type CarrierApplication struct {
	Organization   string   `json:"organization"`
	DispatcherName string   `json:"dispatcherName"`
	Email          string   `json:"email"`
	McDot          string   `json:"mcDot"`
	TaxID          string   `json:"taxId"`
	Equipment      []string `json:"equipment"`
}

// CarrierEquipmentTypes is the multi-select equipment profile of the carrier form.
var CarrierEquipmentTypes = []string{
	"DRY VAN",
	"REEFER",
	"FLATBED",
	"STEP DECK",
	"HOTSHOT",
}
