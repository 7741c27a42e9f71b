// Package locations holds the static city/zip directory behind the
// autocomplete fields and the authoritative pair validator behind the
// city/zip cross-check.
package locations

import (
	_ "embed"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one city/zip row of the static directory. Neither city nor zip is
// unique on its own: a city spans many zips and zips repeat across rows.
type Record struct {
	City      string `yaml:"city" json:"city"`
	StateAbbr string `yaml:"abbr" json:"stateAbbr"`
	StateName string `yaml:"state" json:"stateName"`
	Zip       string `yaml:"zip" json:"zip"`
}

// Label renders the record the way the city field displays it, e.g.
// "Los Angeles, CA".
func (r Record) Label() string {
	return r.City + ", " + r.StateAbbr
}

//go:embed dataset.yaml
var datasetYAML []byte

var records = mustLoadDataset()

func mustLoadDataset() []Record {
	var out []Record
	if err := yaml.Unmarshal(datasetYAML, &out); err != nil {
		log.Fatalf("locations: embedded dataset is broken: %v", err)
	}
	return out
}

// maxResults caps every directory query; dropdowns never need more.
const maxResults = 8

// minQueryLen guards against scanning the table for one-character input.
const minQueryLen = 2

// SearchByCityPrefix returns up to maxResults records whose city name starts
// with query, case-insensitively. Queries shorter than two characters return
// nothing by contract.
func SearchByCityPrefix(query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minQueryLen {
		return nil
	}
	var out []Record
	for _, r := range records {
		if strings.HasPrefix(strings.ToLower(r.City), q) {
			out = append(out, r)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}

// SearchByZipPrefix returns up to maxResults records whose zip starts with the
// given digits. Queries shorter than two digits return nothing by contract.
func SearchByZipPrefix(digits string) []Record {
	q := strings.TrimSpace(digits)
	if len(q) < minQueryLen {
		return nil
	}
	var out []Record
	for _, r := range records {
		if strings.HasPrefix(r.Zip, q) {
			out = append(out, r)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}
