package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
)

// DefaultLookupBaseURL points at the public zippopotam.us US endpoint.
const DefaultLookupBaseURL = "https://api.zippopotam.us/us"

// ErrZipNotFound marks a well-formed zip the authority has no record of.
var ErrZipNotFound = domain.NotFoundError{Resource: "zip"}

// Place is the authoritative answer for one zip: a single place name plus state.
type Place struct {
	Name      string
	StateAbbr string
}

// LookupClient resolves a 5-digit zip to its place via the external service.
// The zero value is not usable; call NewLookupClient.
type LookupClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewLookupClient builds a client for baseURL; empty baseURL selects the
// public default.
func NewLookupClient(baseURL string, timeout time.Duration) *LookupClient {
	if baseURL == "" {
		baseURL = DefaultLookupBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LookupClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
		State     string `json:"state abbreviation"`
	} `json:"places"`
}

// Lookup issues a single GET for the zip. ErrZipNotFound means the authority
// answered "no such zip"; any other error is a transport failure the caller is
// expected to treat as best-effort.
func (c *LookupClient) Lookup(ctx context.Context, zip string) (Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+zip, nil)
	if err != nil {
		return Place{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Place{}, ErrZipNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("zip lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, err
	}
	if len(body.Places) == 0 {
		return Place{}, ErrZipNotFound
	}
	return Place{Name: body.Places[0].PlaceName, StateAbbr: body.Places[0].State}, nil
}
