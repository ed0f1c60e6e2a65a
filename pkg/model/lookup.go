package model

// LookupRequest is the body of POST /api/lookup. Country is matched
// case-insensitively against the supported alias sets.
type LookupRequest struct {
	Country    string `json:"country" validate:"required,country"`
	PostalCode string `json:"postal_code" validate:"required"`
}

// LookupResponse echoes the request and names the source that produced the
// records. The non-authoritative last-resort result is flagged through
// Source, not through the records themselves.
type LookupResponse struct {
	Country         string        `json:"country"`
	PostalCode      string        `json:"postal_code"`
	Representatives []ContactInfo `json:"representatives"`
	Source          string        `json:"source,omitempty"`
}

// CountryFormat describes one supported jurisdiction for the capability
// listing endpoint.
type CountryFormat struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Format string `json:"format"`
}
