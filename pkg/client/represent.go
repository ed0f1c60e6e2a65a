package client

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// SourceRepresent identifies the Represent API by OpenNorth, the primary
// postal-code-to-representative source for Canada.
const SourceRepresent = "represent-opennorth"

type RepresentClient struct {
	httpClient *HttpClient
}

func NewRepresentClient(baseURL string, timeout time.Duration) *RepresentClient {
	return &RepresentClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// RepresentRepresentative is one record as Represent returns it. The API
// mixes several field names for the same concept across boundary sets, so
// most fields are best-effort.
type RepresentRepresentative struct {
	Name          string `json:"name"`
	ElectedOffice string `json:"elected_office"`
	Level         string `json:"level"`
	DistrictName  string `json:"district_name"`
	RidingName    string `json:"riding_name"`
	PartyName     string `json:"party_name"`
	Email         string `json:"email"`
	URL           string `json:"url"`
	Website       string `json:"website"`
	Tel           string `json:"tel"`
	Phone         string `json:"phone"`
	Office        string `json:"office"`
	Postal        string `json:"postal"`
}

type RepresentBoundary struct {
	BoundarySetName string `json:"boundary_set_name"`
}

// RepresentPostcodeResponse covers the two relationship types the postcode
// endpoint exposes plus the boundary metadata used for the scoped retry.
type RepresentPostcodeResponse struct {
	RepresentativesCentroid    []RepresentRepresentative `json:"representatives_centroid"`
	RepresentativesConcordance []RepresentRepresentative `json:"representatives_concordance"`
	BoundariesCentroid         []RepresentBoundary       `json:"boundaries_centroid"`
}

type RepresentBoundaryResponse struct {
	RepresentativesCentroid []RepresentRepresentative `json:"representatives_centroid"`
}

// GetPostcode looks up a canonical (unspaced) postal code.
func (c *RepresentClient) GetPostcode(ctx context.Context, code string) (*Response, error) {
	return c.httpClient.GET(ctx, "/postcodes/"+url.PathEscape(code)+"/", nil)
}

// GetBoundary fetches representatives scoped to one boundary set.
func (c *RepresentClient) GetBoundary(ctx context.Context, boundarySet string) (*Response, error) {
	return c.httpClient.GET(ctx, "/boundaries/"+url.PathEscape(boundarySet)+"/", nil)
}

func (c *RepresentClient) DecodePostcode(resp *Response) (*RepresentPostcodeResponse, error) {
	var data RepresentPostcodeResponse
	if err := resp.DecodeJSON(&data); err != nil {
		return nil, fmt.Errorf("could not decode postcode response: %w", err)
	}
	return &data, nil
}

func (c *RepresentClient) DecodeBoundary(resp *Response) (*RepresentBoundaryResponse, error) {
	var data RepresentBoundaryResponse
	if err := resp.DecodeJSON(&data); err != nil {
		return nil, fmt.Errorf("could not decode boundary response: %w", err)
	}
	return &data, nil
}
