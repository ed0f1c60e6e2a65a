package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"zip2mp/internal/lookup/normalize"
	"zip2mp/internal/lookup/validator"
	"zip2mp/pkg/client"
	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/model"
)

// SourceOpenParliamentUnfiltered marks the last-resort result so callers can
// tell it is not authoritative for the requested postal code.
const SourceOpenParliamentUnfiltered = client.SourceOpenParliament + "-unfiltered"

func (s *lookupService) lookupCanada(ctx context.Context, raw string) (*Result, error) {
	code, err := validator.CanadianPostalCode(raw)
	if err != nil {
		return nil, err
	}
	spaced := validator.SpacedCanadianPostalCode(code)

	// Carried between attempts: the boundary metadata from the primary
	// response, and the primary's network failure when the last resort is
	// allowed to run after one.
	var boundarySet string
	var primaryNetworkErr error

	attempts := []attempt{
		{
			source: client.SourceRepresent,
			run: func(ctx context.Context) ([]model.ContactInfo, error) {
				return s.canadaPrimary(ctx, code, spaced, &boundarySet, &primaryNetworkErr)
			},
		},
		{
			source: client.SourceRepresent + "-boundary",
			run: func(ctx context.Context) ([]model.ContactInfo, error) {
				return s.canadaBoundary(ctx, spaced, boundarySet)
			},
		},
	}
	if s.caLastResort {
		attempts = append(attempts, attempt{
			source: SourceOpenParliamentUnfiltered,
			run: func(ctx context.Context) ([]model.ContactInfo, error) {
				return s.canadaLastResort(ctx, spaced, primaryNetworkErr)
			},
		})
	}

	return s.runChain(ctx, attempts, apperrors.NotFound(fmt.Sprintf(
		"No MP found for postal code '%s'. Please verify the postal code is correct and try again.", spaced)))
}

func (s *lookupService) canadaPrimary(ctx context.Context, code, spaced string, boundarySet *string, networkErr *error) ([]model.ContactInfo, error) {
	start := time.Now()
	resp, err := s.represent.GetPostcode(ctx, code)
	s.observe(client.SourceRepresent, start)
	if err != nil {
		if s.caLastResort {
			// The unfiltered fallback gets a chance before the error
			// becomes terminal.
			s.log.Warn("Represent lookup failed, deferring to last-resort fallback",
				"postal_code", spaced, "error", err)
			*networkErr = err
			return nil, nil
		}
		return nil, apperrors.Upstream(client.SourceRepresent, spaced, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFound(fmt.Sprintf(
			"Postal code '%s' not found. Please verify the postal code is correct.", spaced))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.UpstreamStatus(client.SourceRepresent, spaced, resp.StatusCode)
	}

	data, err := s.represent.DecodePostcode(resp)
	if err != nil {
		return nil, apperrors.Upstream(client.SourceRepresent, spaced, err)
	}

	// The postcode endpoint exposes two relationship types; both feed the
	// same candidate set.
	candidates := make([]client.RepresentRepresentative, 0,
		len(data.RepresentativesCentroid)+len(data.RepresentativesConcordance))
	candidates = append(candidates, data.RepresentativesCentroid...)
	candidates = append(candidates, data.RepresentativesConcordance...)

	contacts := s.federalContacts(ctx, candidates)
	if len(contacts) == 0 && len(data.BoundariesCentroid) > 0 {
		*boundarySet = data.BoundariesCentroid[0].BoundarySetName
	}
	return contacts, nil
}

// canadaBoundary retries with a boundary-scoped query when the primary
// response was empty but carried boundary metadata.
func (s *lookupService) canadaBoundary(ctx context.Context, spaced, boundarySet string) ([]model.ContactInfo, error) {
	if boundarySet == "" {
		return nil, nil
	}

	start := time.Now()
	resp, err := s.represent.GetBoundary(ctx, boundarySet)
	s.observe(client.SourceRepresent, start)
	if err != nil || resp.StatusCode != http.StatusOK {
		s.log.Warn("boundary-scoped retry failed",
			"postal_code", spaced, "boundary_set", boundarySet, "error", err)
		return nil, nil
	}

	data, err := s.represent.DecodeBoundary(resp)
	if err != nil {
		s.log.Warn("boundary-scoped retry returned undecodable body",
			"postal_code", spaced, "boundary_set", boundarySet, "error", err)
		return nil, nil
	}

	return s.federalContacts(ctx, data.RepresentativesCentroid), nil
}

// federalContacts applies the federal filter and normalizes qualifying
// candidates, enriching each one best-effort from OpenParliament.
func (s *lookupService) federalContacts(ctx context.Context, candidates []client.RepresentRepresentative) []model.ContactInfo {
	var contacts []model.ContactInfo
	for _, rep := range candidates {
		if !normalize.IsFederalRepresentative(rep) {
			continue
		}
		contact := normalize.CanadaFromRepresent(rep)
		s.enrichFromOpenParliament(ctx, &contact)
		if contact.Name == "" {
			// Some boundary sets emit anonymous records; without a name
			// even after enrichment there is nothing to contact.
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

// enrichFromOpenParliament fills gaps in a contact from OpenParliament,
// keyed by riding. Strictly best-effort: a shorter timeout than the lookup
// calls, and any failure leaves the contact as-is.
func (s *lookupService) enrichFromOpenParliament(ctx context.Context, contact *model.ContactInfo) {
	if contact.Riding == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.openParliament.GetMembersByRiding(ctx, contact.Riding, 1)
	s.observe(client.SourceOpenParliament, start)
	if err != nil || resp.StatusCode != http.StatusOK {
		s.log.Debug("enrichment call failed", "riding", contact.Riding, "error", err)
		return
	}

	members, err := s.openParliament.DecodeMembers(resp)
	if err != nil || len(members) == 0 {
		return
	}

	normalize.FillFromOpenParliament(contact, members[0])
}

// canadaLastResort queries OpenParliament with no riding filter and emits a
// single low-confidence contact. The result cannot be matched to the postal
// code, which is why this step is config-gated and its source name flags it
// as non-authoritative.
func (s *lookupService) canadaLastResort(ctx context.Context, spaced string, primaryNetworkErr error) ([]model.ContactInfo, error) {
	start := time.Now()
	resp, err := s.openParliament.GetAllMembers(ctx, client.AllMembersLimit)
	s.observe(client.SourceOpenParliament, start)

	if err == nil && resp.StatusCode == http.StatusOK {
		if members, decodeErr := s.openParliament.DecodeMembers(resp); decodeErr == nil && len(members) > 0 {
			s.log.Warn("serving non-authoritative last-resort contact", "postal_code", spaced)
			return []model.ContactInfo{normalize.CanadaFromOpenParliament(members[0])}, nil
		}
	}

	// The last resort only existed to paper over a primary failure; with
	// both gone, surface the original cause.
	if primaryNetworkErr != nil {
		return nil, apperrors.Upstream(client.SourceRepresent, spaced, primaryNetworkErr)
	}
	return nil, nil
}
