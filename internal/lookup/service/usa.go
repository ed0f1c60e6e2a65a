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

func (s *lookupService) lookupUSA(ctx context.Context, raw string) (*Result, error) {
	zip, err := validator.USZipCode(raw)
	if err != nil {
		return nil, err
	}

	attempts := []attempt{
		{
			source: client.SourceWhoIsMyRep,
			run: func(ctx context.Context) ([]model.ContactInfo, error) {
				return s.usaPrimary(ctx, zip)
			},
		},
		{
			source: client.SourceFiveCalls,
			run: func(ctx context.Context) ([]model.ContactInfo, error) {
				return s.usaFallback(ctx, zip)
			},
		},
	}

	return s.runChain(ctx, attempts, apperrors.NotFound(fmt.Sprintf(
		"No Representative found for ZIP code '%s'. Please verify the ZIP code is correct and try again.", zip)))
}

// usaPrimary queries whoismyrepresentative.com. A network failure or non-200
// is a signal to try the fallback rather than failing the lookup; malformed
// JSON on a 200, though, means the source is up but broken, and that is
// surfaced with an excerpt for diagnosis.
func (s *lookupService) usaPrimary(ctx context.Context, zip string) ([]model.ContactInfo, error) {
	start := time.Now()
	resp, err := s.whoIsMyRep.GetAllMembers(ctx, zip)
	s.observe(client.SourceWhoIsMyRep, start)
	if err != nil {
		s.log.Warn("primary ZIP lookup failed, trying fallback", "zip", zip, "error", err)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Warn("primary ZIP lookup returned unexpected status, trying fallback",
			"zip", zip, "status", resp.StatusCode)
		return nil, nil
	}

	records, err := s.whoIsMyRep.DecodeMembers(resp)
	if err != nil {
		return nil, apperrors.Upstream(client.SourceWhoIsMyRep, zip, err)
	}

	var contacts []model.ContactInfo
	for _, rec := range records {
		if contact, ok := normalize.USFromPrimary(rec); ok {
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}

// usaFallback queries 5 Calls. Its failures are always swallowed; the chain
// then terminates in NotFound.
func (s *lookupService) usaFallback(ctx context.Context, zip string) ([]model.ContactInfo, error) {
	start := time.Now()
	resp, err := s.fiveCalls.GetReps(ctx, zip)
	s.observe(client.SourceFiveCalls, start)
	if err != nil || resp.StatusCode != http.StatusOK {
		s.log.Warn("fallback ZIP lookup failed", "zip", zip, "error", err)
		return nil, nil
	}

	reps, err := s.fiveCalls.DecodeReps(resp)
	if err != nil {
		s.log.Warn("fallback ZIP lookup returned undecodable body", "zip", zip, "error", err)
		return nil, nil
	}

	var contacts []model.ContactInfo
	for _, rep := range reps {
		if contact, ok := normalize.USFromFiveCalls(rep); ok {
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}
