package service

import (
	"context"
	"fmt"
	"time"

	"zip2mp/internal/lookup/validator"
	"zip2mp/pkg/client"
	"zip2mp/pkg/config"
	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/metrics"
	"zip2mp/pkg/model"
)

// Result is a successful lookup: a non-empty ordered list of contacts and
// the name of the source that produced them.
type Result struct {
	Representatives []model.ContactInfo
	Source          string
}

type LookupService interface {
	// Lookup resolves a (country, raw postal code) pair to contact records,
	// or fails with a classified InvalidFormat/NotFound/Upstream error.
	Lookup(ctx context.Context, country, postalCode string) (*Result, error)

	// SupportedCountries is the static capability listing.
	SupportedCountries() []model.CountryFormat
}

type lookupService struct {
	represent      *client.RepresentClient
	openParliament *client.OpenParliamentClient
	whoIsMyRep     *client.WhoIsMyRepClient
	fiveCalls      *client.FiveCallsClient

	enrichTimeout time.Duration
	caLastResort  bool

	log     *logger.Logger
	metrics *metrics.Metrics
}

func New(cfg *config.Config, m *metrics.Metrics) LookupService {
	return &lookupService{
		represent:      client.NewRepresentClient(cfg.RepresentBaseURL, cfg.LookupTimeout),
		openParliament: client.NewOpenParliamentClient(cfg.OpenParliamentBaseURL, cfg.LookupTimeout),
		whoIsMyRep:     client.NewWhoIsMyRepClient(cfg.WhoIsMyRepBaseURL, cfg.LookupTimeout),
		fiveCalls:      client.NewFiveCallsClient(cfg.FiveCallsBaseURL, cfg.LookupTimeout),
		enrichTimeout:  cfg.EnrichTimeout,
		caLastResort:   cfg.CALastResortFallback,
		log:            cfg.Log,
		metrics:        m,
	}
}

func (s *lookupService) Lookup(ctx context.Context, country, postalCode string) (*Result, error) {
	resolved, ok := validator.ResolveCountry(country)
	if !ok {
		return nil, apperrors.BadRequest(fmt.Sprintf(
			"Country '%s' is not supported. Supported countries: CA, US", country))
	}

	switch resolved {
	case validator.CountryCanada:
		return s.lookupCanada(ctx, postalCode)
	default:
		return s.lookupUSA(ctx, postalCode)
	}
}

func (s *lookupService) SupportedCountries() []model.CountryFormat {
	return []model.CountryFormat{
		{Code: "CA", Name: "Canada", Format: "Postal Code (e.g., K1A 0A6)"},
		{Code: "US", Name: "United States", Format: "Zip Code (e.g., 10001)"},
	}
}

// attempt is one step in a country's fallback chain. A step that
// contributed nothing returns (nil, nil) and the chain moves on; a non-nil
// error is terminal for the whole lookup.
type attempt struct {
	source string
	run    func(ctx context.Context) ([]model.ContactInfo, error)
}

// runChain tries attempts in priority order and short-circuits on the first
// one yielding at least one record. Ordering is a correctness requirement:
// a fallback may only fire once the steps before it were conclusively empty.
func (s *lookupService) runChain(ctx context.Context, attempts []attempt, notFound error) (*Result, error) {
	for _, a := range attempts {
		records, err := a.run(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			return &Result{Representatives: records, Source: a.source}, nil
		}
	}
	return nil, notFound
}

func (s *lookupService) observe(source string, start time.Time) {
	s.metrics.ObserveUpstream(source, start)
}
