package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"zip2mp/internal/lookup/service"
	"zip2mp/internal/lookup/validator"
	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/model"
)

type stubService struct {
	result *service.Result
	err    error
}

func (s *stubService) Lookup(_ context.Context, _, _ string) (*service.Result, error) {
	return s.result, s.err
}

func (s *stubService) SupportedCountries() []model.CountryFormat {
	return []model.CountryFormat{
		{Code: "CA", Name: "Canada", Format: "Postal Code (e.g., K1A 0A6)"},
		{Code: "US", Name: "United States", Format: "Zip Code (e.g., 10001)"},
	}
}

func newTestRouter(svc service.LookupService) *httprouter.Router {
	log := logger.Discard()
	router := httprouter.New()
	NewLookupHandler(svc, validator.NewRequestValidator(log), nil, nil, log).RegisterRoutes(router)
	NewHealthHandler(log).RegisterRoutes(router)
	return router
}

func postLookup(t *testing.T, router *httprouter.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLookupHandlerSuccess(t *testing.T) {
	svc := &stubService{
		result: &service.Result{
			Representatives: []model.ContactInfo{
				{Name: "Jane Doe", Role: model.RoleMemberOfParliament, Riding: "Ottawa Centre"},
			},
			Source: "represent-opennorth",
		},
	}
	router := newTestRouter(svc)

	rec := postLookup(t, router, `{"country": "ca", "postal_code": "K1A 0A6"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp model.LookupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if resp.Country != "CA" || resp.PostalCode != "K1A 0A6" {
		t.Errorf("echoed request fields wrong: %+v", resp)
	}
	if len(resp.Representatives) != 1 || resp.Representatives[0].Name != "Jane Doe" {
		t.Errorf("unexpected representatives: %+v", resp.Representatives)
	}
	if resp.Source != "represent-opennorth" {
		t.Errorf("source = %q", resp.Source)
	}
}

func TestLookupHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "invalid body",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported country",
			body:       `{"country": "UK", "postal_code": "SW1A 1AA"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing postal code",
			body:       `{"country": "CA"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid format",
			body:       `{"country": "US", "postal_code": "00000"}`,
			serviceErr: apperrors.InvalidFormat("Invalid US ZIP code format: '00000'"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			body:       `{"country": "US", "postal_code": "99999"}`,
			serviceErr: apperrors.NotFound("No Representative found for ZIP code '99999'"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream error",
			body:       `{"country": "US", "postal_code": "90210"}`,
			serviceErr: apperrors.Upstream("whoismyrepresentative", "90210", context.DeadlineExceeded),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{err: tt.serviceErr})
			rec := postLookup(t, router, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCountriesHandler(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Countries []model.CountryFormat `json:"countries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if len(resp.Countries) != 2 || resp.Countries[0].Code != "CA" || resp.Countries[1].Code != "US" {
		t.Errorf("unexpected countries: %+v", resp.Countries)
	}
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if resp.Status != "healthy" || len(resp.SupportedCountries) != 2 {
		t.Errorf("unexpected health response: %+v", resp)
	}
}
