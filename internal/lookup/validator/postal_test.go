package validator

import (
	"testing"

	apperrors "zip2mp/pkg/errors"
)

func TestCanadianPostalCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "spaced", input: "K1A 0A6", want: "K1A0A6"},
		{name: "unspaced", input: "K1A0A6", want: "K1A0A6"},
		{name: "hyphenated", input: "K1A-0A6", want: "K1A0A6"},
		{name: "lowercase", input: "k1a 0a6", want: "K1A0A6"},
		{name: "forbidden first letter D", input: "D1A 0A6", wantErr: true},
		{name: "forbidden first letter Z", input: "Z9Z 9Z9", wantErr: true},
		{name: "forbidden third position", input: "K1D 0A6", wantErr: true},
		{name: "forbidden fifth position", input: "K1A 0D6", wantErr: true},
		{name: "too short", input: "K1A 0A", wantErr: true},
		{name: "too long", input: "K1A 0A66", wantErr: true},
		{name: "digits where letters expected", input: "11A 0A6", wantErr: true},
		{name: "letters where digits expected", input: "KAA 0A6", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanadianPostalCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanadianPostalCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidFormat {
					t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("CanadianPostalCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanadianPostalCodeEquivalentInputs(t *testing.T) {
	spaced, err := CanadianPostalCode("K1A 0A6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unspaced, err := CanadianPostalCode("K1A0A6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spaced != unspaced {
		t.Errorf("spaced and unspaced inputs disagree: %q vs %q", spaced, unspaced)
	}
}

func TestSpacedCanadianPostalCode(t *testing.T) {
	if got := SpacedCanadianPostalCode("K1A0A6"); got != "K1A 0A6" {
		t.Errorf("SpacedCanadianPostalCode(K1A0A6) = %q, want %q", got, "K1A 0A6")
	}
}

func TestUSZipCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain five digits", input: "90210", want: "90210"},
		{name: "zip plus four", input: "90210-1234", want: "90210"},
		{name: "zip plus four no dash", input: "902101234", want: "90210"},
		{name: "embedded spaces", input: " 90210 ", want: "90210"},
		{name: "too short", input: "0000", wantErr: true},
		{name: "blocked placeholder", input: "00000", wantErr: true},
		{name: "placeholder with suffix", input: "00000-1234", wantErr: true},
		{name: "letters only", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := USZipCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("USZipCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidFormat {
					t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("USZipCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		input string
		want  Country
		ok    bool
	}{
		{"CA", CountryCanada, true},
		{"can", CountryCanada, true},
		{"Canada", CountryCanada, true},
		{"US", CountryUSA, true},
		{"usa", CountryUSA, true},
		{"united states", CountryUSA, true},
		{" us ", CountryUSA, true},
		{"UK", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ResolveCountry(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ResolveCountry(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
