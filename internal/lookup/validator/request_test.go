package validator

import (
	"strings"
	"testing"

	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/model"
)

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator(logger.Discard())

	tests := []struct {
		name    string
		req     model.LookupRequest
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid CA request",
			req:  model.LookupRequest{Country: "CA", PostalCode: "K1A 0A6"},
		},
		{
			name: "valid alias",
			req:  model.LookupRequest{Country: "united states", PostalCode: "90210"},
		},
		{
			name:    "unsupported country",
			req:     model.LookupRequest{Country: "UK", PostalCode: "SW1A 1AA"},
			wantErr: true,
			wantMsg: "not supported",
		},
		{
			name:    "missing country",
			req:     model.LookupRequest{PostalCode: "90210"},
			wantErr: true,
			wantMsg: "country is required",
		},
		{
			name:    "missing postal code",
			req:     model.LookupRequest{Country: "US"},
			wantErr: true,
			wantMsg: "postal_code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeBadRequest {
				t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeBadRequest)
			}
			if !strings.Contains(appErr.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}
