package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/model"
)

// RequestValidator checks lookup requests before any country pipeline runs.
// Unsupported countries are rejected here, so the core only ever sees CA/US.
type RequestValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewRequestValidator(log *logger.Logger) *RequestValidator {
	v := validator.New()

	if err := v.RegisterValidation("country", validateCountry); err != nil {
		log.Fatal("Failed to register 'country' validator", "error", err)
	}

	return &RequestValidator{
		validate: v,
		log:      log,
	}
}

func validateCountry(fl validator.FieldLevel) bool {
	_, ok := ResolveCountry(fl.Field().String())
	return ok
}

func (v *RequestValidator) Validate(req *model.LookupRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.BadRequest("Invalid lookup request")
	}

	var messages []string
	for _, fieldErr := range validationErrs {
		switch {
		case fieldErr.Field() == "Country" && fieldErr.Tag() == "country":
			messages = append(messages, fmt.Sprintf(
				"Country '%s' is not supported. Supported countries: CA, US", req.Country))
		case fieldErr.Tag() == "required":
			messages = append(messages, fmt.Sprintf("%s is required", jsonName(fieldErr.Field())))
		default:
			messages = append(messages, fieldErr.Error())
		}
	}
	return apperrors.BadRequest(strings.Join(messages, "; "))
}

func jsonName(field string) string {
	switch field {
	case "Country":
		return "country"
	case "PostalCode":
		return "postal_code"
	default:
		return field
	}
}
