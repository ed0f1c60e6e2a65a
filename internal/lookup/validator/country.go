package validator

import "strings"

// Country is the resolved jurisdiction a lookup dispatches on.
type Country string

const (
	CountryCanada Country = "CA"
	CountryUSA    Country = "US"
)

var countryAliases = map[string]Country{
	"CA":            CountryCanada,
	"CAN":           CountryCanada,
	"CANADA":        CountryCanada,
	"US":            CountryUSA,
	"USA":           CountryUSA,
	"UNITED STATES": CountryUSA,
}

// ResolveCountry matches a raw country value case-insensitively against the
// supported alias sets.
func ResolveCountry(raw string) (Country, bool) {
	country, ok := countryAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return country, ok
}
