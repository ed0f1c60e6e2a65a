package normalize

import (
	"strconv"
	"strings"

	"zip2mp/pkg/client"
	"zip2mp/pkg/model"
)

// District values that mean "no district" rather than a real number.
var placeholderDistricts = map[string]struct{}{
	"": {}, "none": {}, "n/a": {},
}

// Values that resolve to the at-large label when a state is known.
var atLargeDistricts = map[string]struct{}{
	"": {}, "none": {}, "n/a": {}, "at-large": {}, "at large": {},
}

// Office values that are role words, not street addresses.
var roleWords = map[string]struct{}{
	"representative": {}, "senator": {}, "house": {}, "senate": {},
}

// USFromPrimary maps one loosely-typed whoismyrepresentative record into the
// canonical schema. The second return is false when the record is skipped:
// nameless, a senator, or not classifiable as a House member.
func USFromPrimary(rec map[string]any) (model.ContactInfo, bool) {
	name := fieldString(rec, "name", "Name")
	if name == "" {
		return model.ContactInfo{}, false
	}

	office := strings.ToLower(fieldString(rec, "office", "Office"))
	title := strings.ToLower(fieldString(rec, "title", "Title"))
	district := strings.TrimSpace(fieldString(rec, "district", "District"))
	state := fieldString(rec, "state", "State")

	// Senators represent entire states, not districts.
	isSenator := strings.Contains(office, "senator") ||
		strings.Contains(office, "senate") ||
		title == "senator"
	if isSenator {
		return model.ContactInfo{}, false
	}

	// Classification priority matters: a real district value is the
	// strongest evidence, an explicit title is next, and a bare state value
	// is the last-resort assumption.
	_, placeholder := placeholderDistricts[strings.ToLower(district)]
	isRepByTitle := strings.Contains(office, "representative") ||
		strings.Contains(office, "house") ||
		title == "representative"

	switch {
	case !placeholder:
	case isRepByTitle:
	case state != "":
	default:
		return model.ContactInfo{}, false
	}

	// The office field doubles as an address on some deployments and as a
	// role word on others; only the former is usable.
	address := fieldString(rec, "office", "Office")
	if _, isRole := roleWords[strings.ToLower(address)]; isRole {
		address = fieldString(rec, "address", "Address")
	}

	return model.ContactInfo{
		Name:     name,
		Role:     model.RoleHouseRepresentative,
		District: USDistrictLabel(state, district),
		Party:    fieldString(rec, "party", "Party"),
		Phone:    fieldString(rec, "phone", "Phone"),
		Website:  fieldString(rec, "link", "Link", "website", "Website"),
		Email:    fieldString(rec, "email", "Email", "email_address", "EmailAddress"),
		Address:  address,
	}, true
}

// USFromFiveCalls maps a 5 Calls record. Chamber is explicit on this source,
// so anything that is not the House is dropped without heuristics.
func USFromFiveCalls(rep client.FiveCallsRep) (model.ContactInfo, bool) {
	if !strings.EqualFold(rep.Chamber, "house") || rep.Name == "" {
		return model.ContactInfo{}, false
	}

	return model.ContactInfo{
		Name:     rep.Name,
		Role:     model.RoleHouseRepresentative,
		District: USDistrictLabel(rep.State, rep.District),
		Party:    rep.Party,
		Phone:    rep.Phone,
		Website:  firstNonEmpty(rep.ContactForm, rep.URL),
		Email:    rep.Email,
	}, true
}

// USDistrictLabel builds the canonical district label: "{state}-{district}"
// for a real district, "{state}-At-Large" when the district is empty or
// at-large and the state is known, empty otherwise.
func USDistrictLabel(state, district string) string {
	district = strings.TrimSpace(district)
	if _, atLarge := atLargeDistricts[strings.ToLower(district)]; !atLarge {
		if state != "" {
			return state + "-" + district
		}
		return district
	}
	if state != "" {
		return state + "-At-Large"
	}
	return ""
}

// fieldString returns the first present, non-empty field among keys,
// stringifying JSON numbers since some deployments send districts as
// numbers.
func fieldString(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
