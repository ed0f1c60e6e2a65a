package normalize

import (
	"strings"

	"zip2mp/pkg/client"
	"zip2mp/pkg/model"
)

// IsFederalRepresentative reports whether a Represent record is a federal
// MP. Three independent signals are ORed together because boundary sets are
// inconsistent about which ones they populate: the office title, the
// explicit level flag, and an "mp" title substring.
func IsFederalRepresentative(rep client.RepresentRepresentative) bool {
	office := strings.ToLower(rep.ElectedOffice)
	return strings.Contains(office, "member of parliament") ||
		strings.ToLower(rep.Level) == "federal" ||
		strings.Contains(office, "mp")
}

// CanadaFromRepresent maps one Represent record into the canonical schema.
// Represent uses district_name or riding_name, url or website, tel or phone
// depending on the boundary set that produced the record.
func CanadaFromRepresent(rep client.RepresentRepresentative) model.ContactInfo {
	return model.ContactInfo{
		Name:    rep.Name,
		Role:    model.RoleMemberOfParliament,
		Riding:  firstNonEmpty(rep.DistrictName, rep.RidingName),
		Party:   rep.PartyName,
		Email:   rep.Email,
		Website: firstNonEmpty(rep.URL, rep.Website),
		Phone:   firstNonEmpty(rep.Tel, rep.Phone),
		Address: firstNonEmpty(rep.Office, rep.Postal),
	}
}

// FillFromOpenParliament merges enrichment data into a contact built from
// the primary source. Enrichment only fills gaps; values already present
// from the primary source are never overridden.
func FillFromOpenParliament(contact *model.ContactInfo, member client.OpenParliamentMember) {
	if contact.Name == "" {
		contact.Name = member.Name
	}
	if contact.Riding == "" {
		contact.Riding = member.Riding
	}
	if contact.Party == "" {
		contact.Party = member.Party
	}
	if contact.Email == "" {
		contact.Email = member.Email
	}
	if contact.Website == "" {
		contact.Website = member.Website
	}
	if contact.Phone == "" {
		contact.Phone = member.Phone
	}
}

// CanadaFromOpenParliament maps an OpenParliament member directly, used only
// by the last-resort fallback.
func CanadaFromOpenParliament(member client.OpenParliamentMember) model.ContactInfo {
	return model.ContactInfo{
		Name:    member.Name,
		Role:    model.RoleMemberOfParliament,
		Riding:  member.Riding,
		Party:   member.Party,
		Email:   member.Email,
		Website: member.Website,
		Phone:   member.Phone,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
