package model

// Roles emitted by the lookup pipelines. These are the only values that
// appear in ContactInfo.Role.
const (
	RoleMemberOfParliament  = "Member of Parliament"
	RoleHouseRepresentative = "Member of the House of Representatives"
)

// ContactInfo is the canonical contact record produced by every lookup,
// regardless of which upstream source supplied the data. Upstream data is
// inherently partial, so everything past name and role is optional.
type ContactInfo struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
	Party   string `json:"party,omitempty"`

	// Riding is the Canadian federal electoral district.
	Riding string `json:"riding,omitempty"`
	// District is the US congressional district label, e.g. "CA-12" or
	// "WY-At-Large".
	District string `json:"district,omitempty"`
}
