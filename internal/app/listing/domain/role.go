package domain

// Role is the caller's access tier, passed explicitly into every query and
// usecase. There is no ambient session state in this service.
type Role string

const (
	RoleAnonymous  Role = "anonymous"
	RoleBuyer      Role = "buyer"
	RoleSeller     Role = "seller"
	RoleBusiness   Role = "business"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// roleRank orders roles from least to most privileged.
var roleRank = map[Role]int{
	RoleAnonymous:  0,
	RoleBuyer:      1,
	RoleSeller:     2,
	RoleBusiness:   3,
	RoleAdmin:      4,
	RoleSuperadmin: 5,
}

// ParseRole maps an arbitrary claim string to a Role, defaulting to anonymous.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleRank[r]; ok {
		return r
	}
	return RoleAnonymous
}

// AtLeast reports whether r has at least the privileges of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// CanFilterStatus reports whether the role may request arbitrary listing
// statuses. Everyone else is pinned to available listings.
func (r Role) CanFilterStatus() bool {
	return r.AtLeast(RoleAdmin)
}

// SeesScheduledListings reports whether the role may see listings whose
// public release time has not yet passed.
func (r Role) SeesScheduledListings() bool {
	return r.AtLeast(RoleBusiness)
}
