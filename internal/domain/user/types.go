package user

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleMember:
		return true
	default:
		return false
	}
}

// Eligibility is the account review state. Only approved identities may
// create bookings.
type Eligibility string

const (
	EligibilityApproved  Eligibility = "approved"
	EligibilityPending   Eligibility = "pending"
	EligibilitySuspended Eligibility = "suspended"
)

func (e Eligibility) String() string {
	return string(e)
}

func (e Eligibility) IsValid() bool {
	switch e {
	case EligibilityApproved, EligibilityPending, EligibilitySuspended:
		return true
	default:
		return false
	}
}

func (e Eligibility) MayBook() bool {
	return e == EligibilityApproved
}
