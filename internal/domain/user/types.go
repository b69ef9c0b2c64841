package user

type Role string

const (
	RoleCustomer     Role = "customer"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RolePhotographer, RoleAdmin:
		return true
	default:
		return false
	}
}
