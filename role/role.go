package role

import "strings"

type Role string

const (
	Admin        Role = "admin"
	Receptionist Role = "receptionist"
	Doctor       Role = "doctor"
)

// Default is the role given to a registration that names none.
const Default = Receptionist

func (r Role) Valid() bool {
	switch r {
	case Admin, Receptionist, Doctor:
		return true
	}
	return false
}

/*
* Empty input gives the default role
* Unknown names are reported with ok=false
 */
func Parse(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, true
	}
	r := Role(s)
	return r, r.Valid()
}
