package models

// Session is the explicit identity passed to anything that renders per role.
// It is decoded once by the session middleware and never looked up ambiently.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Is reports whether the session has one of the given roles.
func (s Session) Is(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
