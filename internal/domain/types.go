package domain

// ID is used across domain entities.
type ID int64

// CurrentUser carries the authenticated caller, resolved from the session.
type CurrentUser struct {
	ID        ID     `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName mirrors the display name used to pre-fill contact forms.
func (u CurrentUser) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}

// DisplayName falls back to the username when no name was registered.
func (u CurrentUser) DisplayName() string {
	if n := u.FullName(); n != "" {
		return n
	}
	return u.Username
}
