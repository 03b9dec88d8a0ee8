package models

// Profile represents one fetched user record rendered as a card.
// Profiles are built in bulk by a profile source and never mutated afterwards.
type Profile struct {
	// ID is the upstream login.sha256 value, used as the list key.
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName returns "<first> <last>".
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ContactLine is shown in the modal on a positive outcome.
func (p Profile) ContactLine() string {
	return "Text " + p.FullName() + " at " + p.Phone
}
