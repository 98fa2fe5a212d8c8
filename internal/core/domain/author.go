package domain

// AuthorProfile is the public profile of a pull request author.
type AuthorProfile struct {
	Login    string `json:"login"`
	Name     string `json:"name,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Blog     string `json:"blog,omitempty"`
	URL      string `json:"url,omitempty"`

	// Found is false when the account no longer exists.
	Found bool `json:"found"`
}

// DisplayName returns the name if known, otherwise the login.
func (p AuthorProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
