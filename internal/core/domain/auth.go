package domain

// AuthMethod identifies how requests to GitHub are authenticated.
type AuthMethod string

const (
	// AuthMethodPAT uses a personal access token.
	AuthMethodPAT AuthMethod = "pat"

	// AuthMethodNone sends anonymous requests (60 requests per hour).
	AuthMethodNone AuthMethod = "none"
)

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m AuthMethod) Description() string {
	switch m {
	case AuthMethodPAT:
		return "Personal Access Token"
	case AuthMethodNone:
		return "Anonymous"
	default:
		return unknownDescription
	}
}
