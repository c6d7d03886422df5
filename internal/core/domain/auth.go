package domain

// AuthMethod defines how a source provider authenticates.
type AuthMethod string

const (
	// AuthMethodNone sends unauthenticated requests (lowest rate limits).
	AuthMethodNone AuthMethod = "none"
	// AuthMethodPAT uses a Personal Access Token.
	AuthMethodPAT AuthMethod = "pat"
)

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}
