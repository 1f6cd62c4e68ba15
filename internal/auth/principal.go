// Package auth defines the authenticated principal shapes produced by the
// middleware layer and resolves them to a canonical account email.
package auth

import "errors"

var (
	// ErrUnauthenticated means no usable caller identity was supplied.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnsupportedPrincipal means the caller context had a shape the
	// resolver does not recognize. Resolution must fail here rather than
	// guess: every ownership check downstream depends on the resolved
	// identity being correct.
	ErrUnsupportedPrincipal = errors.New("unsupported principal type")
)

// Principal is the identity attached to a request by one of the two login
// mechanisms. Exactly two shapes are recognized: SessionPrincipal and
// ProviderPrincipal.
type Principal interface {
	isPrincipal()
}

// SessionPrincipal is produced by password-session login. The username IS
// the account's email.
type SessionPrincipal struct {
	Username string
}

func (SessionPrincipal) isPrincipal() {}

// ProviderPrincipal is produced by a third-party identity-provider login and
// carries the provider's attribute bag. The account email is read from the
// "email" attribute.
type ProviderPrincipal struct {
	Attributes map[string]interface{}
}

func (ProviderPrincipal) isPrincipal() {}

// ResolveEmail yields the canonical account email for a principal. It is a
// pure function of its argument and performs no lookups.
func ResolveEmail(p Principal) (string, error) {
	switch v := p.(type) {
	case nil:
		return "", ErrUnauthenticated
	case SessionPrincipal:
		if v.Username == "" {
			return "", ErrUnauthenticated
		}
		return v.Username, nil
	case ProviderPrincipal:
		email, ok := v.Attributes["email"].(string)
		if !ok || email == "" {
			return "", ErrUnauthenticated
		}
		return email, nil
	default:
		return "", ErrUnsupportedPrincipal
	}
}
