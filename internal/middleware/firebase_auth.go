package middleware

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// verifyProviderToken verifies a Firebase ID token and returns the identity
// provider's attribute bag.
func verifyProviderToken(ctx context.Context, authClient *auth.Client, idToken string) (map[string]interface{}, error) {
	if authClient == nil {
		return nil, fmt.Errorf("identity provider not configured")
	}
	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired ID token: %w", err)
	}
	return token.Claims, nil
}
