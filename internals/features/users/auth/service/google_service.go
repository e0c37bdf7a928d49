package service

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"afa_backend/internals/configs"
)

type GoogleIdentity struct {
	Email    string
	Name     string
	GoogleID string
}

// VerifyGoogleIDToken checks the ID token against our client id and pulls
// the identity claims out of it.
func VerifyGoogleIDToken(idToken string) (GoogleIdentity, error) {
	if configs.GoogleClientID == "" {
		return GoogleIdentity{}, errors.New("google sign-in not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return GoogleIdentity{}, errors.New("invalid Google ID token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return GoogleIdentity{}, errors.New("failed to decode ID token")
	}

	return GoogleIdentity{
		Email:    claimSet.Email,
		Name:     claimSet.Name,
		GoogleID: claimSet.Sub,
	}, nil
}
