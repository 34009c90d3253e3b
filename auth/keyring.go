// Package auth stores the extraction service token in the system keyring.
package auth

import (
	"errors"

	"github.com/mediagrab/mediagrab/constant"
	"github.com/zalando/go-keyring"
)

const user = "provider-token"

// SetToken persists the extraction service token.
func SetToken(token string) error {
	return keyring.Set(constant.Mediagrab, user, token)
}

// GetToken retrieves the extraction service token.
func GetToken() (string, error) {
	return keyring.Get(constant.Mediagrab, user)
}

// Token returns the stored token, or an empty string when none is stored or
// the keyring is unavailable.
func Token() string {
	token, err := GetToken()
	if err != nil {
		return ""
	}
	return token
}

// DeleteToken removes the stored token. Deleting a missing token is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.Mediagrab, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
