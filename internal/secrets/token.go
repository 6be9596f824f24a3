package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"jobportal-engine/internal/config"
)

const (
	// "Service" groups the engine's secrets in the OS keychain.
	KeyringService = "jobportal"
)

// GetSessionToken returns the identity-provider session token for the
// configured account, or an error when none is stored.
func GetSessionToken(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		tok, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	return "", errors.New("session token not found (sign in from the UI first)")
}

func SetSessionToken(keyringAccount string, token string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteSessionToken(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

func SessionKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf("jobportal:session:%s", cfg.Identity.Account)
}
