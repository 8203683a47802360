package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/hrportal/internal/constants"
)

var (
	// ErrNotFound is returned when no session user is stored in the keyring
	ErrNotFound = errors.New("session user not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetUser retrieves the serialized session user from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func GetUser() (string, error) {
	data, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return data, nil
}

// SetUser stores the serialized session user in the OS keyring
func SetUser(data string) error {
	if data == "" {
		return errors.New("session user cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, data); err != nil {
		return fmt.Errorf("failed to store session user in keyring: %w", err)
	}
	return nil
}

// DeleteUser removes the session user from the OS keyring
func DeleteUser() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session user from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
