package session

import (
	"errors"
	"slices"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/keyring"
	"github.com/julianstephens/hrportal/internal/storage"
)

// KeyringBackend keeps the user record in the OS keyring and the other
// keys in the wrapped store.
type KeyringBackend struct {
	Store storage.SessionStore
}

func (k KeyringBackend) GetSessionValue(key string) (string, error) {
	if key != constants.SessionKeyUser {
		return k.Store.GetSessionValue(key)
	}
	v, err := keyring.GetUser()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", storage.ErrNotFound
	}
	return v, err
}

func (k KeyringBackend) SetSessionValue(key, value string) error {
	if key != constants.SessionKeyUser {
		return k.Store.SetSessionValue(key, value)
	}
	return keyring.SetUser(value)
}

func (k KeyringBackend) DeleteSessionValues(keys ...string) error {
	rest := slices.DeleteFunc(slices.Clone(keys), func(key string) bool { return key == constants.SessionKeyUser })
	if len(rest) != len(keys) {
		if err := keyring.DeleteUser(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return err
		}
	}
	return k.Store.DeleteSessionValues(rest...)
}

// NewBackend picks the backend named by the session_backend setting
func NewBackend(name string, store storage.SessionStore) (Backend, error) {
	switch name {
	case "", constants.SessionBackendSQLite:
		return store, nil
	case constants.SessionBackendKeyring:
		if !keyring.IsAvailable() {
			return nil, keyring.ErrKeyringUnavailable
		}
		return KeyringBackend{Store: store}, nil
	default:
		return nil, errors.New("unknown session backend " + name)
	}
}
