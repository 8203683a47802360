package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/storage"
)

// ErrNotLoggedIn is returned by commands that need a signed-in user
var ErrNotLoggedIn = errors.New("not logged in, run 'hrportal login' first")

// Backend persists session keys. storage.SessionStore satisfies it.
type Backend = storage.SessionStore

// State is a snapshot of the session
type State struct {
	IsAuthenticated bool
	User            *models.User
	LastRoute       string
}

// Session is the process-wide login state. It is read once from the
// backend on Open and every key is cleared on Logout.
type Session struct {
	backend Backend

	mu    sync.RWMutex
	state State
}

// Open reads the stored session. A stored user that cannot be decoded is
// treated as logged out.
func Open(backend Backend) (*Session, error) {
	s := &Session{backend: backend}

	auth, err := s.get(constants.SessionKeyAuthenticated)
	if err != nil {
		return nil, err
	}
	route, err := s.get(constants.SessionKeyLastRoute)
	if err != nil {
		return nil, err
	}
	s.state.LastRoute = route

	if auth != "true" {
		return s, nil
	}
	raw, err := s.get(constants.SessionKeyUser)
	if err != nil {
		return nil, err
	}
	var u models.User
	if raw == "" || json.Unmarshal([]byte(raw), &u) != nil {
		logger.Warn("stored session user is unreadable, starting logged out")
		return s, nil
	}
	s.state.IsAuthenticated = true
	s.state.User = &u
	return s, nil
}

func (s *Session) get(key string) (string, error) {
	v, err := s.backend.GetSessionValue(key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session %s: %w", key, err)
	}
	return v, nil
}

// Login stores user as the signed-in employee
func (s *Session) Login(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SetSessionValue(constants.SessionKeyUser, string(data)); err != nil {
		return fmt.Errorf("failed to save session user: %w", err)
	}
	if err := s.backend.SetSessionValue(constants.SessionKeyAuthenticated, "true"); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.state.IsAuthenticated = true
	s.state.User = &user
	logger.Info("logged in", "employee_id", user.Identifier())
	return nil
}

// SetRoute records the last visited screen
func (s *Session) SetRoute(route string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SetSessionValue(constants.SessionKeyLastRoute, route); err != nil {
		return fmt.Errorf("failed to save last route: %w", err)
	}
	s.state.LastRoute = route
	return nil
}

// Logout clears every session key
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.backend.DeleteSessionValues(
		constants.SessionKeyAuthenticated,
		constants.SessionKeyUser,
		constants.SessionKeyLastRoute,
	)
	s.state = State{}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// State returns a copy of the session
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.state
	if out.User != nil {
		u := *out.User
		out.User = &u
	}
	return out
}

// User returns the signed-in user or ErrNotLoggedIn
func (s *Session) User() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return models.User{}, ErrNotLoggedIn
	}
	return *s.state.User, nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// LastRoute returns the stored route, or the dashboard when none is stored
func (s *Session) LastRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LastRoute == "" {
		return constants.RouteDashboard
	}
	return s.state.LastRoute
}

// IsAdmin only decides what the UI offers. The server enforces access.
func (s *Session) IsAdmin() bool {
	u, err := s.User()
	return err == nil && (u.IsAdmin || u.Role == constants.RoleAdministrator)
}

// IsManager only decides what the UI offers. The server enforces access.
func (s *Session) IsManager() bool {
	u, err := s.User()
	return err == nil && u.CanApprove()
}
