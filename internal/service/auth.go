// Package service implements the application's business logic: the
// authentication state manager and the promotion collection manager.
// Persistence is delegated to narrow store interfaces so tests can swap
// in fakes.
package service

import (
	"sync"

	"github.com/avillega/petstore-admin/internal/models"
)

// AuthStore defines the persistence operations required by AuthService.
type AuthStore interface {
	// InitializeDefaults seeds the default data on first run.
	InitializeDefaults() error
	// GetUsers returns the stored credential list.
	GetUsers() ([]models.User, error)
	// SaveUsers overwrites the stored credential list.
	SaveUsers([]models.User) error
	// GetSession returns the persisted session, nil when absent.
	GetSession() (*models.Session, error)
	// SaveSession persists the singleton session record.
	SaveSession(models.Session) error
	// ClearSession removes the persisted session.
	ClearSession() error
}

// AuthService manages the single admin session backed by the credential
// store. The store assumes one logical writer; the mutex only guards the
// in-memory copy against concurrent HTTP handlers.
type AuthService struct {
	store AuthStore

	mu      sync.Mutex
	session *models.Session
}

// NewAuthService constructs an AuthService over the given store. Init
// must run before the service handles operations.
func NewAuthService(store AuthStore) *AuthService {
	return &AuthService{store: store}
}

// Init seeds the default data and loads any persisted session.
func (s *AuthService) Init() error {
	if err := s.store.InitializeDefaults(); err != nil {
		return err
	}
	session, err := s.store.GetSession()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return nil
}

// Session returns the current session, or nil when nobody is logged in.
func (s *AuthService) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// Login matches email and password against the stored users. Both fields
// compare case-sensitively and in full. On a match it persists a fresh
// authenticated session and returns true; on no match nothing changes and
// it returns false.
func (s *AuthService) Login(email, password string) (bool, error) {
	users, err := s.store.GetUsers()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Email != email || u.Password != password {
			continue
		}
		session := models.Session{Email: email, IsAuthenticated: true}
		if err := s.store.SaveSession(session); err != nil {
			return false, err
		}
		s.mu.Lock()
		s.session = &session
		s.mu.Unlock()
		return true, nil
	}
	return false, nil
}

// Logout clears the persisted session unconditionally. Logging out while
// already logged out is a harmless no-op.
func (s *AuthService) Logout() error {
	if err := s.store.ClearSession(); err != nil {
		return err
	}
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

// Register appends a new credential unless the email is already taken
// (exact, case-sensitive comparison). It does not log the new user in.
func (s *AuthService) Register(email, password string) (bool, error) {
	users, err := s.store.GetUsers()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Email == email {
			return false, nil
		}
	}
	users = append(users, models.User{Email: email, Password: password})
	if err := s.store.SaveUsers(users); err != nil {
		return false, err
	}
	return true, nil
}
