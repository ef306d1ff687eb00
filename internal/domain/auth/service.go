// internal/domain/auth/service.go
package auth

import (
	"strings"
	"sync"
)

// Fixed admin credential pair. This is deliberately not a real credential
// system: the storefront ships with exactly one admin identity and no
// password storage, matching the published site.
const (
	adminUsername = "yasirperfume"
	adminPassword = "yasir@313"
)

// User represents the customer signed in for the current session
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service holds the authentication state for a single session: an admin flag
// gated by the fixed pair, and an optional customer record set by mock
// login/signup. Neither check provides any security guarantee; failures are
// reported as a boolean so callers can show an inline message.
type Service struct {
	mu                 sync.Mutex
	adminAuthenticated bool
	currentUser        *User
}

// NewService creates an auth service with nobody signed in
func NewService() *Service {
	return &Service{}
}

// AdminLoginRequest represents an admin login attempt
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a customer login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents a customer signup attempt
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin sets the admin flag only on an exact match against the fixed
// pair. Any other input returns false and clears the flag.
func (s *Service) AdminLogin(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == adminUsername && password == adminPassword {
		s.adminAuthenticated = true
		return true
	}
	s.adminAuthenticated = false
	return false
}

// AdminLogout resets the admin flag
func (s *Service) AdminLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminAuthenticated = false
}

// IsAdminAuthenticated reports whether this session passed the admin check
func (s *Service) IsAdminAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminAuthenticated
}

// Login accepts any non-empty email and password and signs the customer in.
// It returns the user record and whether the attempt succeeded.
func (s *Service) Login(email, password string) (User, bool) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return User{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{Name: "Test User", Email: email}
	s.currentUser = &user
	return user, true
}

// Signup accepts any non-empty name, email and password and signs the new
// customer in.
func (s *Service) Signup(name, email, password string) (User, bool) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return User{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{Name: name, Email: email}
	s.currentUser = &user
	return user, true
}

// Logout clears the customer record
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// CurrentUser returns the signed-in customer, reporting whether one exists
func (s *Service) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return User{}, false
	}
	return *s.currentUser, true
}
