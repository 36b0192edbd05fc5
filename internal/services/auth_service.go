package services

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/swaupd/OsBlogApp/internal/apperrors"
	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/repositories"
	"github.com/swaupd/OsBlogApp/internal/session"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, login, and logout against the persisted
// user sequence and the in-memory session.
//
// Passwords are stored and compared as plain text to keep the persisted users
// record format unchanged; the single-device store is the only consumer. A
// multi-device deployment would need salted hashing and constant-time
// comparison here.
type AuthService struct {
	users   repositories.UserRepository
	session *session.Session
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, sess *session.Session) *AuthService {
	return &AuthService{
		users:   users,
		session: sess,
	}
}

// Register validates the form, checks username and email uniqueness against
// the full user sequence, persists the new user, and logs them in.
// Validation short-circuits on the first failing rule; nothing is persisted on
// any failure.
func (s *AuthService) Register(username, email, password, confirmPassword string) (*models.User, error) {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, &apperrors.ValidationError{Field: "form", Message: "All fields are required"}
	}
	if len(username) < 3 {
		return nil, &apperrors.ValidationError{Field: "username", Message: "Username must be at least 3 characters"}
	}
	if len(password) < 6 {
		return nil, &apperrors.ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if password != confirmPassword {
		return nil, &apperrors.ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &apperrors.ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}

	if existing, err := s.users.FindByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &apperrors.ConflictError{Field: "username", Message: "Username already exists"}
	}
	if existing, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &apperrors.ConflictError{Field: "email", Message: "Email already exists"}
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.users.Append(user); err != nil {
		return nil, err
	}

	// Registration implies login.
	s.session.Login(user)
	return &user, nil
}

// Login validates the form and scans the persisted sequence for an exact
// match on both username and password. The mismatch error is deliberately
// generic so it never reveals which field was wrong.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, &apperrors.ValidationError{Field: "form", Message: "All fields are required"}
	}
	if len(username) < 3 {
		return nil, &apperrors.ValidationError{Field: "username", Message: "Username must be at least 3 characters"}
	}
	if len(password) < 6 {
		return nil, &apperrors.ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}

	user, err := s.users.FindByCredentials(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.session.Login(*user)
	return user, nil
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout() {
	s.session.Logout()
}

// CurrentUser reports the logged-in user, if any.
func (s *AuthService) CurrentUser() (models.User, bool) {
	return s.session.Current()
}
