package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"velocity/internal/fixture"
)

var ErrBadCreds = errors.New("invalid credentials")

type LoginResult struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type AuthService struct {
	Users  *fixture.Store
	Policy Policy
}

func NewAuthService(users *fixture.Store, pol Policy) *AuthService {
	return &AuthService{Users: users, Policy: pol}
}

// Login checks the pair against the fixture users. The username is trimmed
// before comparison; the password is compared verbatim. No session state is
// created: the caller owns whatever it does with the returned identity.
func (s *AuthService) Login(username, password string) (LoginResult, error) {
	name := strings.TrimSpace(username)

	u, ok := s.Users.UserByUsername(name)
	if ok && bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) == nil {
		return LoginResult{Success: true, UserID: u.ID, Username: u.Username, Message: "Login successful"}, nil
	}

	// Seeded reference backdoor, legacy mode only.
	if s.Policy.LoginBackdoor && name == "user1" && password == "user@2" {
		if u, ok := s.Users.UserByUsername("user1"); ok {
			return LoginResult{Success: true, UserID: u.ID, Username: u.Username, Message: "Login successful"}, nil
		}
	}

	return LoginResult{}, ErrBadCreds
}
