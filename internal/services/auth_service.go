package services

import (
	"tripbook/internal/domain"
	"tripbook/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns registration and credential verification. Passwords are
// stored as bcrypt hashes only.
type AuthService struct {
	Users  *store.UserStore
	Tokens TokenService
}

// Register creates a new account. Email collision is an exact,
// case-sensitive match.
func (s AuthService) Register(name, email, password string) (domain.User, error) {
	if _, exists := s.Users.ByEmail(email); exists {
		return domain.User{}, domain.ValidationError{Msg: "Email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	user := s.Users.Add(domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password return the same error.
func (s AuthService) Login(email, password string) (string, error) {
	user, ok := s.Users.ByEmail(email)
	if !ok {
		return "", domain.CredentialsError{}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.CredentialsError{Err: err}
	}
	return s.Tokens.Issue(user.ID, user.Email)
}

// Profile resolves the user behind a validated session.
func (s AuthService) Profile(userID int64) (domain.PublicUser, error) {
	user, ok := s.Users.ByID(userID)
	if !ok {
		return domain.PublicUser{}, domain.NotFoundError{Resource: "user"}
	}
	return user.ToPublic(), nil
}
