//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/servicemocks/mock_auth_service.go -package=servicemocks
package services

import (
	"fmt"
	"strings"
	"team-chat/auth"
	"team-chat/errors"
	"team-chat/repositories"
)

type IAuthService interface {
	Register(name, email, password string) (Session, error)
	Login(email, password string) (Session, error)
}

type TokenGenerator interface {
	Generate(userID string) (string, error)
}

// Session is what a successful sign in or sign up hands back to the client.
type Session struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         TokenGenerator
}

func NewAuthService(repo repositories.IUserRepository, tokens TokenGenerator) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(name, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	// Validation runs before any expensive cryptographic operation
	if err := auth.ValidateRegister(auth.RegisterRequest{Name: name, Email: email, Password: password}); err != nil {
		return Session{}, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// Propagates ErrUserAlreadyExists when the email is taken
	userID, err := s.userRepository.CreateUser(email, strings.TrimSpace(name), hashedPassword)
	if err != nil {
		return Session{}, err
	}
	return s.session(userID)
}

func (s *AuthService) Login(email, password string) (Session, error) {
	user, err := s.userRepository.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same error as a bad password so emails cannot be enumerated
		return Session{}, errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}
	return s.session(user.ID)
}

func (s *AuthService) session(userID string) (Session, error) {
	token, err := s.tokens.Generate(userID)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{UserID: userID, Token: token}, nil
}
