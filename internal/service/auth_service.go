// Package service holds the business rules between the HTTP handlers and
// the repositories.
package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo    repository.UserRepository
	codec       *auth.Codec
	adminSecret string
}

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	AdminSecret string `json:"adminSecret"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.Codec, adminSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		codec:       codec,
		adminSecret: adminSecret,
	}
}

// Register creates an account and returns it with a signed token. The admin
// role is granted only when the caller presents the configured admin secret;
// any other requested role silently defaults to "user". The issued token
// carries no role claim.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := validation.ValidateName(in.Name); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	role := models.RoleUser
	if in.Role == models.RoleAdmin && s.adminSecretMatches(in.AdminSecret) {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.codec.Issue(auth.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token
// carrying the role claim. Unknown email and wrong password are reported
// identically so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.NewValidationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, "", models.NewValidationError("Invalid email or password")
	}

	if in.IsAdmin && !user.IsAdmin() {
		return nil, "", models.NewForbiddenError("Access denied: Not an admin")
	}

	token, err := s.codec.Issue(auth.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	return user, token, nil
}

func (s *AuthService) adminSecretMatches(candidate string) bool {
	if s.adminSecret == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.adminSecret), []byte(candidate)) == 1
}
