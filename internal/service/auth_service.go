package service

import (
	"errors"
	"time"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/pkg/jwt"
	"go-fichas-ws/pkg/validator"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Register(email, password, name string) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	TokenTTL() time.Duration
}

// AuthResponse carries the signed session token plus the user it belongs
// to. The handler additionally delivers the token as an http-only cookie.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokenTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, tokenTTL: tokenTTL}
}

func (s *authService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *authService) Register(email, password, name string) (*AuthResponse, error) {
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	user := &model.User{Email: email, Name: name}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: token, User: sanitize(user)}, nil
}

func (s *authService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: token, User: sanitize(user)}, nil
}

// sanitize strips the stored hash before the user leaves the service layer.
func sanitize(user *model.User) model.User {
	out := *user
	out.Password = ""
	return out
}
