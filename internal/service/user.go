package service

import (
	"errors"
	"fmt"

	"identity-service-backend/internal/auth"
	"identity-service-backend/internal/database/models"
	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration, login and user lookup
type UserService struct {
	repo      repository.UserRepositoryInterface
	tokens    *auth.AuthService
	hasher    *auth.PasswordHasher
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tokens *auth.AuthService, hasher *auth.PasswordHasher, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		hasher:    hasher,
		validator: validator,
	}
}

// RegisterRequest represents the payload to create an account
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required"`
	Phone     string `json:"phone" validate:"max=20"`
}

// LoginRequest represents the payload to authenticate
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the client-facing user shape
type UserResponse struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

// AuthResponse carries the issued bearer token plus the user it identifies
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// Register creates the user, their default organisation and its membership
// atomically, then issues a token. Field failures are collected into
// apperrors.ValidationErrors so the caller can report all of them at once.
func (s *UserService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if errs := s.validateRegistration(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	defaultOrg := &models.Organisation{
		Name: fmt.Sprintf("%s's Organisation", req.FirstName),
	}

	if err := s.repo.CreateWithDefaultOrg(user, defaultOrg); err != nil {
		// Concurrent registration with the same email can slip past the
		// pre-check; the unique index reports it here instead.
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ValidationErrors{}.Add("email", "Email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toAuthResponse(user)
}

// Login verifies the email/password pair and issues a token. An unknown
// email and a wrong password both surface as ErrInvalidCredentials so
// responses never reveal which one it was.
func (s *UserService) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.toAuthResponse(user)
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toUserResponse(user), nil
}

func (s *UserService) validateRegistration(req *RegisterRequest) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs = errs.Add("", "invalid request")
			return errs
		}
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "required":
				errs = errs.Add(fe.Field(), fmt.Sprintf("%s is required", fe.Field()))
			default:
				errs = errs.Add(fe.Field(), fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
		return errs
	}

	// Friendlier duplicate report than the unique-index error; the index
	// remains the backstop for races.
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		errs = errs.Add("email", "Email is already registered")
	}

	return errs
}

func (s *UserService) toAuthResponse(user *models.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		User:        *s.toUserResponse(user),
	}, nil
}

func (s *UserService) toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
