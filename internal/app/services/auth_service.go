package services

import (
	"context"
	"errors"
	"strings"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// AuthService handles registration, login and profile lookups
type AuthService struct {
	users      UserStore
	jwtService *pkgauth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, jwtService *pkgauth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new student or mentor account. Students are usable
// immediately; mentors stay unapproved until an admin approves them.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.RoleType(req.Role)
	if role != models.RoleStudent && role != models.RoleMentor {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be STUDENT or MENTOR")
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      normalizeEmail(req.Email),
		Password:   hashed,
		FullName:   strings.TrimSpace(req.FullName),
		RoleType:   role,
		IsApproved: role == models.RoleStudent,
		IsActive:   true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userId", user.ID).
		Str("role", string(user.RoleType)).
		Msg("User registered")

	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user,
	}, nil
}

// Profile returns the authenticated user's account
func (s *AuthService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
