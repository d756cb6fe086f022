package seed

import (
	"context"
	"errors"
	"os"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/repositories"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

const (
	defaultAdminEmail    = "admin@skillpath.io"
	defaultAdminPassword = "ChangeMe123!"
	defaultAdminName     = "Platform Admin"
)

// EnsureDefaultAdmin creates the admin account on first startup. Admins are
// never created through registration, so a fresh database would otherwise
// have no way in. Override the defaults with ADMIN_EMAIL / ADMIN_PASSWORD.
func EnsureDefaultAdmin(ctx context.Context, users *repositories.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
		logger.Warn().Str("email", email).
			Msg("Seeding admin with the default password, change it immediately")
	}

	hashed, err := pkgauth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:      email,
		Password:   hashed,
		FullName:   defaultAdminName,
		RoleType:   models.RoleAdmin,
		IsApproved: true,
		IsActive:   true,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
