package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
)

func newAuthFixture() (*fakeUserStore, *AuthService) {
	users := newFakeUserStore()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return users, NewAuthService(users, jwtService)
}

func TestRegisterStudentAndMentor(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	student, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Sam Student", Email: "Sam@SkillPath.io", Password: "secret1", Role: "STUDENT",
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@skillpath.io", student.Email)
	assert.True(t, student.IsApproved)
	assert.True(t, student.IsActive)
	assert.NotEqual(t, "secret1", student.Password)

	mentor, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Mia Mentor", Email: "mia@skillpath.io", Password: "secret1", Role: "MENTOR",
	})
	require.NoError(t, err)
	assert.False(t, mentor.IsApproved)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Dup", Email: "sam@skillpath.io", Password: "secret1", Role: "STUDENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Sam Student", Email: "sam@skillpath.io", Password: "secret1", Role: "STUDENT",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "sam@skillpath.io", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "sam@skillpath.io", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@skillpath.io", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	users, svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Sam Student", Email: "sam@skillpath.io", Password: "secret1", Role: "STUDENT",
	})
	require.NoError(t, err)
	require.NoError(t, users.SetActive(ctx, user.ID, false))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "sam@skillpath.io", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLoginAllowsPendingMentor(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Mia Mentor", Email: "mia@skillpath.io", Password: "secret1", Role: "MENTOR",
	})
	require.NoError(t, err)

	// pending mentors can log in; the account middleware blocks their
	// protected calls until an admin approves them
	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "mia@skillpath.io", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, resp.User.IsApproved)
}
