package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

func newUserFixture() (*fakeUserStore, *UserService, *models.User, *models.User, *models.User) {
	users := newFakeUserStore()
	admin := users.add(&models.User{Email: "admin@skillpath.io", FullName: "Admin", RoleType: models.RoleAdmin, IsApproved: true, IsActive: true})
	mentor := users.add(&models.User{Email: "mentor@skillpath.io", FullName: "Mentor", RoleType: models.RoleMentor, IsActive: true})
	student := users.add(&models.User{Email: "student@skillpath.io", FullName: "Student", RoleType: models.RoleStudent, IsApproved: true, IsActive: true})
	return users, NewUserService(users), admin, mentor, student
}

func TestUpdateUserGuards(t *testing.T) {
	users, svc, admin, _, student := newUserFixture()
	ctx := context.Background()
	secondAdmin := users.add(&models.User{Email: "root@skillpath.io", RoleType: models.RoleAdmin, IsApproved: true, IsActive: true})

	_, err := svc.UpdateUser(ctx, admin.ID, secondAdmin.ID, &dto.UpdateUserRequest{FullName: "Renamed"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdateUser(ctx, admin.ID, admin.ID, &dto.UpdateUserRequest{Role: "STUDENT"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdateUser(ctx, admin.ID, student.ID, &dto.UpdateUserRequest{Email: "admin@skillpath.io"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	updated, err := svc.UpdateUser(ctx, admin.ID, student.ID, &dto.UpdateUserRequest{FullName: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
}

func TestSetMentorApproval(t *testing.T) {
	_, svc, _, mentor, student := newUserFixture()
	ctx := context.Background()

	approved, err := svc.SetMentorApproval(ctx, mentor.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	_, err = svc.SetMentorApproval(ctx, student.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrNotAMentor)
}

func TestSetUserActiveGuards(t *testing.T) {
	users, svc, admin, _, student := newUserFixture()
	ctx := context.Background()
	secondAdmin := users.add(&models.User{Email: "root@skillpath.io", RoleType: models.RoleAdmin, IsActive: true})

	_, err := svc.SetUserActive(ctx, admin.ID, admin.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.SetUserActive(ctx, admin.ID, secondAdmin.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	deactivated, err := svc.SetUserActive(ctx, admin.ID, student.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestDeleteUserGuards(t *testing.T) {
	users, svc, admin, _, student := newUserFixture()
	ctx := context.Background()
	secondAdmin := users.add(&models.User{Email: "root@skillpath.io", RoleType: models.RoleAdmin, IsActive: true})

	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, secondAdmin.ID), apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteUser(ctx, admin.ID, student.ID))
	_, err := users.GetByID(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
