package services

import (
	"context"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// UserService handles account administration
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

// ListUsers returns every account
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// ListStudents returns every student account
func (s *UserService) ListStudents(ctx context.Context) ([]*models.User, error) {
	return s.users.ListByRole(ctx, models.RoleStudent)
}

// UpdateUser edits a user on behalf of an admin. Admin accounts other than
// the caller's own are off limits, and admins cannot change their own role.
func (s *UserService) UpdateUser(ctx context.Context, actorID, targetID int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.RoleType == models.RoleAdmin && user.ID != actorID {
		return nil, apperrors.NewForbiddenError("admin accounts cannot be modified")
	}

	if req.Email != "" && req.Email != user.Email {
		email := normalizeEmail(req.Email)
		taken, err := s.users.EmailExistsExcept(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}

	if req.Role != "" {
		role := models.RoleType(req.Role)
		if user.ID == actorID && role != user.RoleType {
			return nil, apperrors.NewForbiddenError("you cannot change your own role")
		}
		if role == models.RoleStudent || role == models.RoleAdmin {
			user.IsApproved = true
		}
		user.RoleType = role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetMentorApproval approves or rejects a pending mentor
func (s *UserService) SetMentorApproval(ctx context.Context, targetID int64, approved bool) (*models.User, error) {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.RoleType != models.RoleMentor {
		return nil, apperrors.ErrNotAMentor
	}

	if err := s.users.SetApproval(ctx, targetID, approved); err != nil {
		return nil, err
	}
	user.IsApproved = approved

	logger.Info().
		Int64("userId", user.ID).
		Bool("approved", approved).
		Msg("Mentor approval updated")

	return user, nil
}

// SetUserActive activates or deactivates an account. Admins cannot
// deactivate themselves or other admins.
func (s *UserService) SetUserActive(ctx context.Context, actorID, targetID int64, active bool) (*models.User, error) {
	if actorID == targetID {
		return nil, apperrors.NewForbiddenError("you cannot deactivate your own account")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.RoleType == models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("admin accounts cannot be deactivated")
	}

	if err := s.users.SetActive(ctx, targetID, active); err != nil {
		return nil, err
	}
	user.IsActive = active

	return user, nil
}

// DeleteUser removes an account. Self-deletion and admin targets are denied.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return apperrors.NewForbiddenError("you cannot delete your own account")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if user.RoleType == models.RoleAdmin {
		return apperrors.NewForbiddenError("admin accounts cannot be deleted")
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}

	logger.Info().Int64("userId", targetID).Msg("User deleted")

	return nil
}
