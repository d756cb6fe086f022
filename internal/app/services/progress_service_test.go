package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/skillpath/lms-backend/internal/app/auth"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

type progressFixture struct {
	users    *fakeUserStore
	courses  *fakeCourseStore
	chapters *fakeChapterStore
	progress *fakeProgressStore
	svc      *ProgressService

	mentor   *models.User
	student  *models.User
	course   *models.Course
	chapList []*models.Chapter
}

func newProgressFixture(t *testing.T, chapterCount int) *progressFixture {
	t.Helper()

	users := newFakeUserStore()
	mentor := users.add(&models.User{
		Email: "mentor@skillpath.io", FullName: "Mia Mentor",
		RoleType: models.RoleMentor, IsApproved: true, IsActive: true,
	})
	student := users.add(&models.User{
		Email: "student@skillpath.io", FullName: "Sam Student",
		RoleType: models.RoleStudent, IsApproved: true, IsActive: true,
	})

	courses := newFakeCourseStore()
	course := courses.add(&models.Course{
		Title: "Go Fundamentals", MentorID: mentor.ID, IsActive: true,
		AssignedStudentIDs: []int64{student.ID},
	})

	chapters := newFakeChapterStore()
	var chapList []*models.Chapter
	for i := 1; i <= chapterCount; i++ {
		chapter := &models.Chapter{
			CourseID: course.ID, Title: fmt.Sprintf("Chapter %d", i), SequenceOrder: i,
		}
		require.NoError(t, chapters.Create(context.Background(), chapter))
		chapList = append(chapList, chapter)
	}

	progress := newFakeProgressStore()
	authz := appauth.NewAuthorizationService(courses)

	return &progressFixture{
		users:    users,
		courses:  courses,
		chapters: chapters,
		progress: progress,
		svc:      NewProgressService(progress, chapters, courses, users, authz),
		mentor:   mentor,
		student:  student,
		course:   course,
		chapList: chapList,
	}
}

func (fx *progressFixture) complete(t *testing.T, chapterID int64) *models.Progress {
	t.Helper()
	record, err := fx.svc.CompleteChapter(context.Background(), fx.student.ID, chapterID)
	require.NoError(t, err)
	return record
}

func TestCompleteChapterInSequence(t *testing.T) {
	fx := newProgressFixture(t, 3)
	ctx := context.Background()

	for _, chapter := range fx.chapList {
		record, err := fx.svc.CompleteChapter(ctx, fx.student.ID, chapter.ID)
		require.NoError(t, err)
		assert.Equal(t, fx.student.ID, record.StudentID)
		assert.Equal(t, fx.course.ID, record.CourseID)
		assert.Equal(t, chapter.ID, record.ChapterID)
		assert.False(t, record.CompletedAt.IsZero())
	}
}

func TestCompleteChapterOutOfSequence(t *testing.T) {
	fx := newProgressFixture(t, 3)
	ctx := context.Background()

	_, err := fx.svc.CompleteChapter(ctx, fx.student.ID, fx.chapList[1].ID)
	assert.ErrorIs(t, err, apperrors.ErrChaptersOutOfSequence)

	fx.complete(t, fx.chapList[0].ID)

	// chapter 2 still missing, so chapter 3 stays denied
	_, err = fx.svc.CompleteChapter(ctx, fx.student.ID, fx.chapList[2].ID)
	assert.ErrorIs(t, err, apperrors.ErrChaptersOutOfSequence)
}

func TestCompleteChapterTwice(t *testing.T) {
	fx := newProgressFixture(t, 2)
	fx.complete(t, fx.chapList[0].ID)

	_, err := fx.svc.CompleteChapter(context.Background(), fx.student.ID, fx.chapList[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrChapterAlreadyCompleted)
}

func TestCompleteChapterNotEnrolled(t *testing.T) {
	fx := newProgressFixture(t, 2)
	outsider := fx.users.add(&models.User{
		Email: "other@skillpath.io", FullName: "Olga Other",
		RoleType: models.RoleStudent, IsActive: true,
	})

	_, err := fx.svc.CompleteChapter(context.Background(), outsider.ID, fx.chapList[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestCompleteChapterUnknown(t *testing.T) {
	fx := newProgressFixture(t, 1)

	_, err := fx.svc.CompleteChapter(context.Background(), fx.student.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrChapterNotFound)
}

func TestCourseStatusLockView(t *testing.T) {
	fx := newProgressFixture(t, 3)
	fx.complete(t, fx.chapList[0].ID)

	status, err := fx.svc.CourseStatus(context.Background(), fx.course.ID, fx.student.ID, models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, status.Chapters, 3)

	assert.True(t, status.Chapters[0].IsCompleted)
	assert.False(t, status.Chapters[0].IsLocked)

	// next chapter unlocks as soon as its predecessor is done
	assert.False(t, status.Chapters[1].IsCompleted)
	assert.False(t, status.Chapters[1].IsLocked)

	assert.False(t, status.Chapters[2].IsCompleted)
	assert.True(t, status.Chapters[2].IsLocked)

	assert.Equal(t, 3, status.Progress.TotalChapters)
	assert.Equal(t, 1, status.Progress.CompletedChapters)
	assert.Equal(t, 33, status.Progress.CompletionPercentage)
}

func TestCourseStatusMentorView(t *testing.T) {
	fx := newProgressFixture(t, 3)
	fx.complete(t, fx.chapList[0].ID)

	status, err := fx.svc.CourseStatus(context.Background(), fx.course.ID, fx.mentor.ID, models.RoleMentor)
	require.NoError(t, err)

	for _, chapter := range status.Chapters {
		assert.False(t, chapter.IsLocked)
		assert.False(t, chapter.IsCompleted)
	}
	assert.Equal(t, 0, status.Progress.CompletionPercentage)
}

func TestCourseStatusDeniedForStranger(t *testing.T) {
	fx := newProgressFixture(t, 1)
	otherMentor := fx.users.add(&models.User{
		Email: "rival@skillpath.io", RoleType: models.RoleMentor, IsApproved: true, IsActive: true,
	})

	_, err := fx.svc.CourseStatus(context.Background(), fx.course.ID, otherMentor.ID, models.RoleMentor)
	assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
}

func TestCourseStatusZeroChapters(t *testing.T) {
	fx := newProgressFixture(t, 0)

	status, err := fx.svc.CourseStatus(context.Background(), fx.course.ID, fx.student.ID, models.RoleStudent)
	require.NoError(t, err)

	assert.Empty(t, status.Chapters)
	assert.Equal(t, 0, status.Progress.TotalChapters)
	assert.Equal(t, 0, status.Progress.CompletionPercentage)
}

func TestMyProgress(t *testing.T) {
	fx := newProgressFixture(t, 3)
	fx.complete(t, fx.chapList[0].ID)
	fx.complete(t, fx.chapList[1].ID)

	entries, err := fx.svc.MyProgress(context.Background(), fx.student.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, fx.course.ID, entries[0].Course.ID)
	assert.Equal(t, 3, entries[0].TotalChapters)
	assert.Equal(t, 2, entries[0].CompletedChapters)
	assert.Equal(t, 67, entries[0].CompletionPercentage)
}

func TestCourseStudentsProgress(t *testing.T) {
	fx := newProgressFixture(t, 2)
	second := fx.users.add(&models.User{
		Email: "second@skillpath.io", FullName: "Second Student",
		RoleType: models.RoleStudent, IsActive: true,
	})
	fx.course.AssignedStudentIDs = append(fx.course.AssignedStudentIDs, second.ID)

	fx.complete(t, fx.chapList[0].ID)

	resp, err := fx.svc.CourseStudentsProgress(context.Background(), fx.course.ID, fx.mentor.ID, models.RoleMentor)
	require.NoError(t, err)
	require.Len(t, resp.Students, 2)

	assert.Equal(t, 2, resp.TotalChapters)
	assert.Equal(t, fx.student.ID, resp.Students[0].ID)
	assert.Equal(t, 1, resp.Students[0].CompletedChapters)
	assert.Equal(t, 50, resp.Students[0].CompletionPercentage)
	assert.Equal(t, second.ID, resp.Students[1].ID)
	assert.Equal(t, 0, resp.Students[1].CompletedChapters)
}

func TestCourseStudentsProgressDeniedForStudent(t *testing.T) {
	fx := newProgressFixture(t, 1)

	_, err := fx.svc.CourseStudentsProgress(context.Background(), fx.course.ID, fx.student.ID, models.RoleStudent)
	assert.Error(t, err)
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 6, 17},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, completionPercentage(tc.completed, tc.total),
			"completed=%d total=%d", tc.completed, tc.total)
	}
}
