package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
)

// analyticsSnapshot builds a small platform: one mentor with two courses,
// two students. Sam finished the two-chapter course and holds a
// certificate, Ada is halfway through it. The second course has no
// chapters and went stale two months ago.
func analyticsSnapshot(now time.Time) *snapshot {
	admin := &models.User{ID: 1, Email: "admin@skillpath.io", FullName: "Platform Admin", RoleType: models.RoleAdmin, IsActive: true}
	sam := &models.User{ID: 2, Email: "sam@skillpath.io", FullName: "Sam Student", RoleType: models.RoleStudent, IsActive: true}
	ada := &models.User{ID: 3, Email: "ada@skillpath.io", FullName: "Ada Student", RoleType: models.RoleStudent, IsActive: true}
	mia := &models.User{ID: 4, Email: "mia@skillpath.io", FullName: "Mia Mentor", RoleType: models.RoleMentor, IsApproved: true, IsActive: true}

	course1 := &models.Course{
		ID: 1, Title: "Go Fundamentals", MentorID: mia.ID, IsActive: true,
		UpdatedAt: now.Add(-5 * 24 * time.Hour), AssignedStudentIDs: []int64{sam.ID, ada.ID},
	}
	course2 := &models.Course{
		ID: 2, Title: "Empty Draft", MentorID: mia.ID, IsActive: false,
		UpdatedAt: now.Add(-60 * 24 * time.Hour), AssignedStudentIDs: []int64{sam.ID},
	}

	chapter1 := &models.Chapter{ID: 1, CourseID: course1.ID, Title: "Basics", SequenceOrder: 1}
	chapter2 := &models.Chapter{ID: 2, CourseID: course1.ID, Title: "Structs", SequenceOrder: 2}

	return &snapshot{
		users:    []*models.User{admin, sam, ada, mia},
		courses:  []*models.Course{course1, course2},
		chapters: []*models.Chapter{chapter1, chapter2},
		progress: []*models.Progress{
			{ID: 1, StudentID: sam.ID, CourseID: course1.ID, ChapterID: chapter1.ID},
			{ID: 2, StudentID: sam.ID, CourseID: course1.ID, ChapterID: chapter2.ID},
			{ID: 3, StudentID: ada.ID, CourseID: course1.ID, ChapterID: chapter1.ID},
		},
		certificates: []*models.Certificate{
			{ID: 1, StudentID: sam.ID, CourseID: course1.ID, CertificateNumber: "CERT-1-ABC"},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	snap := analyticsSnapshot(time.Now())

	summary := buildSummary(snap)

	assert.Equal(t, 4, summary.TotalUsers)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.TotalMentors)
	assert.Equal(t, 2, summary.TotalCourses)
	assert.Equal(t, 2, summary.TotalChapters)
	assert.Equal(t, 3, summary.TotalChapterCompletions)

	// only Sam finished a course; the zero-chapter course never counts
	assert.Equal(t, 1, summary.TotalCourseCompletions)
}

func TestBuildStudentsProgress(t *testing.T) {
	snap := analyticsSnapshot(time.Now())

	report := buildStudentsProgress(snap, dto.StudentProgressFilter{})
	require.Equal(t, 2, report.Total)

	sam := report.Students[0]
	assert.Equal(t, "Sam Student", sam.FullName)
	require.Len(t, sam.Courses, 2)

	finished := sam.Courses[0]
	assert.Equal(t, 100, finished.CompletionPercentage)
	assert.Equal(t, "Issued", finished.CertificateStatus)
	require.NotNil(t, finished.CurrentChapter)
	assert.Equal(t, "Structs", finished.CurrentChapter.Title)
	assert.Equal(t, "Mia Mentor", finished.MentorName)

	empty := sam.Courses[1]
	assert.Equal(t, 0, empty.TotalChapters)
	assert.Equal(t, 0, empty.CompletionPercentage)
	assert.Nil(t, empty.CurrentChapter)
	assert.Equal(t, 50, sam.AvgCompletion)

	ada := report.Students[1]
	require.Len(t, ada.Courses, 1)
	assert.Equal(t, 50, ada.Courses[0].CompletionPercentage)
	assert.Equal(t, "Not Issued", ada.Courses[0].CertificateStatus)
	require.NotNil(t, ada.Courses[0].CurrentChapter)
	assert.Equal(t, "Structs", ada.Courses[0].CurrentChapter.Title)
}

func TestBuildStudentsProgressFilters(t *testing.T) {
	snap := analyticsSnapshot(time.Now())

	completed := buildStudentsProgress(snap, dto.StudentProgressFilter{ProgressStatus: "completed"})
	require.Equal(t, 1, completed.Total)
	assert.Equal(t, "Sam Student", completed.Students[0].FullName)

	inProgress := buildStudentsProgress(snap, dto.StudentProgressFilter{ProgressStatus: "in-progress"})
	require.Equal(t, 1, inProgress.Total)
	assert.Equal(t, "Ada Student", inProgress.Students[0].FullName)

	medium := buildStudentsProgress(snap, dto.StudentProgressFilter{CompletionLevel: "medium"})
	assert.Equal(t, 2, medium.Total)

	high := buildStudentsProgress(snap, dto.StudentProgressFilter{CompletionLevel: "high"})
	assert.Equal(t, 0, high.Total)

	byCourse := buildStudentsProgress(snap, dto.StudentProgressFilter{CourseID: 2})
	require.Equal(t, 1, byCourse.Total)
	assert.Equal(t, "Sam Student", byCourse.Students[0].FullName)
	require.Len(t, byCourse.Students[0].Courses, 1)
	assert.Equal(t, int64(2), byCourse.Students[0].Courses[0].CourseID)
}

func TestBuildMentorsActivity(t *testing.T) {
	now := time.Now()
	snap := analyticsSnapshot(now)

	report := buildMentorsActivity(snap, now)
	require.Equal(t, 1, report.Total)

	mia := report.Mentors[0]
	assert.Equal(t, "Mia Mentor", mia.FullName)
	assert.Equal(t, 2, mia.TotalCourses)
	assert.Equal(t, 1, mia.ActiveCourses)
	assert.Equal(t, 2, mia.TotalStudents)
	assert.Equal(t, "Active", mia.ActivityStatus)
	require.Len(t, mia.Courses, 2)

	fundamentals := mia.Courses[0]
	assert.Equal(t, 2, fundamentals.TotalChapters)
	assert.Equal(t, 2, fundamentals.EnrolledStudents)
	assert.Equal(t, 2, fundamentals.ActiveStudents)
	// Sam 2/2, Ada 1/2: 3 completions over 4 possible
	assert.Equal(t, 75, fundamentals.AvgCompletion)

	draft := mia.Courses[1]
	assert.Equal(t, 0, draft.TotalChapters)
	assert.Equal(t, 1, draft.EnrolledStudents)
	assert.Equal(t, 0, draft.ActiveStudents)
	assert.Equal(t, 0, draft.AvgCompletion)
}

func TestBuildMentorsActivityStale(t *testing.T) {
	now := time.Now()
	snap := analyticsSnapshot(now)

	// viewed far in the future, both courses fall outside the window
	report := buildMentorsActivity(snap, now.Add(100*24*time.Hour))
	require.Equal(t, 1, report.Total)
	assert.Equal(t, "Inactive", report.Mentors[0].ActivityStatus)
}
