package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
)

// mentorActivityWindow is how far back a course update counts as activity
const mentorActivityWindow = 30 * 24 * time.Hour

// AnalyticsService builds the admin reports. Each report loads a snapshot
// of the relevant tables once and aggregates in memory, so a report is
// internally consistent even while writes continue.
type AnalyticsService struct {
	users        UserStore
	courses      CourseStore
	chapters     ChapterStore
	progress     ProgressStore
	certificates CertificateStore
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(users UserStore, courses CourseStore, chapters ChapterStore, progress ProgressStore, certificates CertificateStore) *AnalyticsService {
	return &AnalyticsService{
		users:        users,
		courses:      courses,
		chapters:     chapters,
		progress:     progress,
		certificates: certificates,
	}
}

// snapshot is a point-in-time copy of everything the reports aggregate over
type snapshot struct {
	users        []*models.User
	courses      []*models.Course
	chapters     []*models.Chapter
	progress     []*models.Progress
	certificates []*models.Certificate
}

type studentCourse struct {
	studentID int64
	courseID  int64
}

func (s *AnalyticsService) load(ctx context.Context) (*snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	chapters, err := s.chapters.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	certificates, err := s.certificates.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		users:        users,
		courses:      courses,
		chapters:     chapters,
		progress:     progress,
		certificates: certificates,
	}, nil
}

// chaptersByCourse groups chapters per course, ordered by sequence
func (snap *snapshot) chaptersByCourse() map[int64][]*models.Chapter {
	grouped := make(map[int64][]*models.Chapter)
	for _, chapter := range snap.chapters {
		grouped[chapter.CourseID] = append(grouped[chapter.CourseID], chapter)
	}
	for _, chapters := range grouped {
		sort.Slice(chapters, func(i, j int) bool {
			return chapters[i].SequenceOrder < chapters[j].SequenceOrder
		})
	}
	return grouped
}

// completedChapters maps (student, course) to the set of completed chapters
func (snap *snapshot) completedChapters() map[studentCourse]map[int64]bool {
	completed := make(map[studentCourse]map[int64]bool)
	for _, record := range snap.progress {
		key := studentCourse{record.StudentID, record.CourseID}
		if completed[key] == nil {
			completed[key] = make(map[int64]bool)
		}
		completed[key][record.ChapterID] = true
	}
	return completed
}

func (snap *snapshot) usersByID() map[int64]*models.User {
	byID := make(map[int64]*models.User, len(snap.users))
	for _, user := range snap.users {
		byID[user.ID] = user
	}
	return byID
}

func (snap *snapshot) certificatesByPair() map[studentCourse]*models.Certificate {
	byPair := make(map[studentCourse]*models.Certificate, len(snap.certificates))
	for _, cert := range snap.certificates {
		byPair[studentCourse{cert.StudentID, cert.CourseID}] = cert
	}
	return byPair
}

// Summary returns the platform headline counters
func (s *AnalyticsService) Summary(ctx context.Context) (*dto.PlatformSummary, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return buildSummary(snap), nil
}

// StudentsProgress returns the per-student progress report, filtered
func (s *AnalyticsService) StudentsProgress(ctx context.Context, filter dto.StudentProgressFilter) (*dto.StudentsProgressResponse, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return buildStudentsProgress(snap, filter), nil
}

// MentorsActivity returns the per-mentor activity report
func (s *AnalyticsService) MentorsActivity(ctx context.Context) (*dto.MentorsActivityResponse, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return buildMentorsActivity(snap, time.Now()), nil
}

func buildSummary(snap *snapshot) *dto.PlatformSummary {
	summary := &dto.PlatformSummary{
		TotalUsers:              len(snap.users),
		TotalCourses:            len(snap.courses),
		TotalChapters:           len(snap.chapters),
		TotalChapterCompletions: len(snap.progress),
	}

	for _, user := range snap.users {
		switch user.RoleType {
		case models.RoleStudent:
			summary.TotalStudents++
		case models.RoleMentor:
			summary.TotalMentors++
		}
	}

	chapters := snap.chaptersByCourse()
	completed := snap.completedChapters()
	for pair, set := range completed {
		total := len(chapters[pair.courseID])
		if total > 0 && len(set) >= total {
			summary.TotalCourseCompletions++
		}
	}

	return summary
}

func buildStudentsProgress(snap *snapshot, filter dto.StudentProgressFilter) *dto.StudentsProgressResponse {
	chapters := snap.chaptersByCourse()
	completed := snap.completedChapters()
	mentors := snap.usersByID()
	certificates := snap.certificatesByPair()

	students := make([]dto.StudentProgressReport, 0)
	for _, user := range snap.users {
		if user.RoleType != models.RoleStudent {
			continue
		}

		entries := make([]dto.StudentCourseEntry, 0)
		for _, course := range snap.courses {
			if !course.HasStudent(user.ID) {
				continue
			}
			if filter.CourseID != 0 && course.ID != filter.CourseID {
				continue
			}
			entries = append(entries, buildCourseEntry(user.ID, course, chapters[course.ID], completed, mentors, certificates))
		}

		if filter.CourseID != 0 && len(entries) == 0 {
			continue
		}

		report := dto.StudentProgressReport{
			ID:            user.ID,
			FullName:      user.FullName,
			Email:         user.Email,
			SignupDate:    user.CreatedAt,
			AccountStatus: accountStatus(user.IsActive),
			Courses:       entries,
			TotalCourses:  len(entries),
			AvgCompletion: averageCompletion(entries),
		}

		if !matchesProgressStatus(report, filter.ProgressStatus) {
			continue
		}
		if !matchesCompletionLevel(report.AvgCompletion, filter.CompletionLevel) {
			continue
		}

		students = append(students, report)
	}

	return &dto.StudentsProgressResponse{
		Students: students,
		Total:    len(students),
	}
}

func buildCourseEntry(studentID int64, course *models.Course, chapters []*models.Chapter, completed map[studentCourse]map[int64]bool, users map[int64]*models.User, certificates map[studentCourse]*models.Certificate) dto.StudentCourseEntry {
	pair := studentCourse{studentID, course.ID}
	done := completed[pair]

	entry := dto.StudentCourseEntry{
		CourseID:             course.ID,
		CourseTitle:          course.Title,
		TotalChapters:        len(chapters),
		CompletedChapters:    len(done),
		CompletionPercentage: completionPercentage(len(done), len(chapters)),
		CertificateStatus:    "Not Issued",
	}

	if mentor, ok := users[course.MentorID]; ok {
		entry.MentorName = mentor.FullName
	}
	if _, ok := certificates[pair]; ok {
		entry.CertificateStatus = "Issued"
	}

	// currentChapter is the first incomplete chapter, or the last one once
	// everything is done
	for _, chapter := range chapters {
		if !done[chapter.ID] {
			entry.CurrentChapter = &dto.ChapterRef{Title: chapter.Title, SequenceOrder: chapter.SequenceOrder}
			break
		}
	}
	if entry.CurrentChapter == nil && len(chapters) > 0 {
		last := chapters[len(chapters)-1]
		entry.CurrentChapter = &dto.ChapterRef{Title: last.Title, SequenceOrder: last.SequenceOrder}
	}

	return entry
}

func buildMentorsActivity(snap *snapshot, now time.Time) *dto.MentorsActivityResponse {
	chapters := snap.chaptersByCourse()
	completed := snap.completedChapters()

	mentors := make([]dto.MentorActivityReport, 0)
	for _, user := range snap.users {
		if user.RoleType != models.RoleMentor {
			continue
		}

		report := dto.MentorActivityReport{
			ID:             user.ID,
			FullName:       user.FullName,
			Email:          user.Email,
			IsApproved:     user.IsApproved,
			IsActive:       user.IsActive,
			SignupDate:     user.CreatedAt,
			ActivityStatus: "Inactive",
			Courses:        make([]dto.MentorCourseStats, 0),
		}

		enrolledAnywhere := make(map[int64]bool)
		for _, course := range snap.courses {
			if course.MentorID != user.ID {
				continue
			}

			report.TotalCourses++
			if course.IsActive {
				report.ActiveCourses++
			}
			if now.Sub(course.UpdatedAt) <= mentorActivityWindow {
				report.ActivityStatus = "Active"
			}

			stats := buildMentorCourseStats(course, chapters[course.ID], completed)
			report.Courses = append(report.Courses, stats)

			for _, studentID := range course.AssignedStudentIDs {
				enrolledAnywhere[studentID] = true
			}
		}
		report.TotalStudents = len(enrolledAnywhere)

		mentors = append(mentors, report)
	}

	return &dto.MentorsActivityResponse{
		Mentors: mentors,
		Total:   len(mentors),
	}
}

func buildMentorCourseStats(course *models.Course, chapters []*models.Chapter, completed map[studentCourse]map[int64]bool) dto.MentorCourseStats {
	stats := dto.MentorCourseStats{
		CourseID:         course.ID,
		CourseTitle:      course.Title,
		CreatedAt:        course.CreatedAt,
		IsActive:         course.IsActive,
		TotalChapters:    len(chapters),
		EnrolledStudents: len(course.AssignedStudentIDs),
	}

	totalCompleted := 0
	for _, studentID := range course.AssignedStudentIDs {
		done := completed[studentCourse{studentID, course.ID}]
		if len(done) > 0 {
			stats.ActiveStudents++
		}
		totalCompleted += len(done)
	}

	if stats.EnrolledStudents > 0 && stats.TotalChapters > 0 {
		stats.AvgCompletion = int(math.Round(
			100 * float64(totalCompleted) / float64(stats.EnrolledStudents*stats.TotalChapters)))
	}

	return stats
}

func accountStatus(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func averageCompletion(entries []dto.StudentCourseEntry) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range entries {
		sum += entry.CompletionPercentage
	}
	return int(math.Round(float64(sum) / float64(len(entries))))
}

func matchesProgressStatus(report dto.StudentProgressReport, status string) bool {
	if status == "" {
		return true
	}
	for _, entry := range report.Courses {
		switch status {
		case "not-started":
			if entry.CompletionPercentage == 0 {
				return true
			}
		case "in-progress":
			if entry.CompletionPercentage > 0 && entry.CompletionPercentage < 100 {
				return true
			}
		case "completed":
			if entry.CompletionPercentage == 100 {
				return true
			}
		}
	}
	return false
}

func matchesCompletionLevel(avg int, level string) bool {
	switch level {
	case "":
		return true
	case "high":
		return avg >= 70
	case "medium":
		return avg >= 30 && avg < 70
	case "low":
		return avg < 30
	}
	return true
}
