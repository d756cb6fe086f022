package dto

import (
	"time"
)

// PlatformSummary is the admin dashboard headline counters. A course
// completion is a (student, course) pair whose completed-chapter count has
// reached the course's total; courses without chapters never count.
type PlatformSummary struct {
	TotalUsers              int `json:"totalUsers"`
	TotalStudents           int `json:"totalStudents"`
	TotalMentors            int `json:"totalMentors"`
	TotalCourses            int `json:"totalCourses"`
	TotalChapters           int `json:"totalChapters"`
	TotalChapterCompletions int `json:"totalChapterCompletions"`
	TotalCourseCompletions  int `json:"totalCompletions"`
}

// StudentProgressFilter narrows the per-student progress report.
// ProgressStatus buckets: not-started (0%), in-progress (0%<x<100%),
// completed (100%) — a student matches when any assigned course does.
// CompletionLevel buckets on the student's average: high >=70,
// medium 30..69, low <30.
type StudentProgressFilter struct {
	CourseID        int64
	ProgressStatus  string
	CompletionLevel string
}

// ChapterRef is a light chapter reference used in analytics entries
type ChapterRef struct {
	Title         string `json:"title"`
	SequenceOrder int    `json:"sequenceOrder"`
}

// StudentCourseEntry is one assigned course within a student report
type StudentCourseEntry struct {
	CourseID             int64       `json:"courseId"`
	CourseTitle          string      `json:"courseTitle"`
	MentorName           string      `json:"mentorName"`
	TotalChapters        int         `json:"totalChapters"`
	CompletedChapters    int         `json:"completedChapters"`
	CompletionPercentage int         `json:"completionPercentage"`
	CurrentChapter       *ChapterRef `json:"currentChapter"`
	CertificateStatus    string      `json:"certificateStatus"`
}

// StudentProgressReport is one student row in the admin progress report
type StudentProgressReport struct {
	ID            int64                `json:"id"`
	FullName      string               `json:"fullName"`
	Email         string               `json:"email"`
	SignupDate    time.Time            `json:"signupDate"`
	AccountStatus string               `json:"accountStatus"`
	Courses       []StudentCourseEntry `json:"courses"`
	TotalCourses  int                  `json:"totalCourses"`
	AvgCompletion int                  `json:"avgCompletion"`
}

// StudentsProgressResponse wraps the filtered student report
type StudentsProgressResponse struct {
	Students []StudentProgressReport `json:"students"`
	Total    int                     `json:"total"`
}

// MentorCourseStats is one course row within a mentor activity report
type MentorCourseStats struct {
	CourseID         int64     `json:"courseId"`
	CourseTitle      string    `json:"courseTitle"`
	CreatedAt        time.Time `json:"createdAt"`
	IsActive         bool      `json:"isActive"`
	TotalChapters    int       `json:"totalChapters"`
	EnrolledStudents int       `json:"enrolledStudents"`
	ActiveStudents   int       `json:"activeStudents"`
	AvgCompletion    int       `json:"avgCompletion"`
}

// MentorActivityReport is one mentor row in the admin activity report
type MentorActivityReport struct {
	ID             int64               `json:"id"`
	FullName       string              `json:"fullName"`
	Email          string              `json:"email"`
	IsApproved     bool                `json:"isApproved"`
	IsActive       bool                `json:"isActive"`
	SignupDate     time.Time           `json:"signupDate"`
	ActivityStatus string              `json:"activityStatus"`
	TotalCourses   int                 `json:"totalCourses"`
	ActiveCourses  int                 `json:"activeCourses"`
	TotalStudents  int                 `json:"totalStudents"`
	Courses        []MentorCourseStats `json:"courses"`
}

// MentorsActivityResponse wraps the mentor activity report
type MentorsActivityResponse struct {
	Mentors []MentorActivityReport `json:"mentors"`
	Total   int                    `json:"total"`
}
