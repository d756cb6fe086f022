package services

import (
	"context"
	"sort"
	"time"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// In-memory stores mirroring the behavior of the pgx repositories,
// including the unique-constraint denials.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	} else if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.add(user)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExistsExcept(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserStore) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	all, _ := f.List(ctx)
	out := make([]*models.User, 0)
	for _, u := range all {
		if u.RoleType == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) SetApproval(_ context.Context, id int64, approved bool) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsApproved = approved
	return nil
}

func (f *fakeUserStore) SetActive(_ context.Context, id int64, active bool) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) CountActiveStudents(_ context.Context, ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		if u, ok := f.users[id]; ok && u.RoleType == models.RoleStudent && u.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseStore) add(course *models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = f.nextID
		f.nextID++
	} else if course.ID >= f.nextID {
		f.nextID = course.ID + 1
	}
	if course.AssignedStudentIDs == nil {
		course.AssignedStudentIDs = []int64{}
	}
	f.courses[course.ID] = course
	return course
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	f.add(course)
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) ListByMentor(_ context.Context, mentorID int64) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range f.sorted() {
		if c.MentorID == mentorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range f.sorted() {
		if c.HasStudent(studentID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListAll(_ context.Context) ([]*models.Course, error) {
	return f.sorted(), nil
}

func (f *fakeCourseStore) sorted() []*models.Course {
	out := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	course.UpdatedAt = time.Now()
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) SetActive(_ context.Context, id int64, active bool) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.IsActive = active
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	course, ok := f.courses[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, id := range studentIDs {
		if !course.HasStudent(id) {
			course.AssignedStudentIDs = append(course.AssignedStudentIDs, id)
		}
	}
	return nil
}

func (f *fakeCourseStore) ReplaceStudents(_ context.Context, courseID int64, studentIDs []int64) error {
	course, ok := f.courses[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.AssignedStudentIDs = append([]int64{}, studentIDs...)
	return nil
}

type fakeChapterStore struct {
	chapters map[int64]*models.Chapter
	nextID   int64
}

func newFakeChapterStore() *fakeChapterStore {
	return &fakeChapterStore{chapters: make(map[int64]*models.Chapter), nextID: 1}
}

func (f *fakeChapterStore) Create(_ context.Context, chapter *models.Chapter) error {
	for _, c := range f.chapters {
		if c.CourseID == chapter.CourseID && c.SequenceOrder == chapter.SequenceOrder {
			return apperrors.ErrSequenceOrderTaken
		}
	}
	chapter.ID = f.nextID
	f.nextID++
	chapter.CreatedAt = time.Now()
	f.chapters[chapter.ID] = chapter
	return nil
}

func (f *fakeChapterStore) GetByID(_ context.Context, id int64) (*models.Chapter, error) {
	chapter, ok := f.chapters[id]
	if !ok {
		return nil, apperrors.ErrChapterNotFound
	}
	return chapter, nil
}

func (f *fakeChapterStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Chapter, error) {
	out := make([]*models.Chapter, 0)
	for _, c := range f.chapters {
		if c.CourseID == courseID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceOrder < out[j].SequenceOrder })
	return out, nil
}

func (f *fakeChapterStore) ListAll(_ context.Context) ([]*models.Chapter, error) {
	out := make([]*models.Chapter, 0, len(f.chapters))
	for _, c := range f.chapters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeChapterStore) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	chapters, _ := f.ListByCourse(ctx, courseID)
	return len(chapters), nil
}

func (f *fakeChapterStore) Update(_ context.Context, chapter *models.Chapter) error {
	if _, ok := f.chapters[chapter.ID]; !ok {
		return apperrors.ErrChapterNotFound
	}
	for _, c := range f.chapters {
		if c.ID != chapter.ID && c.CourseID == chapter.CourseID && c.SequenceOrder == chapter.SequenceOrder {
			return apperrors.ErrSequenceOrderTaken
		}
	}
	f.chapters[chapter.ID] = chapter
	return nil
}

func (f *fakeChapterStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.chapters[id]; !ok {
		return apperrors.ErrChapterNotFound
	}
	delete(f.chapters, id)
	return nil
}

type fakeProgressStore struct {
	records []*models.Progress
	nextID  int64
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{nextID: 1}
}

func (f *fakeProgressStore) Create(_ context.Context, progress *models.Progress) error {
	for _, r := range f.records {
		if r.StudentID == progress.StudentID && r.ChapterID == progress.ChapterID {
			return apperrors.ErrChapterAlreadyCompleted
		}
	}
	progress.ID = f.nextID
	f.nextID++
	progress.CompletedAt = time.Now()
	f.records = append(f.records, progress)
	return nil
}

func (f *fakeProgressStore) Exists(_ context.Context, studentID, chapterID int64) (bool, error) {
	for _, r := range f.records {
		if r.StudentID == studentID && r.ChapterID == chapterID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProgressStore) CountByStudentCourse(ctx context.Context, studentID, courseID int64) (int, error) {
	records, _ := f.ListByStudentCourse(ctx, studentID, courseID)
	return len(records), nil
}

func (f *fakeProgressStore) ListByStudentCourse(_ context.Context, studentID, courseID int64) ([]*models.Progress, error) {
	out := make([]*models.Progress, 0)
	for _, r := range f.records {
		if r.StudentID == studentID && r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Progress, error) {
	out := make([]*models.Progress, 0)
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Progress, error) {
	out := make([]*models.Progress, 0)
	for _, r := range f.records {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) ListAll(_ context.Context) ([]*models.Progress, error) {
	return append([]*models.Progress{}, f.records...), nil
}

type fakeCertificateStore struct {
	certs  []*models.Certificate
	nextID int64

	// when set, the next Create fails as if another writer won the race
	loseNextCreate bool
}

func newFakeCertificateStore() *fakeCertificateStore {
	return &fakeCertificateStore{nextID: 1}
}

func (f *fakeCertificateStore) Create(_ context.Context, cert *models.Certificate) error {
	if f.loseNextCreate {
		f.loseNextCreate = false
		winner := &models.Certificate{
			ID:                f.nextID,
			StudentID:         cert.StudentID,
			CourseID:          cert.CourseID,
			CertificateNumber: "CERT-RACE-WINNER",
			IssuedAt:          time.Now(),
		}
		f.nextID++
		f.certs = append(f.certs, winner)
		return apperrors.ErrResourceAlreadyExists
	}
	for _, c := range f.certs {
		if c.StudentID == cert.StudentID && c.CourseID == cert.CourseID {
			return apperrors.ErrResourceAlreadyExists
		}
	}
	cert.ID = f.nextID
	f.nextID++
	cert.IssuedAt = time.Now()
	f.certs = append(f.certs, cert)
	return nil
}

func (f *fakeCertificateStore) GetByStudentCourse(_ context.Context, studentID, courseID int64) (*models.Certificate, error) {
	for _, c := range f.certs {
		if c.StudentID == studentID && c.CourseID == courseID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (f *fakeCertificateStore) GetByNumber(_ context.Context, number string) (*models.Certificate, error) {
	for _, c := range f.certs {
		if c.CertificateNumber == number {
			return c, nil
		}
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (f *fakeCertificateStore) ListAll(_ context.Context) ([]*models.Certificate, error) {
	return append([]*models.Certificate{}, f.certs...), nil
}
