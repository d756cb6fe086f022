package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

type certificateFixture struct {
	*progressFixture
	certs *fakeCertificateStore
	svc   *CertificateService
}

func newCertificateFixture(t *testing.T, chapterCount int) *certificateFixture {
	t.Helper()

	base := newProgressFixture(t, chapterCount)
	certs := newFakeCertificateStore()

	return &certificateFixture{
		progressFixture: base,
		certs:           certs,
		svc: NewCertificateService(
			certs, base.progress, base.chapters, base.courses, base.users),
	}
}

func (fx *certificateFixture) completeAll(t *testing.T) {
	t.Helper()
	for _, chapter := range fx.chapList {
		fx.complete(t, chapter.ID)
	}
}

func TestCertificateDeniedUntilComplete(t *testing.T) {
	fx := newCertificateFixture(t, 3)
	fx.complete(t, fx.chapList[0].ID)

	_, err := fx.svc.IssueOrFetch(context.Background(), fx.student.ID, fx.course.ID)
	require.ErrorIs(t, err, apperrors.ErrCertificateNotEarned)
	assert.Contains(t, err.Error(), "33%")
}

func TestCertificateDeniedWithoutChapters(t *testing.T) {
	fx := newCertificateFixture(t, 0)

	_, err := fx.svc.IssueOrFetch(context.Background(), fx.student.ID, fx.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseHasNoChapters)
}

func TestCertificateDeniedNotEnrolled(t *testing.T) {
	fx := newCertificateFixture(t, 1)
	outsider := fx.users.add(&models.User{
		Email: "other@skillpath.io", RoleType: models.RoleStudent, IsActive: true,
	})

	_, err := fx.svc.IssueOrFetch(context.Background(), outsider.ID, fx.course.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestCertificateIssuedOnce(t *testing.T) {
	fx := newCertificateFixture(t, 2)
	fx.completeAll(t)
	ctx := context.Background()

	first, err := fx.svc.IssueOrFetch(ctx, fx.student.ID, fx.course.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Certificate.CertificateNumber, "CERT-"))
	assert.Equal(t, "Sam Student", first.StudentName)
	assert.Equal(t, "Go Fundamentals", first.CourseTitle)
	assert.Equal(t, "Mia Mentor", first.MentorName)

	second, err := fx.svc.IssueOrFetch(ctx, fx.student.ID, fx.course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Certificate.CertificateNumber, second.Certificate.CertificateNumber)
	assert.Equal(t, first.Certificate.ID, second.Certificate.ID)

	all, _ := fx.certs.ListAll(ctx)
	assert.Len(t, all, 1)
}

func TestCertificateRaceReturnsWinner(t *testing.T) {
	fx := newCertificateFixture(t, 1)
	fx.completeAll(t)
	fx.certs.loseNextCreate = true

	resp, err := fx.svc.IssueOrFetch(context.Background(), fx.student.ID, fx.course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CERT-RACE-WINNER", resp.Certificate.CertificateNumber)
}

func TestVerifyCertificate(t *testing.T) {
	fx := newCertificateFixture(t, 1)
	fx.completeAll(t)
	ctx := context.Background()

	issued, err := fx.svc.IssueOrFetch(ctx, fx.student.ID, fx.course.ID)
	require.NoError(t, err)

	verification, err := fx.svc.Verify(ctx, issued.Certificate.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, verification.Valid)
	assert.Equal(t, issued.Certificate.CertificateNumber, verification.CertificateNumber)
	assert.Equal(t, "Sam Student", verification.StudentName)
	assert.Equal(t, "Go Fundamentals", verification.CourseTitle)
}

func TestVerifyUnknownCertificate(t *testing.T) {
	fx := newCertificateFixture(t, 1)

	_, err := fx.svc.Verify(context.Background(), "CERT-0-UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotFound)
}

func TestGenerateCertificateNumberShape(t *testing.T) {
	number := generateCertificateNumber()

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "CERT", parts[0])
	assert.Len(t, parts[2], 9)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}
