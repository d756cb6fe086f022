package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/middleware"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// CertificateController handles certificate issuance and verification
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new certificate controller
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// GetCertificate godoc
// @Summary Get own certificate for a course
// @Description Issues the certificate on first request after 100% completion; later requests return the same one
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CertificateResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{courseId} [get]
func (ctrl *CertificateController) GetCertificate(c *gin.Context) {
	courseID, err := parseIDParam(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	cert, err := ctrl.certificateService.IssueOrFetch(c, middleware.GetUserID(c), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, cert)
}

// VerifyCertificate godoc
// @Summary Verify a certificate by number
// @Description Public endpoint; no authentication required
// @Tags certificates
// @Produce json
// @Param certificateNumber path string true "Certificate number"
// @Success 200 {object} dto.APIResponse{data=dto.CertificateVerification}
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/verify/{certificateNumber} [get]
func (ctrl *CertificateController) VerifyCertificate(c *gin.Context) {
	number := c.Param("certificateNumber")
	if number == "" {
		middleware.HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrValidationFailed, "certificate number is required"))
		return
	}

	verification, err := ctrl.certificateService.Verify(c, number)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, verification)
}
