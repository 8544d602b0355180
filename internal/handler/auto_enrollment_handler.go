package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/educenter-api/internal/dto"
	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
	"github.com/noah-isme/educenter-api/pkg/response"
)

type autoEnrollmentService interface {
	AutoEnroll(ctx context.Context, profile models.StudentProfile) (*dto.AutoEnrollmentResult, error)
	AutoEnrollStudent(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error)
	Enqueue(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error)
	EnrolledClassIDs(ctx context.Context, studentID string) ([]string, error)
}

type enrollmentResultReader interface {
	Latest(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error)
}

// AutoEnrollmentHandler exposes auto-enrollment of registered students.
type AutoEnrollmentHandler struct {
	service autoEnrollmentService
	results enrollmentResultReader
}

// NewAutoEnrollmentHandler constructs AutoEnrollmentHandler.
func NewAutoEnrollmentHandler(service autoEnrollmentService, results enrollmentResultReader) *AutoEnrollmentHandler {
	return &AutoEnrollmentHandler{service: service, results: results}
}

// Enroll godoc
// @Summary Auto-enroll a student profile
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param payload body models.StudentProfile true "Registered student profile"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /auto-enrollments [post]
func (h *AutoEnrollmentHandler) Enroll(c *gin.Context) {
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.AutoEnroll(c.Request.Context(), profile)
	if err != nil {
		h.fail(c, err, result)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// EnrollStudent godoc
// @Summary Auto-enroll a stored student
// @Tags Enrollment
// @Produce json
// @Param id path string true "Student ID"
// @Param async query bool false "Run in the background"
// @Success 200 {object} response.Envelope
// @Success 202 {object} response.Envelope
// @Router /students/{id}/auto-enroll [post]
func (h *AutoEnrollmentHandler) EnrollStudent(c *gin.Context) {
	studentID := c.Param("id")
	if async, _ := strconv.ParseBool(c.Query("async")); async {
		result, err := h.service.Enqueue(c.Request.Context(), studentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Accepted(c, result)
		return
	}
	result, err := h.service.AutoEnrollStudent(c.Request.Context(), studentID)
	if err != nil {
		h.fail(c, err, result)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Result godoc
// @Summary Latest auto-enrollment outcome
// @Tags Enrollment
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/auto-enroll/result [get]
func (h *AutoEnrollmentHandler) Result(c *gin.Context) {
	result, err := h.results.Latest(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Enrollments godoc
// @Summary Classes a student is enrolled in
// @Tags Enrollment
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/enrollments [get]
func (h *AutoEnrollmentHandler) Enrollments(c *gin.Context) {
	studentID := c.Param("id")
	ids, err := h.service.EnrolledClassIDs(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StudentEnrollmentsResponse{StudentID: studentID, ClassIDs: ids})
}

func (h *AutoEnrollmentHandler) fail(c *gin.Context, err error, partial *dto.AutoEnrollmentResult) {
	if partial != nil {
		response.Error(c, err, partial)
		return
	}
	response.Error(c, err)
}
