package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/educenter-api/internal/dto"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
	"github.com/noah-isme/educenter-api/pkg/response"
)

type teacherMappingService interface {
	BuildTeacherMapping(ctx context.Context, branchID string) (*dto.TeacherMappingResponse, error)
	Lookup(ctx context.Context, req dto.TeacherLookupRequest) (*dto.TeacherLookupResponse, error)
}

// TeacherMappingHandler exposes the teacher lookups of a branch.
type TeacherMappingHandler struct {
	service teacherMappingService
}

// NewTeacherMappingHandler constructs TeacherMappingHandler.
func NewTeacherMappingHandler(service teacherMappingService) *TeacherMappingHandler {
	return &TeacherMappingHandler{service: service}
}

// Mapping godoc
// @Summary Teacher mapping of a branch
// @Tags Teachers
// @Produce json
// @Param branchId path string true "Branch ID"
// @Success 200 {object} response.Envelope
// @Router /branches/{branchId}/teachers [get]
func (h *TeacherMappingHandler) Mapping(c *gin.Context) {
	mapping, err := h.service.BuildTeacherMapping(c.Request.Context(), c.Param("branchId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, mapping)
}

// Lookup godoc
// @Summary Resolve teacher for a level or course
// @Tags Teachers
// @Produce json
// @Param branchId path string true "Branch ID"
// @Param level query string false "Level label"
// @Param course query string false "Course label"
// @Success 200 {object} response.Envelope
// @Router /branches/{branchId}/teachers/lookup [get]
func (h *TeacherMappingHandler) Lookup(c *gin.Context) {
	var req dto.TeacherLookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	req.BranchID = c.Param("branchId")
	result, err := h.service.Lookup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
