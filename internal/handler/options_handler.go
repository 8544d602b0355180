package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/educenter-api/internal/dto"
	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
	"github.com/noah-isme/educenter-api/pkg/response"
)

type availabilityService interface {
	ComputeAllowedOptions(ctx context.Context, sel models.StudentSelection) (*dto.AllowedOptionsResponse, error)
}

// OptionsHandler serves the registration option narrowing endpoint.
type OptionsHandler struct {
	service availabilityService
}

// NewOptionsHandler constructs OptionsHandler.
func NewOptionsHandler(service availabilityService) *OptionsHandler {
	return &OptionsHandler{service: service}
}

// Allowed godoc
// @Summary Allowed registration options
// @Description Narrows courses, levels and timings to the active classes of a branch.
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body models.StudentSelection true "Current selection"
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /branches/options [post]
func (h *OptionsHandler) Allowed(c *gin.Context) {
	var sel models.StudentSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	opts, err := h.service.ComputeAllowedOptions(c.Request.Context(), sel)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, opts, map[string]interface{}{"restricted": opts.Restricted})
}
