package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/educenter-api/internal/dto"
	"github.com/noah-isme/educenter-api/internal/matching"
	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

// AvailabilityService computes the options a student can still pick during registration.
type AvailabilityService struct {
	classes ClassSnapshotReader
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAvailabilityService constructs AvailabilityService.
func NewAvailabilityService(classes ClassSnapshotReader, metrics *MetricsService, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{classes: classes, metrics: metrics, logger: logger}
}

// ComputeAllowedOptions loads the branch snapshot and filters it by sel. Without a branch
// every active offering is returned unfiltered; a branch without eligible classes yields
// empty sets rather than an error.
func (s *AvailabilityService) ComputeAllowedOptions(ctx context.Context, sel models.StudentSelection) (*dto.AllowedOptionsResponse, error) {
	sel.BranchID = strings.TrimSpace(sel.BranchID)
	classes, err := loadSnapshot(ctx, s.classes, s.metrics, sel.BranchID)
	if err != nil {
		s.logger.Error("load class snapshot failed", zap.String("branch_id", sel.BranchID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrBranchOptionsUnavailable.Code, appErrors.ErrBranchOptionsUnavailable.Status, appErrors.ErrBranchOptionsUnavailable.Message)
	}

	opts := matching.ComputeAllowedOptions(classes, sel)
	if opts.Restricted && len(opts.Timings) == 0 {
		s.metrics.RecordEmptyAvailability()
		s.logger.Debug("no eligible classes", zap.String("branch_id", sel.BranchID),
			zap.Strings("levels", sel.SelectedLevels), zap.Strings("courses", sel.SelectedCourses))
	}

	return &dto.AllowedOptionsResponse{
		BranchID:       sel.BranchID,
		AllowedCourses: opts.Courses,
		AllowedLevels:  opts.Levels,
		AllowedTimings: opts.Timings,
		Restricted:     opts.Restricted,
		ClassCount:     len(matching.ActiveInBranch(classes, sel.BranchID)),
	}, nil
}
