package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/educenter-api/internal/dto"
	"github.com/noah-isme/educenter-api/internal/matching"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

// TeacherMappingService answers which teacher runs a level or course in a branch.
type TeacherMappingService struct {
	classes   ClassSnapshotReader
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherMappingService constructs TeacherMappingService.
func NewTeacherMappingService(classes ClassSnapshotReader, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *TeacherMappingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherMappingService{classes: classes, metrics: metrics, validator: validate, logger: logger}
}

// BuildTeacherMapping builds the level and course lookups of a branch.
func (s *TeacherMappingService) BuildTeacherMapping(ctx context.Context, branchID string) (*dto.TeacherMappingResponse, error) {
	branchID = strings.TrimSpace(branchID)
	m, err := s.build(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return &dto.TeacherMappingResponse{
		BranchID:       branchID,
		LevelTeachers:  m.LevelTeachers(),
		CourseTeachers: m.CourseTeachers(),
		LevelTimings:   m.LevelTimings(),
		CourseTimings:  m.CourseTimings(),
	}, nil
}

// Lookup resolves the teacher and timings for the requested level and course.
func (s *TeacherMappingService) Lookup(ctx context.Context, req dto.TeacherLookupRequest) (*dto.TeacherLookupResponse, error) {
	req.BranchID = strings.TrimSpace(req.BranchID)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "branch is required")
	}
	m, err := s.build(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}

	resp := &dto.TeacherLookupResponse{}
	if level := strings.TrimSpace(req.Level); level != "" {
		resp.Level = level
		if teacher, ok := m.TeacherForLevel(level); ok {
			resp.LevelTeacher = &teacher
		}
		resp.LevelTimings = m.TimingsForLevel(level)
	}
	if course := strings.TrimSpace(req.Course); course != "" {
		resp.Course = course
		if teacher, ok := m.TeacherForCourse(course); ok {
			resp.CourseTeacher = &teacher
		}
		resp.CourseTimings = m.TimingsForCourse(course)
	}
	return resp, nil
}

func (s *TeacherMappingService) build(ctx context.Context, branchID string) (*matching.TeacherCourseMap, error) {
	if branchID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "branch is required")
	}
	classes, err := loadSnapshot(ctx, s.classes, s.metrics, branchID)
	if err != nil {
		s.logger.Error("load class snapshot failed", zap.String("branch_id", branchID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrBranchOptionsUnavailable.Code, appErrors.ErrBranchOptionsUnavailable.Status, appErrors.ErrBranchOptionsUnavailable.Message)
	}
	return matching.BuildTeacherMap(classes), nil
}
