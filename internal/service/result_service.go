package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/educenter-api/internal/dto"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

// ResultRepository abstracts persistence for auto-enrollment outcomes.
type ResultRepository interface {
	Get(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error)
	Save(ctx context.Context, result *dto.AutoEnrollmentResult, ttl time.Duration) error
}

// ResultService records the latest auto-enrollment outcome per student so the
// registration flow can surface the "needs review" warning after an async run.
type ResultService struct {
	repo    ResultRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	enabled bool
}

// NewResultService constructs a result service.
func NewResultService(repo ResultRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger, enabled bool) *ResultService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{repo: repo, metrics: metrics, ttl: ttl, logger: logger, enabled: enabled}
}

// Enabled indicates whether outcomes are stored.
func (s *ResultService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Record stores result. Failures are logged and never fail the enrollment itself.
func (s *ResultService) Record(ctx context.Context, result *dto.AutoEnrollmentResult) {
	if !s.Enabled() || result == nil {
		return
	}
	if err := s.repo.Save(ctx, result, s.ttl); err != nil {
		s.logger.Warn("store auto-enrollment result failed", zap.String("student_id", result.StudentID), zap.Error(err))
	}
}

// Latest returns the stored outcome for a student.
func (s *ResultService) Latest(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, "enrollment result store disabled")
	}
	result, err := s.repo.Get(ctx, studentID)
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			s.metrics.RecordCacheOperation(false)
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no auto-enrollment result recorded")
		}
		s.logger.Warn("load auto-enrollment result failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load auto-enrollment result")
	}
	s.metrics.RecordCacheOperation(true)
	return result, nil
}
