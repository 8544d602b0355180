package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/educenter-api/internal/dto"
	"github.com/noah-isme/educenter-api/internal/matching"
	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
	"github.com/noah-isme/educenter-api/pkg/jobs"
)

// JobTypeAutoEnroll identifies queued auto-enrollment runs.
const JobTypeAutoEnroll = "auto_enroll"

type profileReader interface {
	FindProfileByID(ctx context.Context, id string) (*models.StudentProfile, error)
}

type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListClassIDsByStudent(ctx context.Context, studentID string) ([]string, error)
}

type jobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// AutoEnrollmentService enrolls a newly registered student into every eligible class.
type AutoEnrollmentService struct {
	classes     ClassSnapshotReader
	students    profileReader
	enrollments enrollmentStore
	results     *ResultService
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	queue       jobEnqueuer
	inflight    singleflight.Group
	now         func() time.Time
}

// NewAutoEnrollmentService constructs AutoEnrollmentService.
func NewAutoEnrollmentService(classes ClassSnapshotReader, students profileReader, enrollments enrollmentStore, results *ResultService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *AutoEnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoEnrollmentService{
		classes:     classes,
		students:    students,
		enrollments: enrollments,
		results:     results,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SetQueue attaches the background queue used by Enqueue.
func (s *AutoEnrollmentService) SetQueue(q jobEnqueuer) {
	s.queue = q
}

// AutoEnrollStudent loads the student's profile and enrolls them.
func (s *AutoEnrollmentService) AutoEnrollStudent(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student id is required")
	}
	profile, err := s.students.FindProfileByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		s.logger.Error("load student profile failed", zap.String("student_id", studentID), zap.Error(err))
		s.recordFailure(ctx, studentID)
		return nil, appErrors.Wrap(err, appErrors.ErrEnrollmentReview.Code, appErrors.ErrEnrollmentReview.Status, appErrors.ErrEnrollmentReview.Message)
	}
	return s.AutoEnroll(ctx, *profile)
}

// AutoEnroll matches profile against the active classes of its branch and inserts one
// enrollment per eligible class. Prior enrollments count as success, so re-running is
// safe. A read failure enrolls nothing; any other write failure stops the run and the
// partial result is returned together with the error.
func (s *AutoEnrollmentService) AutoEnroll(ctx context.Context, profile models.StudentProfile) (*dto.AutoEnrollmentResult, error) {
	profile.ID = strings.TrimSpace(profile.ID)
	if err := s.validator.Struct(profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student profile")
	}

	v, err, shared := s.inflight.Do(flightKey(matching.NewCriteria(profile)), func() (interface{}, error) {
		return s.run(ctx, profile)
	})
	if shared {
		s.logger.Debug("auto-enrollment shared with concurrent call", zap.String("student_id", profile.ID))
	}
	result, _ := v.(*dto.AutoEnrollmentResult)
	return result, err
}

// flightKey identifies a run by student and resolved criteria, so only identical submissions
// share one result.
func flightKey(cr matching.Criteria) string {
	const sep = "\x1f"
	return strings.Join([]string{
		cr.StudentID,
		cr.BranchID,
		strings.Join(cr.Courses, sep),
		strings.Join(cr.Levels, sep),
		strconv.FormatBool(cr.HasTiming),
		cr.Timing,
	}, "\x1e")
}

func (s *AutoEnrollmentService) run(ctx context.Context, profile models.StudentProfile) (*dto.AutoEnrollmentResult, error) {
	criteria := matching.NewCriteria(profile)
	log := s.logger.With(zap.String("student_id", criteria.StudentID), zap.String("branch_id", criteria.BranchID))

	classes, err := loadSnapshot(ctx, s.classes, s.metrics, criteria.BranchID)
	if err != nil {
		log.Error("load class snapshot failed", zap.Error(err))
		s.recordFailure(ctx, criteria.StudentID)
		return nil, appErrors.Wrap(err, appErrors.ErrEnrollmentReview.Code, appErrors.ErrEnrollmentReview.Status, appErrors.ErrEnrollmentReview.Message)
	}

	eligible := matching.SelectEligible(criteria, classes)
	if len(criteria.UnmatchedLevels) > 0 {
		log.Info("levels without level key", zap.Strings("levels", criteria.UnmatchedLevels))
	}

	result := &dto.AutoEnrollmentResult{
		StudentID:         criteria.StudentID,
		Status:            dto.AutoEnrollmentCompleted,
		EnrolledCount:     len(eligible.ClassIDs),
		ClassIDs:          eligible.ClassIDs,
		EarliestStartDate: eligible.EarliestStartDate,
		NewlyEnrolled:     []string{},
		AlreadyEnrolled:   []string{},
		UnmatchedLevels:   criteria.UnmatchedLevels,
	}

	for _, classID := range eligible.ClassIDs {
		err := s.enrollments.Create(ctx, &models.Enrollment{StudentID: criteria.StudentID, ClassID: classID, JoinedAt: s.now()})
		switch {
		case err == nil:
			result.NewlyEnrolled = append(result.NewlyEnrolled, classID)
		case errors.Is(err, appErrors.ErrAlreadyEnrolled):
			result.AlreadyEnrolled = append(result.AlreadyEnrolled, classID)
		default:
			log.Error("create enrollment failed", zap.String("class_id", classID), zap.Error(err))
			result.Status = dto.AutoEnrollmentReviewRequired
			result.FailedClassID = classID
			result.Message = appErrors.ErrEnrollmentReview.Message
			s.finish(ctx, result)
			return result, appErrors.Wrap(fmt.Errorf("enroll class %s: %w", classID, err), appErrors.ErrEnrollmentReview.Code, appErrors.ErrEnrollmentReview.Status, appErrors.ErrEnrollmentReview.Message)
		}
	}

	log.Info("auto-enrollment completed",
		zap.Int("eligible", result.EnrolledCount),
		zap.Int("created", len(result.NewlyEnrolled)),
		zap.Int("already_enrolled", len(result.AlreadyEnrolled)))
	s.finish(ctx, result)
	return result, nil
}

// EnrolledClassIDs lists the classes a student is enrolled in, oldest first.
func (s *AutoEnrollmentService) EnrolledClassIDs(ctx context.Context, studentID string) ([]string, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student id is required")
	}
	ids, err := s.enrollments.ListClassIDsByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("list enrollments failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Enqueue schedules a background run for a student and records it as queued.
func (s *AutoEnrollmentService) Enqueue(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student id is required")
	}
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, "auto-enrollment queue unavailable")
	}
	if err := s.queue.Enqueue(jobs.Job{Type: JobTypeAutoEnroll, Payload: studentID}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "failed to queue auto-enrollment")
	}
	result := &dto.AutoEnrollmentResult{
		StudentID:       studentID,
		Status:          dto.AutoEnrollmentQueued,
		ClassIDs:        []string{},
		NewlyEnrolled:   []string{},
		AlreadyEnrolled: []string{},
		UpdatedAt:       s.now(),
	}
	s.results.Record(ctx, result)
	return result, nil
}

// HandleJob runs a queued auto-enrollment. Returning an error makes the queue retry the
// whole run.
func (s *AutoEnrollmentService) HandleJob(ctx context.Context, job jobs.Job) error {
	studentID, ok := job.Payload.(string)
	if !ok || studentID == "" {
		s.logger.Warn("discarding malformed auto-enrollment job", zap.String("job_id", job.ID))
		return nil
	}
	_, err := s.AutoEnrollStudent(ctx, studentID)
	if err != nil && errors.Is(err, appErrors.ErrNotFound) {
		s.logger.Warn("auto-enrollment job for unknown student", zap.String("student_id", studentID))
		return nil
	}
	return err
}

func (s *AutoEnrollmentService) finish(ctx context.Context, result *dto.AutoEnrollmentResult) {
	result.UpdatedAt = s.now()
	s.metrics.RecordAutoEnrollment(string(result.Status), len(result.NewlyEnrolled), len(result.AlreadyEnrolled))
	s.results.Record(ctx, result)
}

func (s *AutoEnrollmentService) recordFailure(ctx context.Context, studentID string) {
	result := &dto.AutoEnrollmentResult{
		StudentID:       studentID,
		Status:          dto.AutoEnrollmentReviewRequired,
		ClassIDs:        []string{},
		NewlyEnrolled:   []string{},
		AlreadyEnrolled: []string{},
		Message:         appErrors.ErrEnrollmentReview.Message,
	}
	s.finish(ctx, result)
}
