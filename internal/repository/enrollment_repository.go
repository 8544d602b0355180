package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

const uniqueViolation = pq.ErrorCode("23505")

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create persists a new enrollment. A second insert for the same student and class fails
// with appErrors.ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	if enrollment.JoinedAt.IsZero() {
		enrollment.JoinedAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (id, student_id, class_id, joined_at)
        VALUES (:id, :student_id, :class_id, :joined_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Wrap(err, appErrors.ErrAlreadyEnrolled.Code, appErrors.ErrAlreadyEnrolled.Status, appErrors.ErrAlreadyEnrolled.Message)
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListClassIDsByStudent returns the classes a student is enrolled in.
func (r *EnrollmentRepository) ListClassIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	const query = `SELECT class_id FROM enrollments WHERE student_id = $1 ORDER BY joined_at ASC, class_id ASC`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, studentID); err != nil {
		return nil, fmt.Errorf("list student enrollments: %w", err)
	}
	return ids, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
