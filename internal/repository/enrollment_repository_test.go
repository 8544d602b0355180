package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/educenter-api/internal/models"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	joined := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO enrollments (id, student_id, class_id, joined_at)")).
		WithArgs(sqlmock.AnyArg(), "stu-1", "class-1", joined).
		WillReturnResult(sqlmock.NewResult(0, 1))

	enrollment := &models.Enrollment{StudentID: "stu-1", ClassID: "class-1", JoinedAt: joined}
	require.NoError(t, repo.Create(context.Background(), enrollment))
	assert.NotEmpty(t, enrollment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO enrollments")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "enrollments_student_id_class_id_key"})

	err := repo.Create(context.Background(), &models.Enrollment{StudentID: "stu-1", ClassID: "class-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrAlreadyEnrolled))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreateFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO enrollments")).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &models.Enrollment{StudentID: "stu-1", ClassID: "class-1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, appErrors.ErrAlreadyEnrolled))
	assert.Contains(t, err.Error(), "create enrollment")
}

func TestEnrollmentRepositoryListClassIDsByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT class_id FROM enrollments WHERE student_id = $1")).
		WithArgs("stu-1").
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}).AddRow("class-1").AddRow("class-2"))

	ids, err := repo.ListClassIDsByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"class-1", "class-2"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}
