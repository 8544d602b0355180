package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/educenter-api/internal/models"
)

var classColumns = []string{"id", "branch_id", "status", "timing", "levels", "courses", "start_date", "teacher_id", "teacher_name"}

func TestClassRepositoryListActiveByBranch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(classColumns).
		AddRow("c1", "x", "active", "Mon 9-11", "{\"Level-1 (A)\"}", "{\"General English\"}", start, "t1", "Huda").
		AddRow("c2", "x", "active", "", "{}", "{Business}", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.status = $1 AND c.branch_id = $2 ORDER BY c.created_at ASC")).
		WithArgs(string(models.ClassStatusActive), "x").
		WillReturnRows(rows)

	classes, err := repo.ListActive(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, classes, 2)

	assert.Equal(t, []string{"Level-1 (A)"}, classes[0].Levels)
	assert.Equal(t, []string{"General English"}, classes[0].Courses)
	assert.Equal(t, "Huda", classes[0].Teacher())
	require.NotNil(t, classes[0].StartDate)
	assert.True(t, classes[0].Active())

	assert.Empty(t, classes[1].Levels)
	assert.Equal(t, []string{"Business"}, classes[1].Courses)
	assert.Nil(t, classes[1].TeacherName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListActiveAllBranches(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(`WHERE c.status = \$1 ORDER BY`).
		WithArgs(string(models.ClassStatusActive)).
		WillReturnRows(sqlmock.NewRows(classColumns))

	classes, err := repo.ListActive(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, classes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListActiveError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery("FROM classes").WillReturnError(errors.New("db down"))

	_, err := repo.ListActive(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list active classes")
}
