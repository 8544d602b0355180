package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepositoryFindProfileByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "branch_id", "program", "course_level", "timing", "courses"}).
		AddRow("stu-1", "x", `["General English","Business"]`, "Level-1, Level-2", "Mon 9-11", "{}")
	mock.ExpectQuery(regexp.QuoteMeta("FROM students WHERE id = $1")).
		WithArgs("stu-1").
		WillReturnRows(rows)

	profile, err := repo.FindProfileByID(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "x", profile.BranchID)
	assert.False(t, profile.Program.IsExplicit())
	assert.Equal(t, []string{"General English", "Business"}, profile.Program.Courses())
	assert.Equal(t, "Level-1, Level-2", profile.CourseLevel)
	require.NotNil(t, profile.Timing)
	assert.Equal(t, "Mon 9-11", *profile.Timing)
	assert.Empty(t, profile.Courses)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindProfileNullTiming(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "branch_id", "program", "course_level", "timing", "courses"}).
		AddRow("stu-2", "", "", "", nil, "{French}")
	mock.ExpectQuery("FROM students").WithArgs("stu-2").WillReturnRows(rows)

	profile, err := repo.FindProfileByID(context.Background(), "stu-2")
	require.NoError(t, err)
	assert.Nil(t, profile.Timing)
	assert.Equal(t, []string{"French"}, profile.Courses)
}

func TestStudentRepositoryFindProfileMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("FROM students").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProfileByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
