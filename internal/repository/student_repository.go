package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/educenter-api/internal/models"
)

// StudentRepository reads finalized registration profiles.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

type studentProfileRow struct {
	ID          string         `db:"id"`
	BranchID    string         `db:"branch_id"`
	Program     string         `db:"program"`
	CourseLevel string         `db:"course_level"`
	Timing      sql.NullString `db:"timing"`
	Courses     pq.StringArray `db:"courses"`
}

// FindProfileByID returns the registration profile of a student. The program column keeps
// its legacy text shape and is resolved by the matching engine.
func (r *StudentRepository) FindProfileByID(ctx context.Context, id string) (*models.StudentProfile, error) {
	const query = `SELECT id, COALESCE(branch_id, '') AS branch_id, COALESCE(program, '') AS program,
        COALESCE(course_level, '') AS course_level, timing, courses
        FROM students WHERE id = $1`
	var row studentProfileRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	profile := &models.StudentProfile{
		ID:          row.ID,
		BranchID:    row.BranchID,
		Program:     models.LegacyProgram(row.Program),
		CourseLevel: row.CourseLevel,
		Courses:     []string(row.Courses),
	}
	if row.Timing.Valid {
		timing := row.Timing.String
		profile.Timing = &timing
	}
	return profile, nil
}
