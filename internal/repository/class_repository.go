package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/educenter-api/internal/models"
)

// ClassRepository reads class offerings from the catalog store.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

type classRow struct {
	models.ClassOffering
	Levels  pq.StringArray `db:"levels"`
	Courses pq.StringArray `db:"courses"`
}

const listActiveClassesQuery = `SELECT c.id, c.branch_id, c.status, COALESCE(c.timing, '') AS timing,
        COALESCE(c.levels, '{}') AS levels, COALESCE(c.courses, '{}') AS courses,
        c.start_date, c.teacher_id, t.full_name AS teacher_name
        FROM classes c
        LEFT JOIN teachers t ON t.id = c.teacher_id
        WHERE c.status = $1`

// ListActive returns the active offerings of a branch, or of every branch when branchID
// is empty. Rows come back in creation order so teacher mapping stays deterministic.
func (r *ClassRepository) ListActive(ctx context.Context, branchID string) ([]models.ClassOffering, error) {
	query := listActiveClassesQuery
	args := []interface{}{models.ClassStatusActive}
	if branchID != "" {
		query += fmt.Sprintf(" AND c.branch_id = $%d", len(args)+1)
		args = append(args, branchID)
	}
	query += " ORDER BY c.created_at ASC, c.id ASC"

	var rows []classRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active classes: %w", err)
	}

	classes := make([]models.ClassOffering, 0, len(rows))
	for _, row := range rows {
		class := row.ClassOffering
		class.Levels = []string(row.Levels)
		class.Courses = []string(row.Courses)
		classes = append(classes, class)
	}
	return classes, nil
}
