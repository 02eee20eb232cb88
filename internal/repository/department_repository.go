package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/diulabs/admission-api/internal/models"
)

// DepartmentRepository reads the immutable department catalog.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository constructs the repository.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns every department ordered by id. The recommender builds its
// vector space over this snapshot, so the order must be stable.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	const query = `SELECT id, name, code, contact, head, description, programs, faculty, location,
        website, established_year, student_capacity, accreditation FROM departments ORDER BY id`
	var departments []models.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, wrapQuery("list departments", err)
	}
	return departments, nil
}

// FindByCode returns a single department by its unique code.
func (r *DepartmentRepository) FindByCode(ctx context.Context, code string) (*models.Department, error) {
	const query = `SELECT id, name, code, contact, head, description, programs, faculty, location,
        website, established_year, student_capacity, accreditation FROM departments WHERE code = $1`
	var department models.Department
	if err := r.db.GetContext(ctx, &department, query, code); err != nil {
		return nil, err
	}
	return &department, nil
}
