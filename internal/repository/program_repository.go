package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/diulabs/admission-api/internal/models"
)

const programColumns = `id, name, code, department_code, total_cost, credits, duration, description,
        eligibility, career_prospects, admission_deadline, program_type, accreditation`

// ProgramRepository reads the immutable program catalog.
type ProgramRepository struct {
	db *sqlx.DB
}

// NewProgramRepository constructs the repository.
func NewProgramRepository(db *sqlx.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// List returns every program ordered by code.
func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY code`
	var programs []models.Program
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, wrapQuery("list programs", err)
	}
	return programs, nil
}

// FindByCode returns a single program by its unique code.
func (r *ProgramRepository) FindByCode(ctx context.Context, code string) (*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE code = $1`
	var program models.Program
	if err := r.db.GetContext(ctx, &program, query, code); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListByDepartment returns the programs belonging to a department, ordered by
// code. The waiver evaluator uses the codes to scope candidate rules.
func (r *ProgramRepository) ListByDepartment(ctx context.Context, departmentCode string) ([]models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE department_code = $1 ORDER BY code`
	var programs []models.Program
	if err := r.db.SelectContext(ctx, &programs, query, departmentCode); err != nil {
		return nil, wrapQuery("list department programs", err)
	}
	return programs, nil
}
