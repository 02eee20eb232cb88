package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/diulabs/admission-api/internal/models"
)

// ApplicationRepository persists admission applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create persists a new application record.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	if application.SubmittedAt.IsZero() {
		application.SubmittedAt = time.Now().UTC()
	}
	if application.Status == "" {
		application.Status = models.ApplicationStatusPending
	}
	const query = `INSERT INTO applications (
        id, student_name, email, phone, dob, father_name, mother_name, nid, gender, program_code,
        ssc_gpa, hsc_gpa, ssc_year, hsc_year, ssc_board, hsc_board, ssc_group, hsc_group, family_income,
        is_freedom_fighter_child, is_diu_employee_relative, has_sports_achievement, has_diploma,
        is_international_student, group_admission, documents_submitted, application_status, submitted_at
    ) VALUES (
        :id, :student_name, :email, :phone, :dob, :father_name, :mother_name, :nid, :gender, :program_code,
        :ssc_gpa, :hsc_gpa, :ssc_year, :hsc_year, :ssc_board, :hsc_board, :ssc_group, :hsc_group, :family_income,
        :is_freedom_fighter_child, :is_diu_employee_relative, :has_sports_achievement, :has_diploma,
        :is_international_student, :group_admission, :documents_submitted, :application_status, :submitted_at
    )`
	if _, err := r.db.NamedExecContext(ctx, query, application); err != nil {
		return wrapQuery("create application", err)
	}
	return nil
}

// ExistsByProgram reports whether the NID already has an application for the
// given program.
func (r *ApplicationRepository) ExistsByProgram(ctx context.Context, nid, programCode string) (bool, error) {
	const query = `SELECT 1 FROM applications WHERE nid = $1 AND program_code = $2 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, nid, programCode); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, wrapQuery("check application existence", err)
	}
	return true, nil
}

// FindByID returns an application by its ID.
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	const query = `SELECT id, student_name, email, phone, dob, father_name, mother_name, nid, gender, program_code,
        ssc_gpa, hsc_gpa, ssc_year, hsc_year, ssc_board, hsc_board, ssc_group, hsc_group, family_income,
        is_freedom_fighter_child, is_diu_employee_relative, has_sports_achievement, has_diploma,
        is_international_student, group_admission, documents_submitted, application_status, submitted_at
        FROM applications WHERE id = $1`
	var application models.Application
	if err := r.db.GetContext(ctx, &application, query, id); err != nil {
		return nil, err
	}
	return &application, nil
}
