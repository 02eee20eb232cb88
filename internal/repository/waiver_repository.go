package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diulabs/admission-api/internal/models"
)

// WaiverRepository reads the waiver rule table.
type WaiverRepository struct {
	db *sqlx.DB
}

// NewWaiverRepository constructs the repository.
func NewWaiverRepository(db *sqlx.DB) *WaiverRepository {
	return &WaiverRepository{db: db}
}

// List returns every waiver rule ordered by id. Rule order matters: the
// evaluator's sort is stable, so ties on percentage keep this order.
func (r *WaiverRepository) List(ctx context.Context) ([]models.WaiverRule, error) {
	const query = `SELECT id, name, category, description, waiver_rate, eligibility_criteria,
        required_documents, deadline, applicable_programs, sgpa_required FROM waivers ORDER BY id`
	var rules []models.WaiverRule
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, wrapQuery("list waiver rules", err)
	}
	return rules, nil
}

func wrapQuery(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
