package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/diulabs/admission-api/internal/models"
)

// FAQRepository reads the FAQ lookup table.
type FAQRepository struct {
	db *sqlx.DB
}

// NewFAQRepository constructs the repository.
func NewFAQRepository(db *sqlx.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// List returns every FAQ entry ordered by id, giving the matcher a
// deterministic scan order for tie-breaking.
func (r *FAQRepository) List(ctx context.Context) ([]models.FAQEntry, error) {
	const query = `SELECT id, question, answer, keywords, category, source_link FROM faqs ORDER BY id`
	var entries []models.FAQEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, wrapQuery("list faq entries", err)
	}
	return entries, nil
}
