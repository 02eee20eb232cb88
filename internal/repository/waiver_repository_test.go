package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestWaiverRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaiverRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "category", "description", "waiver_rate", "eligibility_criteria",
		"required_documents", "deadline", "applicable_programs", "sgpa_required",
	}).
		AddRow("W-SSC-GPA5", "SSC Golden GPA Waiver", "Merit", "", "{20%}", `{"SSC GPA 5.0"}`, "{}", "2026-12-31", "{CSE,SWE}", 3.5).
		AddRow("W-HSC-GPA5", "HSC Golden GPA Waiver", "Merit", "", `{35%,20%}`, `{"HSC GPA 5.0"}`, "{}", "2026-12-31", "{CSE}", 3.5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, category, description, waiver_rate, eligibility_criteria,")).
		WillReturnRows(rows)

	rules, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "W-SSC-GPA5", rules[0].ID)
	assert.Equal(t, []string{"20%"}, []string(rules[0].WaiverRate))
	assert.Equal(t, []string{"SSC GPA 5.0"}, []string(rules[0].EligibilityCriteria))
	assert.Equal(t, []string{"CSE", "SWE"}, []string(rules[0].ApplicablePrograms))
	assert.Equal(t, []string{"35%", "20%"}, []string(rules[1].WaiverRate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaiverRepositoryListError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaiverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, category, description, waiver_rate, eligibility_criteria,")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list waiver rules")
	assert.NoError(t, mock.ExpectationsWereMet())
}
