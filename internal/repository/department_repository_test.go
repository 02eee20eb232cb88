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

var departmentTestColumns = []string{
	"id", "name", "code", "contact", "head", "description", "programs", "faculty",
	"location", "website", "established_year", "student_capacity", "accreditation",
}

func TestDepartmentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	rows := sqlmock.NewRows(departmentTestColumns).
		AddRow(1, "Department of CSE", "CSE", "cse@example.edu", "Head", "Computing education", "{CSE}", "FSIT", "", "", 2001, 4000, "UGC").
		AddRow(2, "Department of English", "ENG", "eng@example.edu", "Head", "Literature", "{ENG}", "FHSS", "", "", 2003, 800, "UGC")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code, contact, head, description, programs, faculty, location,")).
		WillReturnRows(rows)

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "CSE", departments[0].Code)
	assert.Equal(t, []string{"CSE"}, []string(departments[0].Programs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryFindByCode(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	rows := sqlmock.NewRows(departmentTestColumns).
		AddRow(1, "Department of CSE", "CSE", "cse@example.edu", "Head", "Computing education", "{CSE}", "FSIT", "", "", 2001, 4000, "UGC")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1")).
		WithArgs("CSE").
		WillReturnRows(rows)

	department, err := repo.FindByCode(context.Background(), "CSE")
	require.NoError(t, err)
	assert.Equal(t, "Department of CSE", department.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryFindByCodeNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1")).
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByCode(context.Background(), "NOPE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
