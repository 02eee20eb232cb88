package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

func TestResolveCriterionKnownTags(t *testing.T) {
	for tag := range criterionTags {
		_, err := resolveCriterion(tag)
		assert.NoError(t, err, tag)
	}
}

func TestResolveCriterionUnknownTag(t *testing.T) {
	_, err := resolveCriterion("Owns a telescope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCriterion.Code, appErrors.FromError(err).Code)
}

func TestCriterionGPABoundaries(t *testing.T) {
	assert.True(t, CriterionSSCGPA5.passes(academicRecord{SSCGPA: 5.0}))
	assert.False(t, CriterionSSCGPA5.passes(academicRecord{SSCGPA: 4.99}))

	assert.True(t, CriterionHSCGPA5.passes(academicRecord{HSCGPA: 5.0}))
	assert.False(t, CriterionHSCGPA5.passes(academicRecord{HSCGPA: 4.99}))

	assert.True(t, CriterionHSCGPANear5.passes(academicRecord{HSCGPA: 4.90}))
	assert.True(t, CriterionHSCGPANear5.passes(academicRecord{HSCGPA: 4.99}))
	assert.False(t, CriterionHSCGPANear5.passes(academicRecord{HSCGPA: 5.0}))
	assert.False(t, CriterionHSCGPANear5.passes(academicRecord{HSCGPA: 4.89}))
}

func TestCriterionFamilyIncome(t *testing.T) {
	low := 49999.0
	high := 50000.0
	assert.True(t, CriterionLowFamilyIncome.passes(academicRecord{Profile: models.StudentProfile{FamilyIncome: &low}}))
	assert.False(t, CriterionLowFamilyIncome.passes(academicRecord{Profile: models.StudentProfile{FamilyIncome: &high}}))
	assert.False(t, CriterionLowFamilyIncome.passes(academicRecord{}), "undisclosed income fails")
}

func TestCriterionProfileFlags(t *testing.T) {
	profile := models.StudentProfile{
		IsFreedomFighterChild:  true,
		IsDIUEmployeeRelative:  true,
		HasSportsAchievement:   true,
		HasDiploma:             true,
		IsInternationalStudent: true,
		GroupAdmission:         true,
	}
	record := academicRecord{Profile: profile}
	assert.True(t, CriterionFreedomFighterChild.passes(record))
	assert.True(t, CriterionEmployeeRelative.passes(record))
	assert.True(t, CriterionSportsAchievement.passes(record))
	assert.True(t, CriterionDiplomaHolder.passes(record))
	assert.True(t, CriterionInternationalStudent.passes(record))
	assert.True(t, CriterionGroupAdmission.passes(record))

	empty := academicRecord{}
	assert.False(t, CriterionFreedomFighterChild.passes(empty))
	assert.False(t, CriterionGroupAdmission.passes(empty))
}
