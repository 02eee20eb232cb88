package service

import (
	"fmt"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

// Criterion identifies one waiver eligibility predicate. The set is closed:
// every tag stored on a waiver rule must resolve to exactly one Criterion,
// and an unresolved tag is a configuration error.
type Criterion int

const (
	CriterionSSCGPA5 Criterion = iota
	CriterionHSCGPA5
	CriterionHSCGPANear5
	CriterionLowFamilyIncome
	CriterionFreedomFighterChild
	CriterionEmployeeRelative
	CriterionSportsAchievement
	CriterionDiplomaHolder
	CriterionGroupAdmission
	CriterionInternationalStudent
)

// lowIncomeThreshold is the monthly family income ceiling in BDT for
// need-based waivers.
const lowIncomeThreshold = 50000

// criterionTags maps the textual tags used in the waiver rule table to their
// predicate kinds.
var criterionTags = map[string]Criterion{
	"SSC GPA 5.0":       CriterionSSCGPA5,
	"HSC GPA 5.0":       CriterionHSCGPA5,
	"HSC GPA 4.90-4.99": CriterionHSCGPANear5,
	"Family income below 50,000 BDT/month":            CriterionLowFamilyIncome,
	"Child of freedom fighter":                        CriterionFreedomFighterChild,
	"DIU employee or immediate relative":              CriterionEmployeeRelative,
	"National or premier division sports achievement": CriterionSportsAchievement,
	"Diploma in relevant field":                       CriterionDiplomaHolder,
	"Group admission of 5 or more students":           CriterionGroupAdmission,
	"International student status":                    CriterionInternationalStudent,
}

// academicRecord holds the evaluator inputs criterion predicates read.
type academicRecord struct {
	SSCGPA  float64
	HSCGPA  float64
	Profile models.StudentProfile
}

// resolveCriterion maps a stored tag to its predicate kind. An unresolved tag
// is a rule configuration error, not a request error.
func resolveCriterion(tag string) (Criterion, error) {
	criterion, ok := criterionTags[tag]
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrInvalidCriterion, fmt.Sprintf("unknown eligibility criterion %q", tag))
	}
	return criterion, nil
}

// passes reports whether the record satisfies the criterion.
func (c Criterion) passes(record academicRecord) bool {
	switch c {
	case CriterionSSCGPA5:
		return record.SSCGPA >= 5.0
	case CriterionHSCGPA5:
		return record.HSCGPA >= 5.0
	case CriterionHSCGPANear5:
		return record.HSCGPA >= 4.90 && record.HSCGPA <= 4.99
	case CriterionLowFamilyIncome:
		return record.Profile.FamilyIncome != nil && *record.Profile.FamilyIncome < lowIncomeThreshold
	case CriterionFreedomFighterChild:
		return record.Profile.IsFreedomFighterChild
	case CriterionEmployeeRelative:
		return record.Profile.IsDIUEmployeeRelative
	case CriterionSportsAchievement:
		return record.Profile.HasSportsAchievement
	case CriterionDiplomaHolder:
		return record.Profile.HasDiploma
	case CriterionGroupAdmission:
		return record.Profile.GroupAdmission
	case CriterionInternationalStudent:
		return record.Profile.IsInternationalStudent
	}
	return false
}
