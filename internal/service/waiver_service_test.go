package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

type mockWaiverRuleSource struct {
	rules []models.WaiverRule
	err   error
}

func (m *mockWaiverRuleSource) List(ctx context.Context) ([]models.WaiverRule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rules, nil
}

type mockDepartmentProgramSource struct {
	programs map[string][]models.Program
	err      error
}

func (m *mockDepartmentProgramSource) ListByDepartment(ctx context.Context, departmentCode string) ([]models.Program, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.programs[departmentCode], nil
}

func cseProgramSource() *mockDepartmentProgramSource {
	return &mockDepartmentProgramSource{programs: map[string][]models.Program{
		"CSE": {{ID: 1, Name: "B.Sc. in CSE", Code: "CSE", DepartmentCode: "CSE"}},
	}}
}

func sscGoldenRule() models.WaiverRule {
	return models.WaiverRule{
		ID:                  "W-SSC-GPA5",
		Name:                "SSC Golden GPA Waiver",
		Category:            "Merit",
		WaiverRate:          pq.StringArray{"20%"},
		EligibilityCriteria: pq.StringArray{"SSC GPA 5.0"},
		ApplicablePrograms:  pq.StringArray{"CSE"},
		SGPARequired:        3.5,
	}
}

func TestWaiverServiceEvaluateQualifies(t *testing.T) {
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
		HSCGPA:         4.5,
	})
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "W-SSC-GPA5", eligible[0].ID)
	assert.Equal(t, "20%", eligible[0].WaiverPercentage)
}

func TestWaiverServiceEvaluateBelowGPA(t *testing.T) {
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         4.9,
		HSCGPA:         4.5,
	})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestWaiverServiceEvaluateOrdersByPercentageDesc(t *testing.T) {
	hscRule := models.WaiverRule{
		ID:                  "W-HSC-GPA5",
		Name:                "HSC Golden GPA Waiver",
		WaiverRate:          pq.StringArray{"20%", "35%"},
		EligibilityCriteria: pq.StringArray{"HSC GPA 5.0"},
		ApplicablePrograms:  pq.StringArray{"CSE"},
	}
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule(), hscRule}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
		HSCGPA:         5.0,
	})
	require.NoError(t, err)
	require.Len(t, eligible, 2)
	// Highest rate literal wins within a rule, highest percentage sorts first.
	assert.Equal(t, "35%", eligible[0].WaiverPercentage)
	assert.Equal(t, "W-HSC-GPA5", eligible[0].ID)
	assert.Equal(t, "20%", eligible[1].WaiverPercentage)
}

func TestWaiverServiceEvaluateSkipsOtherDepartments(t *testing.T) {
	rule := sscGoldenRule()
	rule.ApplicablePrograms = pq.StringArray{"PHARM"}
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{rule}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
	})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestWaiverServiceEvaluateUnknownCriterionFailsClosed(t *testing.T) {
	rule := sscGoldenRule()
	rule.EligibilityCriteria = pq.StringArray{"SSC GPA 5.0", "Left-handed student"}
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{rule}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
	})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestWaiverServiceEvaluateMalformedRateFailsClosed(t *testing.T) {
	rule := sscGoldenRule()
	rule.WaiverRate = pq.StringArray{"twenty"}
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{rule, sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
	})
	require.NoError(t, err)
	// The malformed rule is dropped, the healthy duplicate survives.
	require.Len(t, eligible, 1)
	assert.Equal(t, "20%", eligible[0].WaiverPercentage)
}

func TestWaiverServiceEvaluateSGPAGate(t *testing.T) {
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	continuing := false
	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
		IsNewStudent:   &continuing,
		CurrentSGPA:    3.0,
	})
	require.NoError(t, err)
	assert.Empty(t, eligible, "continuing student below required SGPA loses the waiver")

	eligible, err = svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
		IsNewStudent:   &continuing,
		CurrentSGPA:    3.5,
	})
	require.NoError(t, err)
	assert.Len(t, eligible, 1, "continuing student meeting the SGPA keeps the waiver")
}

func TestWaiverServiceEvaluateNewStudentSkipsSGPAGate(t *testing.T) {
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	// is_new_student omitted defaults to true, so the SGPA gate does not apply.
	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		SSCGPA:         5.0,
		CurrentSGPA:    0,
	})
	require.NoError(t, err)
	assert.Len(t, eligible, 1)
}

func TestWaiverServiceEvaluateProfileCriteria(t *testing.T) {
	income := 30000.0
	needRule := models.WaiverRule{
		ID:                  "W-NEED-INCOME",
		Name:                "Need-Based Financial Aid",
		WaiverRate:          pq.StringArray{"25%"},
		EligibilityCriteria: pq.StringArray{"Family income below 50,000 BDT/month"},
		ApplicablePrograms:  pq.StringArray{"CSE"},
	}
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{needRule}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	eligible, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{
		DepartmentCode: "CSE",
		Profile:        models.StudentProfile{FamilyIncome: &income},
	})
	require.NoError(t, err)
	assert.Len(t, eligible, 1)

	// Undisclosed income never qualifies for the need-based waiver.
	eligible, err = svc.Evaluate(context.Background(), WaiverEvaluationRequest{DepartmentCode: "CSE"})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestWaiverServiceEvaluateValidation(t *testing.T) {
	svc := NewWaiverService(&mockWaiverRuleSource{}, cseProgramSource(), nil, zap.NewNop())

	_, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{SSCGPA: 5.0})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Evaluate(context.Background(), WaiverEvaluationRequest{DepartmentCode: "CSE", SSCGPA: 5.5})
	require.Error(t, err)
}

func TestWaiverServiceEvaluateUpstreamFailure(t *testing.T) {
	waivers := &mockWaiverRuleSource{err: errors.New("connection refused")}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	_, err := svc.Evaluate(context.Background(), WaiverEvaluationRequest{DepartmentCode: "CSE"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestWaiverServiceEvaluateIdempotent(t *testing.T) {
	waivers := &mockWaiverRuleSource{rules: []models.WaiverRule{sscGoldenRule()}}
	svc := NewWaiverService(waivers, cseProgramSource(), nil, zap.NewNop())

	req := WaiverEvaluationRequest{DepartmentCode: "CSE", SSCGPA: 5.0}
	first, err := svc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMaxWaiverPercentage(t *testing.T) {
	value, err := maxWaiverPercentage([]string{"10%", " 35% ", "20%"})
	require.NoError(t, err)
	assert.Equal(t, 35, value)

	_, err = maxWaiverPercentage(nil)
	require.Error(t, err)

	_, err = maxWaiverPercentage([]string{"n/a"})
	require.Error(t, err)
}
