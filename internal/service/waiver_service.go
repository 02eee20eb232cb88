package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

type waiverRuleSource interface {
	List(ctx context.Context) ([]models.WaiverRule, error)
}

type departmentProgramSource interface {
	ListByDepartment(ctx context.Context, departmentCode string) ([]models.Program, error)
}

// WaiverEvaluationRequest holds the evaluator inputs. IsNewStudent defaults to
// true when omitted, matching the public form behaviour.
type WaiverEvaluationRequest struct {
	DepartmentCode string                `json:"faculty" validate:"required"`
	SSCGPA         float64               `json:"ssc_gpa" validate:"gte=0,lte=5"`
	HSCGPA         float64               `json:"hsc_gpa" validate:"gte=0,lte=5"`
	IsNewStudent   *bool                 `json:"is_new_student"`
	CurrentSGPA    float64               `json:"current_sgpa" validate:"gte=0,lte=4"`
	Profile        models.StudentProfile `json:"student_profile"`
}

// WaiverService decides which tuition waivers a student qualifies for. It is a
// pure function of its inputs plus the immutable waiver and program tables,
// and is safe for concurrent use.
type WaiverService struct {
	waivers   waiverRuleSource
	programs  departmentProgramSource
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWaiverService constructs the waiver service.
func NewWaiverService(waivers waiverRuleSource, programs departmentProgramSource, validate *validator.Validate, logger *zap.Logger) *WaiverService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaiverService{waivers: waivers, programs: programs, validator: validate, logger: logger}
}

// Evaluate returns the waivers the student qualifies for, ordered by
// percentage descending. An empty result is a valid outcome, never an error.
func (s *WaiverService) Evaluate(ctx context.Context, req WaiverEvaluationRequest) ([]models.EligibleWaiver, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid waiver evaluation payload")
	}

	programs, err := s.programs.ListByDepartment(ctx, req.DepartmentCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load department programs")
	}
	rules, err := s.waivers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load waiver rules")
	}

	programCodes := make(map[string]struct{}, len(programs))
	for _, p := range programs {
		programCodes[p.Code] = struct{}{}
	}

	isNewStudent := true
	if req.IsNewStudent != nil {
		isNewStudent = *req.IsNewStudent
	}
	record := academicRecord{SSCGPA: req.SSCGPA, HSCGPA: req.HSCGPA, Profile: req.Profile}

	eligible := make([]models.EligibleWaiver, 0)
	for _, rule := range rules {
		if !intersectsPrograms(rule.ApplicablePrograms, programCodes) {
			continue
		}

		percentage, err := maxWaiverPercentage(rule.WaiverRate)
		if err != nil {
			// Configuration error: the rule fails closed, the rest keep going.
			s.logger.Warn("malformed waiver rate", zap.String("waiver_id", rule.ID), zap.Error(err))
			continue
		}

		if !s.ruleQualifies(rule, record) {
			continue
		}

		if rule.SGPARequired > 0 && !isNewStudent && req.CurrentSGPA < rule.SGPARequired {
			continue
		}

		eligible = append(eligible, models.EligibleWaiver{
			ID:                  rule.ID,
			Name:                rule.Name,
			Category:            rule.Category,
			Description:         rule.Description,
			WaiverPercentage:    fmt.Sprintf("%d%%", percentage),
			EligibilityCriteria: rule.EligibilityCriteria,
			RequiredDocuments:   rule.RequiredDocuments,
			Deadline:            rule.Deadline,
			ApplicablePrograms:  rule.ApplicablePrograms,
			SGPARequired:        rule.SGPARequired,
		})
	}

	// Stable sort: ties on percentage keep rule table order.
	sort.SliceStable(eligible, func(i, j int) bool {
		return parsePercentage(eligible[i].WaiverPercentage) > parsePercentage(eligible[j].WaiverPercentage)
	})

	return eligible, nil
}

// ruleQualifies checks every criterion tag on the rule against the record.
// All criteria must hold; an unrecognized tag fails the rule closed.
func (s *WaiverService) ruleQualifies(rule models.WaiverRule, record academicRecord) bool {
	for _, tag := range rule.EligibilityCriteria {
		criterion, err := resolveCriterion(tag)
		if err != nil {
			s.logger.Warn("unresolvable eligibility criterion", zap.String("waiver_id", rule.ID), zap.Error(err))
			return false
		}
		if !criterion.passes(record) {
			return false
		}
	}
	return true
}

func intersectsPrograms(applicable []string, programCodes map[string]struct{}) bool {
	for _, code := range applicable {
		if _, ok := programCodes[code]; ok {
			return true
		}
	}
	return false
}

// maxWaiverPercentage resolves the displayed percentage for a rule: the
// maximum of its rate literals.
func maxWaiverPercentage(rates []string) (int, error) {
	if len(rates) == 0 {
		return 0, fmt.Errorf("waiver rate missing")
	}
	max := 0
	for i, rate := range rates {
		value, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(rate), "%"))
		if err != nil {
			return 0, fmt.Errorf("waiver rate %q: %w", rate, err)
		}
		if i == 0 || value > max {
			max = value
		}
	}
	return max, nil
}

func parsePercentage(display string) int {
	value, _ := strconv.Atoi(strings.TrimSuffix(display, "%"))
	return value
}
