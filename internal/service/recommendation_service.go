package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

const (
	// recommendationThreshold: departments scoring at or below it are discarded.
	recommendationThreshold = 0.2
	// keywordBoost per literal keyword match; additive and uncapped.
	keywordBoost = 0.1
	// maxRecommendations returned per query.
	maxRecommendations = 5
	// maxVocabularyTerms caps the tf-idf feature space.
	maxVocabularyTerms = 500
)

type departmentSource interface {
	List(ctx context.Context) ([]models.Department, error)
}

// RecommendationRequest is the free-text query for department matching.
// SSCGPA and HSCGPA are accepted for API compatibility with the intake form
// but do not participate in scoring.
type RecommendationRequest struct {
	Interests          []string `json:"interests"`
	AcademicBackground string   `json:"academic_background"`
	CareerGoals        []string `json:"career_goals"`
	SSCGPA             float64  `json:"ssc_gpa" validate:"gte=0,lte=5"`
	HSCGPA             float64  `json:"hsc_gpa" validate:"gte=0,lte=5"`
}

// Recommendation pairs a department with its match score and the reasons
// behind it.
type Recommendation struct {
	Department models.DepartmentSummary `json:"department"`
	MatchScore float64                  `json:"match_score"`
	Reasons    []string                 `json:"reasons"`
}

// RecommendationService ranks departments against free-text interests using
// a tf-idf vector space plus literal keyword boosts. The vector space is
// rebuilt per call over the department snapshot, which keeps the engine pure
// and is cheap at catalog scale.
type RecommendationService struct {
	departments departmentSource
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewRecommendationService constructs the recommendation service.
func NewRecommendationService(departments departmentSource, validate *validator.Validate, logger *zap.Logger) *RecommendationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{departments: departments, validator: validate, logger: logger}
}

// Recommend returns at most five departments with total score above the
// threshold, sorted by score descending. An empty result is valid.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendationRequest) ([]Recommendation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid recommendation payload")
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load departments")
	}
	if len(departments) == 0 {
		return []Recommendation{}, nil
	}

	documents := make([]string, len(departments))
	for i, dept := range departments {
		documents[i] = dept.Description + " " + strings.Join(dept.Programs, " ") + " " + dept.Faculty
	}
	vectorizer := newTFIDFVectorizer(documents, maxVocabularyTerms)

	queryText := strings.Join(req.Interests, " ") + " " + req.AcademicBackground + " " + strings.Join(req.CareerGoals, " ")
	queryVector := vectorizer.transform(queryText)

	recommendations := make([]Recommendation, 0, len(departments))
	for i, dept := range departments {
		baseScore := cosineSimilarity(queryVector, vectorizer.transform(documents[i]))

		description := strings.ToLower(dept.Description)
		programText := strings.ToLower(strings.Join(dept.Programs, " "))

		var matchedInterests, matchedGoals []string
		for _, interest := range req.Interests {
			needle := strings.ToLower(interest)
			if needle != "" && (strings.Contains(description, needle) || strings.Contains(programText, needle)) {
				matchedInterests = append(matchedInterests, interest)
			}
		}
		for _, goal := range req.CareerGoals {
			needle := strings.ToLower(goal)
			if needle != "" && strings.Contains(description, needle) {
				matchedGoals = append(matchedGoals, goal)
			}
		}

		totalScore := baseScore + keywordBoost*float64(len(matchedInterests)+len(matchedGoals))
		if totalScore <= recommendationThreshold {
			continue
		}

		var reasons []string
		if len(matchedInterests) > 0 {
			reasons = append(reasons, "Matches interests: "+strings.Join(matchedInterests, ", "))
		}
		if len(matchedGoals) > 0 {
			reasons = append(reasons, "Aligns with goals: "+strings.Join(matchedGoals, ", "))
		}
		if len(reasons) == 0 {
			reasons = []string{"General match based on profile"}
		}

		recommendations = append(recommendations, Recommendation{
			Department: models.DepartmentSummary{
				Name:        dept.Name,
				Description: dept.Description,
				Programs:    dept.Programs,
				Faculty:     dept.Faculty,
				Contact:     dept.Contact,
				Website:     dept.Website,
			},
			MatchScore: totalScore,
			Reasons:    reasons,
		})
	}

	// Ties keep department snapshot order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations, nil
}
