package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

type mockDepartmentSource struct {
	departments []models.Department
	err         error
}

func (m *mockDepartmentSource) List(ctx context.Context) ([]models.Department, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.departments, nil
}

func sampleDepartments() []models.Department {
	return []models.Department{
		{
			ID:          1,
			Name:        "Department of Computer Science and Engineering",
			Code:        "CSE",
			Description: "Computing education and research in robotics, artificial intelligence, machine learning and software development",
			Programs:    pq.StringArray{"CSE"},
			Faculty:     "Faculty of Science and Information Technology",
		},
		{
			ID:          2,
			Name:        "Department of English",
			Code:        "ENG",
			Description: "Literature, linguistics and language teaching",
			Programs:    pq.StringArray{"ENG"},
			Faculty:     "Faculty of Humanities and Social Sciences",
		},
	}
}

func TestRecommendationServiceMatchesInterests(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests:   []string{"robotics", "machine learning"},
		CareerGoals: []string{"software development"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Department of Computer Science and Engineering", recs[0].Department.Name)
	assert.Greater(t, recs[0].MatchScore, recommendationThreshold)
	assert.Contains(t, recs[0].Reasons[0], "Matches interests: robotics, machine learning")
	assert.Contains(t, recs[0].Reasons[1], "Aligns with goals: software development")
}

func TestRecommendationServiceKeywordMatchIsCaseInsensitive(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"Robotics", "Machine Learning", "Artificial Intelligence"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reasons[0], "Robotics")
}

func TestRecommendationServiceFiltersBelowThreshold(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"astrophysics"},
	})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendationServiceBoostIncreasesScore(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	base, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"robotics", "machine learning"},
	})
	require.NoError(t, err)
	boosted, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"robotics", "machine learning", "artificial intelligence"},
	})
	require.NoError(t, err)
	require.Len(t, base, 1)
	require.Len(t, boosted, 1)
	assert.Greater(t, boosted[0].MatchScore, base[0].MatchScore)
}

func TestRecommendationServiceBoostAddsFixedIncrement(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	base, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"robotics", "machine learning"},
	})
	require.NoError(t, err)

	// "robotic" is a substring of the description but not a vocabulary term,
	// so the query vector is unchanged and only the literal-match boost moves
	// the score.
	boosted, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"robotics", "machine learning", "robotic"},
	})
	require.NoError(t, err)

	require.Len(t, base, 1)
	require.Len(t, boosted, 1)
	assert.InDelta(t, base[0].MatchScore+keywordBoost, boosted[0].MatchScore, 1e-9)
}

func TestRecommendationServiceCapsResults(t *testing.T) {
	departments := make([]models.Department, 0, 8)
	for i := 0; i < 8; i++ {
		departments = append(departments, models.Department{
			ID:          i + 1,
			Name:        fmt.Sprintf("Department %d", i+1),
			Code:        fmt.Sprintf("D%d", i+1),
			Description: "Robotics and automation engineering with embedded systems",
			Programs:    pq.StringArray{fmt.Sprintf("P%d", i+1)},
			Faculty:     "Faculty of Engineering",
		})
	}
	svc := NewRecommendationService(&mockDepartmentSource{departments: departments}, nil, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), RecommendationRequest{
		Interests: []string{"robotics", "automation", "embedded systems"},
	})
	require.NoError(t, err)
	assert.Len(t, recs, maxRecommendations)
}

func TestRecommendationServiceEmptyCatalog(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{}, nil, zap.NewNop())

	recs, err := svc.Recommend(context.Background(), RecommendationRequest{Interests: []string{"robotics"}})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendationServiceUpstreamFailure(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{err: errors.New("connection refused")}, nil, zap.NewNop())

	_, err := svc.Recommend(context.Background(), RecommendationRequest{Interests: []string{"robotics"}})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestRecommendationServiceValidation(t *testing.T) {
	svc := NewRecommendationService(&mockDepartmentSource{departments: sampleDepartments()}, nil, zap.NewNop())

	_, err := svc.Recommend(context.Background(), RecommendationRequest{SSCGPA: 6})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
