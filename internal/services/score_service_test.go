package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/omnipdr/omnipdr/internal/errors"
	"github.com/omnipdr/omnipdr/internal/models"
	"github.com/omnipdr/omnipdr/internal/services"
	"github.com/omnipdr/omnipdr/internal/testutil/mocks"
)

func newScoreService(repo *mocks.MockStudentRepository) *services.ScoreService {
	return services.NewScoreService(repo, nil, nil, 20)
}

func TestYKSScore(t *testing.T) {
	svc := newScoreService(new(mocks.MockStudentRepository))

	result, err := svc.YKSScore(context.Background(), services.YKSScoreRequest{
		TYTNets: map[string]float64{"Türkçe": 30, "Temel Matematik": 25},
		AYTNets: map[string]float64{"Matematik": 28, "Fizik": 10},
		Track:   "say",
		OBP:     85,
	})

	require.NoError(t, err)
	assert.Greater(t, result.TYTScore, 100.0)
	assert.Greater(t, result.PlacementScore, result.TYTScore*0.4)
	assert.Greater(t, result.EstimatedRank, 0)
	assert.InDelta(t, 51.0, result.Detail["obp_contribution"], 0.001)
}

func TestYKSScore_Validation(t *testing.T) {
	svc := newScoreService(new(mocks.MockStudentRepository))

	tests := []struct {
		name string
		req  services.YKSScoreRequest
	}{
		{
			name: "unknown track",
			req: services.YKSScoreRequest{
				TYTNets: map[string]float64{"Türkçe": 10},
				AYTNets: map[string]float64{"Matematik": 10},
				Track:   "DIL",
			},
		},
		{
			name: "obp out of range",
			req: services.YKSScoreRequest{
				TYTNets: map[string]float64{"Türkçe": 10},
				AYTNets: map[string]float64{"Matematik": 10},
				OBP:     120,
			},
		},
		{
			name: "empty tyt nets",
			req: services.YKSScoreRequest{
				AYTNets: map[string]float64{"Matematik": 10},
			},
		},
		{
			name: "negative net",
			req: services.YKSScoreRequest{
				TYTNets: map[string]float64{"Türkçe": -1},
				AYTNets: map[string]float64{"Matematik": 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.YKSScore(context.Background(), tt.req)
			assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
		})
	}
}

func TestLGSScore(t *testing.T) {
	svc := newScoreService(new(mocks.MockStudentRepository))

	result, err := svc.LGSScore(context.Background(), services.LGSScoreRequest{
		Nets: map[string]float64{"Türkçe": 15, "Matematik": 12, "Fen Bilimleri": 14},
	})

	require.NoError(t, err)
	assert.Greater(t, result.Score, 0.0)
	assert.Greater(t, result.EstimatedRank, 0)
	assert.Empty(t, result.TargetNetGap, "no target rank requested")
}

func TestLGSScore_WithTargetRank(t *testing.T) {
	svc := newScoreService(new(mocks.MockStudentRepository))

	result, err := svc.LGSScore(context.Background(), services.LGSScoreRequest{
		Nets:       map[string]float64{"Türkçe": 10, "Matematik": 8},
		TargetRank: 1000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.TargetNetGap)
}

func TestRequiredScore(t *testing.T) {
	svc := newScoreService(new(mocks.MockStudentRepository))

	score, err := svc.RequiredScore(context.Background(), "say", 1)
	require.NoError(t, err)
	assert.Equal(t, 500.0, score)

	_, err = svc.RequiredScore(context.Background(), "XYZ", 100)
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)

	_, err = svc.RequiredScore(context.Background(), "SAY", 0)
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestRecommendForStudent_LGS(t *testing.T) {
	student := models.NewStudent("Mehmet", "", models.TrackLGS, nil)
	rec, err := models.NewExamRecord(day(2026, 3, 1), map[string]float64{
		"Türkçe": 18, "Matematik": 16, "Fen Bilimleri": 17,
	}, 15, 5, 8, "")
	require.NoError(t, err)
	student.AddExamRecord(rec)

	repo := new(mocks.MockStudentRepository)
	repo.On("GetByID", mock.Anything, student.ID).Return(student, nil)

	svc := newScoreService(repo)
	result, err := svc.RecommendForStudent(context.Background(), student.ID, "", 0)

	require.NoError(t, err)
	assert.Equal(t, "LGS", result.ScoreType)
	assert.Greater(t, result.Score, 0.0)
}

func TestRecommendForStudent_YKS(t *testing.T) {
	student := models.NewStudent("Ayşe", "", models.TrackYKS, nil)
	rec, err := models.NewExamRecord(day(2026, 3, 1), map[string]float64{
		"Türkçe": 35, "Temel Matematik": 32, "Matematik": 30, "Fizik": 12,
	}, 25, 5, 7, "")
	require.NoError(t, err)
	student.AddExamRecord(rec)

	repo := new(mocks.MockStudentRepository)
	repo.On("GetByID", mock.Anything, student.ID).Return(student, nil)

	svc := newScoreService(repo)
	result, err := svc.RecommendForStudent(context.Background(), student.ID, "SAY", 80)

	require.NoError(t, err)
	assert.Equal(t, "SAY", result.ScoreType)
	assert.Greater(t, result.Score, 100.0)
}

func TestRecommendForStudent_NoExams(t *testing.T) {
	student := models.NewStudent("Ayşe", "", models.TrackYKS, nil)
	repo := new(mocks.MockStudentRepository)
	repo.On("GetByID", mock.Anything, student.ID).Return(student, nil)

	svc := newScoreService(repo)
	_, err := svc.RecommendForStudent(context.Background(), student.ID, "SAY", 80)
	assertAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestRecommendForStudent_NotFound(t *testing.T) {
	repo := new(mocks.MockStudentRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	svc := newScoreService(repo)
	_, err := svc.RecommendForStudent(context.Background(), "missing", "SAY", 80)
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}
