package handler

import (
	"context"

	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/blaisecz/clinical-assistant/internal/langfuse"
	"github.com/blaisecz/clinical-assistant/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, patient *domain.PatientRecord) (*domain.ClinicalSummaryResponse, error)
	calls       int
}

var _ service.AnalysisService = (*MockAnalysisService)(nil)

func (m *MockAnalysisService) Analyze(ctx context.Context, patient *domain.PatientRecord) (*domain.ClinicalSummaryResponse, error) {
	m.calls++
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, patient)
	}
	return &domain.ClinicalSummaryResponse{
		PatientID:                    patient.PatientID,
		Name:                         patient.Name,
		Age:                          patient.Age,
		Gender:                       patient.Gender,
		BMI:                          22.9,
		BP:                           patient.BPString(),
		GlucoseHbA1c:                 patient.GlucoseHbA1cString(),
		LipidProfile:                 patient.LipidProfileString(),
		Summary:                      "Low overall risk with a favorable lipid profile.",
		RiskScore:                    15,
		RiskBucket:                   domain.RiskBucketNormal,
		ContributingFactors:          []string{"Mildly elevated LDL"},
		PotentialFutureRisks:         []string{"Hyperlipidemia"},
		PersonalizedRecommendations:  []string{"Maintain current activity level"},
		RecommendedLifestylePrograms: []string{"General Wellness Checkup"},
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	return nil
}
