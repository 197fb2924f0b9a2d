package service

import (
	"context"

	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/blaisecz/clinical-assistant/internal/langfuse"
)

// MockAnalysisLLM is a mock implementation of llm.AnalysisLLM
type MockAnalysisLLM struct {
	analyzeFunc func(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error)
	calls       int
}

func (m *MockAnalysisLLM) AnalyzePatient(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error) {
	m.calls++
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, patient, bmi)
	}
	return &domain.AnalysisResult{
		Summary:                      "Low overall risk.",
		RiskScore:                    12,
		RiskBucket:                   domain.RiskBucketNormal,
		ContributingFactors:          []string{"Mildly elevated LDL"},
		PotentialFutureRisks:         []string{"Hyperlipidemia"},
		PersonalizedRecommendations:  []string{"Maintain current activity level"},
		RecommendedLifestylePrograms: []string{"General Wellness Checkup"},
	}, nil
}

// mockLangfuseClient captures ingestion calls for assertions
type mockLangfuseClient struct {
	enabled    bool
	traceCalls int
	lastTrace  langfuse.TraceInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traceCalls++
	m.lastTrace = in
	return in.ID, nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	return nil
}
