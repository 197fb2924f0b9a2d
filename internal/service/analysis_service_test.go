package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/blaisecz/clinical-assistant/internal/llm"
	"go.opentelemetry.io/otel/trace"
)

func intPtr(v int) *int { return &v }

func testPatient(smoker bool) *domain.PatientRecord {
	hba1c := 5.9
	return &domain.PatientRecord{
		PatientID:        "P-10234",
		Name:             "Jane Doe",
		Age:              52,
		Gender:           "female",
		HeightCm:         175,
		WeightKg:         70,
		BPSystolic:       intPtr(138),
		BPDiastolic:      intPtr(88),
		FastingGlucose:   intPtr(104),
		HbA1c:            &hba1c,
		TotalCholesterol: intPtr(210),
		HDL:              intPtr(48),
		LDL:              intPtr(132),
		Triglycerides:    intPtr(160),
		Smoker:           smoker,
	}
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		weightKg float64
		heightCm float64
		want     float64
	}{
		{70, 175, 22.9},
		{92, 180, 28.4},
		{50, 160, 19.5},
		{100, 170, 34.6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%gkg_%gcm", tt.weightKg, tt.heightCm), func(t *testing.T) {
			if got := CalculateBMI(tt.weightKg, tt.heightCm); got != tt.want {
				t.Errorf("CalculateBMI(%g, %g) = %g, want %g", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestAnalyze_Success(t *testing.T) {
	mock := &MockAnalysisLLM{}
	svc := NewAnalysisService(mock, &mockLangfuseClient{}, 0)

	result, err := svc.Analyze(context.Background(), testPatient(false))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if mock.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", mock.calls)
	}
	if result.PatientID != "P-10234" || result.Name != "Jane Doe" || result.Age != 52 || result.Gender != "female" {
		t.Errorf("identity fields not merged: %+v", result)
	}
	if result.BMI != 22.9 {
		t.Errorf("bmi = %g, want 22.9", result.BMI)
	}
	if result.BP != "138/88 mmHg" {
		t.Errorf("bp = %q", result.BP)
	}
	if result.GlucoseHbA1c != "104 mg/dL (HbA1c 5.9%)" {
		t.Errorf("glucose_hba1c = %q", result.GlucoseHbA1c)
	}
	if result.LipidProfile != "Total: 210, HDL: 48, LDL: 132, Trig: 160" {
		t.Errorf("lipid_profile = %q", result.LipidProfile)
	}
	if result.Summary != "Low overall risk." || result.RiskScore != 12 || result.RiskBucket != domain.RiskBucketNormal {
		t.Errorf("analysis fields not merged: %+v", result)
	}
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	mock := &MockAnalysisLLM{
		analyzeFunc: func(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error) {
			return nil, llm.ErrLLMRequest
		},
	}
	svc := NewAnalysisService(mock, &mockLangfuseClient{}, 0)

	result, err := svc.Analyze(context.Background(), testPatient(false))
	if err != nil {
		t.Fatalf("Analyze() should absorb provider errors, got %v", err)
	}

	if result.RiskBucket != domain.RiskBucketHigh {
		t.Errorf("risk_bucket = %q, want High Risk fallback", result.RiskBucket)
	}
	if result.RiskScore != 82 {
		t.Errorf("risk_score = %d, want 82", result.RiskScore)
	}
	if result.Summary == "" {
		t.Error("summary must never be empty")
	}
	for _, p := range result.RecommendedLifestylePrograms {
		if !domain.IsLifestyleProgram(p) {
			t.Errorf("fallback program %q not in catalog", p)
		}
	}
}

func TestAnalyze_FallbackSmokerBranch(t *testing.T) {
	mock := &MockAnalysisLLM{
		analyzeFunc: func(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error) {
			return nil, llm.ErrLLMResponse
		},
	}
	svc := NewAnalysisService(mock, &mockLangfuseClient{}, 0)

	tests := []struct {
		name       string
		smoker     bool
		wantFactor string
		skipFactor string
	}{
		{"smoker", true, "Smoking", "Sedentary lifestyle"},
		{"non-smoker", false, "Sedentary lifestyle", "Smoking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Analyze(context.Background(), testPatient(tt.smoker))
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}

			if !contains(result.ContributingFactors, tt.wantFactor) {
				t.Errorf("contributing_factors %v missing %q", result.ContributingFactors, tt.wantFactor)
			}
			if contains(result.ContributingFactors, tt.skipFactor) {
				t.Errorf("contributing_factors %v should not include %q", result.ContributingFactors, tt.skipFactor)
			}
		})
	}
}

func TestAnalyze_RecordsLangfuseTrace(t *testing.T) {
	mockLangfuse := &mockLangfuseClient{enabled: true}
	svc := NewAnalysisService(&MockAnalysisLLM{}, mockLangfuse, 0)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x01},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	if _, err := svc.Analyze(ctx, testPatient(false)); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if mockLangfuse.traceCalls != 1 {
		t.Fatalf("trace calls = %d, want 1", mockLangfuse.traceCalls)
	}
	if mockLangfuse.lastTrace.UserID != "P-10234" {
		t.Errorf("trace UserID = %q, want P-10234", mockLangfuse.lastTrace.UserID)
	}
	if mockLangfuse.lastTrace.Name != "patient-analysis" {
		t.Errorf("trace Name = %q, want patient-analysis", mockLangfuse.lastTrace.Name)
	}
	// The OTel trace ID is reused so feedback scores attach to this trace.
	if mockLangfuse.lastTrace.ID != sc.TraceID().String() {
		t.Errorf("trace ID = %q, want %q", mockLangfuse.lastTrace.ID, sc.TraceID().String())
	}

	output, ok := mockLangfuse.lastTrace.Output.(map[string]any)
	if !ok {
		t.Fatalf("trace output has unexpected type %T", mockLangfuse.lastTrace.Output)
	}
	if output["fallback"] != false {
		t.Errorf("fallback flag = %v, want false", output["fallback"])
	}
}

func TestAnalyze_NoTraceWhenLangfuseDisabled(t *testing.T) {
	mockLangfuse := &mockLangfuseClient{}
	svc := NewAnalysisService(&MockAnalysisLLM{}, mockLangfuse, 0)

	if _, err := svc.Analyze(context.Background(), testPatient(false)); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if mockLangfuse.traceCalls != 0 {
		t.Errorf("trace calls = %d, want 0 when disabled", mockLangfuse.traceCalls)
	}
}

func TestFallbackAnalysis_RecommendationBranch(t *testing.T) {
	smoker := FallbackAnalysis(testPatient(true))
	if !contains(smoker.PersonalizedRecommendations, "Quit smoking immediately") {
		t.Errorf("smoker recommendations missing quit-smoking tip: %v", smoker.PersonalizedRecommendations)
	}

	nonSmoker := FallbackAnalysis(testPatient(false))
	if !contains(nonSmoker.PersonalizedRecommendations, "Increase activity to 200+ min/week") {
		t.Errorf("non-smoker recommendations missing activity tip: %v", nonSmoker.PersonalizedRecommendations)
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
