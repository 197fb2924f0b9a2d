package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/blaisecz/clinical-assistant/internal/langfuse"
	"github.com/blaisecz/clinical-assistant/internal/llm"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAnalysisTimeout bounds the single outbound provider call.
const DefaultAnalysisTimeout = 30 * time.Second

// AnalysisService produces a clinical summary for a patient record.
type AnalysisService interface {
	// Analyze computes BMI, invokes the LLM provider once, and returns the
	// merged clinical summary. Provider failures are absorbed into a static
	// fallback analysis and never returned as errors.
	Analyze(ctx context.Context, patient *domain.PatientRecord) (*domain.ClinicalSummaryResponse, error)
}

type analysisService struct {
	llmClient      llm.AnalysisLLM
	langfuseClient langfuse.Client
	timeout        time.Duration
}

// NewAnalysisService creates a new AnalysisService. A timeout of zero falls
// back to DefaultAnalysisTimeout.
func NewAnalysisService(llmClient llm.AnalysisLLM, langfuseClient langfuse.Client, timeout time.Duration) AnalysisService {
	if timeout <= 0 {
		timeout = DefaultAnalysisTimeout
	}
	return &analysisService{
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		timeout:        timeout,
	}
}

func (s *analysisService) Analyze(ctx context.Context, patient *domain.PatientRecord) (*domain.ClinicalSummaryResponse, error) {
	bmi := CalculateBMI(patient.WeightKg, patient.HeightCm)

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	analysis, err := s.llmClient.AnalyzePatient(llmCtx, patient, bmi)
	fallback := err != nil
	if fallback {
		// Provider and parsing failures are absorbed: the caller always gets
		// a complete summary, backed by the static fallback analysis.
		log.Printf("analysis fallback used for patient %s: %v", patient.PatientID, err)
		analysis = FallbackAnalysis(patient)
	}

	s.recordTrace(ctx, patient, bmi, analysis, fallback)

	return &domain.ClinicalSummaryResponse{
		PatientID:                    patient.PatientID,
		Name:                         patient.Name,
		Age:                          patient.Age,
		Gender:                       patient.Gender,
		BMI:                          bmi,
		BP:                           patient.BPString(),
		GlucoseHbA1c:                 patient.GlucoseHbA1cString(),
		LipidProfile:                 patient.LipidProfileString(),
		Summary:                      analysis.Summary,
		RiskScore:                    analysis.RiskScore,
		RiskBucket:                   analysis.RiskBucket,
		ContributingFactors:          analysis.ContributingFactors,
		PotentialFutureRisks:         analysis.PotentialFutureRisks,
		PersonalizedRecommendations:  analysis.PersonalizedRecommendations,
		RecommendedLifestylePrograms: analysis.RecommendedLifestylePrograms,
	}, nil
}

// recordTrace mirrors the analysis into Langfuse ingestion. When an OTel span
// is active its trace ID is reused, so feedback scores submitted with the
// trace_id from the response attach to this trace.
func (s *analysisService) recordTrace(ctx context.Context, patient *domain.PatientRecord, bmi float64, analysis *domain.AnalysisResult, fallback bool) {
	if !s.langfuseClient.IsEnabled() {
		return
	}

	in := langfuse.TraceInput{
		UserID: patient.PatientID,
		Name:   "patient-analysis",
		Input: map[string]any{
			"patient_id": patient.PatientID,
			"age":        patient.Age,
			"bmi":        bmi,
			"smoker":     patient.Smoker,
		},
		Output: map[string]any{
			"risk_score":  analysis.RiskScore,
			"risk_bucket": analysis.RiskBucket,
			"fallback":    fallback,
		},
		Tags: []string{"clinical-analysis"},
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		in.ID = sc.TraceID().String()
	}

	if _, err := s.langfuseClient.CreateTrace(ctx, in); err != nil {
		log.Printf("langfuse trace for patient %s not recorded: %v", patient.PatientID, err)
	}
}

// CalculateBMI returns weight_kg / (height_cm/100)^2 rounded to one decimal
// place.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// FallbackAnalysis is the fixed high-risk analysis substituted whenever the
// provider call or its parsing fails. The smoker flag is the only
// data-dependent branch.
func FallbackAnalysis(patient *domain.PatientRecord) *domain.AnalysisResult {
	lifestyleFactor := "Sedentary lifestyle"
	activityTip := "Increase activity to 200+ min/week"
	if patient.Smoker {
		lifestyleFactor = "Smoking"
		activityTip = "Quit smoking immediately"
	}

	return &domain.AnalysisResult{
		Summary:    fmt.Sprintf("High-risk profile detected for %s with multiple cardiovascular and metabolic risk factors.", patient.Name),
		RiskScore:  82,
		RiskBucket: domain.RiskBucketHigh,
		ContributingFactors: []string{
			"Obesity",
			"Hypertension",
			"Dyslipidemia",
			"Prediabetes/Diabetes",
			lifestyleFactor,
		},
		PotentialFutureRisks: []string{
			"Heart Attack",
			"Stroke",
			"Type 2 Diabetes",
			"Kidney Disease",
			"Peripheral Artery Disease",
		},
		PersonalizedRecommendations: []string{
			"Lose 8-10% body weight in 6 months",
			"Walk 40 mins daily",
			"Follow DASH or Mediterranean diet",
			activityTip,
			"Limit salt <5g/day",
			"Sleep 7-9 hours",
			"Monitor BP daily",
			"Repeat HbA1c in 3 months",
		},
		RecommendedLifestylePrograms: []string{
			"Weight Management & Nutrition",
			"Hypertension Control",
			"Diabetes Prevention Program",
			"Heart Health & Cholesterol",
		},
	}
}
