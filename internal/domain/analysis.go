package domain

// RiskBucket classifies the patient's overall risk level.
// @Description Overall risk classification produced by the analysis.
type RiskBucket string

const (
	RiskBucketNormal    RiskBucket = "Normal"
	RiskBucketPotential RiskBucket = "Potential Risk"
	RiskBucketHigh      RiskBucket = "High Risk"
)

// IsValid reports whether the bucket is one of the known classifications.
func (b RiskBucket) IsValid() bool {
	switch b {
	case RiskBucketNormal, RiskBucketPotential, RiskBucketHigh:
		return true
	}
	return false
}

// LifestyleProgramCatalog is the closed set of programs the analysis may
// recommend. Provider output referencing anything else is discarded.
var LifestyleProgramCatalog = []string{
	"Weight Management & Nutrition",
	"Diabetes Prevention Program",
	"Hypertension Control",
	"Smoking Cessation Support",
	"Active Lifestyle & Fitness",
	"Heart Health & Cholesterol",
	"Stress & Sleep Optimization",
	"Alcohol Reduction Program",
	"General Wellness Checkup",
}

// IsLifestyleProgram reports whether name belongs to the fixed catalog.
func IsLifestyleProgram(name string) bool {
	for _, p := range LifestyleProgramCatalog {
		if p == name {
			return true
		}
	}
	return false
}

// AnalysisResult is the structured clinical analysis produced by the
// language-model provider, or by the static fallback when the provider
// call or its parsing fails.
// @Description AI-generated clinical analysis of a patient record.
type AnalysisResult struct {
	// Narrative clinical assessment (3-4 sentences)
	Summary string `json:"summary" example:"High-risk profile with multiple cardiovascular risk factors."`
	// Overall risk score from 0 to 100
	RiskScore int `json:"risk_score" example:"82" minimum:"0" maximum:"100"`
	// Risk classification
	RiskBucket RiskBucket `json:"risk_bucket" example:"High Risk" enums:"Normal,Potential Risk,High Risk"`
	// Current health issues driving the score (4-8 expected)
	ContributingFactors []string `json:"contributing_factors" example:"Obesity,Hypertension"`
	// Major risks over the next 5-10 years (5-7 expected)
	PotentialFutureRisks []string `json:"potential_future_risks" example:"Heart Attack,Stroke"`
	// Specific actionable tips (8-12 expected)
	PersonalizedRecommendations []string `json:"personalized_recommendations" example:"Walk 40 mins daily"`
	// Programs selected from the fixed catalog
	RecommendedLifestylePrograms []string `json:"recommended_lifestyle_programs" example:"Hypertension Control"`
}

// ClinicalSummaryResponse is the response body for the analyze endpoint:
// patient identity, computed BMI, formatted vitals, and the analysis
// flattened into a single record.
// @Description Complete clinical summary for a single patient analysis.
type ClinicalSummaryResponse struct {
	// External patient identifier
	PatientID string `json:"patient_id" example:"P-10234"`
	// Patient full name
	Name string `json:"name" example:"Jane Doe"`
	// Age in years
	Age int `json:"age" example:"52"`
	// Gender as reported
	Gender string `json:"gender" example:"female"`
	// Body mass index rounded to one decimal place
	BMI float64 `json:"bmi" example:"22.9"`
	// Formatted blood pressure reading
	BP string `json:"bp" example:"138/88 mmHg"`
	// Formatted fasting glucose and HbA1c
	GlucoseHbA1c string `json:"glucose_hba1c" example:"104 mg/dL (HbA1c 5.9%)"`
	// Formatted lipid panel
	LipidProfile string `json:"lipid_profile" example:"Total: 210, HDL: 48, LDL: 132, Trig: 160"`
	// Narrative clinical assessment
	Summary string `json:"summary" example:"Moderately elevated cardiovascular risk."`
	// Overall risk score from 0 to 100
	RiskScore int `json:"risk_score" example:"58"`
	// Risk classification
	RiskBucket RiskBucket `json:"risk_bucket" example:"Potential Risk"`
	// Current health issues driving the score
	ContributingFactors []string `json:"contributing_factors"`
	// Major risks over the next 5-10 years
	PotentialFutureRisks []string `json:"potential_future_risks"`
	// Specific actionable tips
	PersonalizedRecommendations []string `json:"personalized_recommendations"`
	// Programs selected from the fixed catalog
	RecommendedLifestylePrograms []string `json:"recommended_lifestyle_programs"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
