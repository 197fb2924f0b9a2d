package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrLLMUnavailable indicates the provider is not configured or unavailable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
	// ErrLLMRequest indicates an error during the provider API request.
	ErrLLMRequest = errors.New("LLM request failed")
	// ErrLLMResponse indicates the provider returned text that could not be
	// parsed into a valid analysis.
	ErrLLMResponse = errors.New("failed to parse LLM response")
)

// DefaultSystemPrompt instructs the model to act as a consultant physician
// and return strictly the analysis JSON shape. It can be overridden at
// startup with a prompt managed in Langfuse.
const DefaultSystemPrompt = `You are a senior consultant physician. Analyze the patient profile you are given and return ONLY valid JSON with exactly this shape:

{
  "summary": "3-4 sentence detailed clinical assessment",
  "risk_score": 0-100,
  "risk_bucket": "Normal" or "Potential Risk" or "High Risk",
  "contributing_factors": list of 4-8 current health issues,
  "potential_future_risks": list of 5-7 major risks in the next 5-10 years,
  "personalized_recommendations": list of 8-12 specific, actionable tips,
  "recommended_lifestyle_programs": select 3-6 most relevant from this list only:
    ["Weight Management & Nutrition", "Diabetes Prevention Program", "Hypertension Control",
     "Smoking Cessation Support", "Active Lifestyle & Fitness", "Heart Health & Cholesterol",
     "Stress & Sleep Optimization", "Alcohol Reduction Program", "General Wellness Checkup"]
}

Return only clean JSON. No extra fields. No comments. No markdown.`

const userPromptTemplate = `PATIENT PROFILE:
Name: %s, Age: %d, Gender: %s
Height: %s cm, Weight: %s kg -> BMI: %s
BP: %d/%d mmHg
Fasting Glucose: %d mg/dL, HbA1c: %s%%
Lipid Profile -> Total: %d, HDL: %d, LDL: %d, Triglycerides: %d
Lifestyle -> Smoker: %s, Alcohol: %s units/week, Activity: %s min/week
Notes: %s

Analyze this patient and respond in the required JSON format.`

// AnalysisLLM is the interface for generating a clinical analysis using an LLM.
type AnalysisLLM interface {
	// AnalyzePatient takes a patient record plus the precomputed BMI and
	// returns the provider's analysis, or an error wrapping one of the
	// sentinel errors above.
	AnalyzePatient(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error)
}

// OpenAIClient implements AnalysisLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for patient analysis.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: DefaultSystemPrompt,
	}
}

// SetSystemPrompt overrides the default system prompt, e.g. with one loaded
// from Langfuse prompt management. Empty prompts are ignored.
func (c *OpenAIClient) SetSystemPrompt(prompt string) {
	if c == nil || strings.TrimSpace(prompt) == "" {
		return
	}
	c.systemPrompt = prompt
}

// AnalyzePatient calls the provider once with the rendered prompt and parses
// the result. No retries are performed.
func (c *OpenAIClient) AnalyzePatient(ctx context.Context, patient *domain.PatientRecord, bmi float64) (*domain.AnalysisResult, error) {
	if c == nil {
		return nil, ErrLLMUnavailable
	}

	userPrompt := BuildUserPrompt(patient, bmi)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrLLMResponse)
	}

	return ParseAnalysis(resp.Choices[0].Message.Content)
}

// BuildUserPrompt renders the deterministic patient profile prompt. Absent
// optional fields render as "Not provided" or "None" so the prompt shape is
// stable regardless of input.
func BuildUserPrompt(patient *domain.PatientRecord, bmi float64) string {
	hba1c := "Not provided"
	if patient.HbA1c != nil {
		hba1c = fmt.Sprintf("%g", *patient.HbA1c)
	}

	smoker := "No"
	if patient.Smoker {
		smoker = "Yes"
	}

	alcohol := "Not provided"
	if patient.AlcoholUnitsPerWeek != nil {
		alcohol = fmt.Sprintf("%d", *patient.AlcoholUnitsPerWeek)
	}

	activity := "Not provided"
	if patient.PhysicalActivityMinPerWeek != nil {
		activity = fmt.Sprintf("%d", *patient.PhysicalActivityMinPerWeek)
	}

	notes := "None"
	if patient.Notes != nil && *patient.Notes != "" {
		notes = *patient.Notes
	}

	return fmt.Sprintf(userPromptTemplate,
		patient.Name, patient.Age, patient.Gender,
		fmt.Sprintf("%g", patient.HeightCm), fmt.Sprintf("%g", patient.WeightKg), fmt.Sprintf("%g", bmi),
		*patient.BPSystolic, *patient.BPDiastolic,
		*patient.FastingGlucose, hba1c,
		*patient.TotalCholesterol, *patient.HDL, *patient.LDL, *patient.Triglycerides,
		smoker, alcohol, activity,
		notes,
	)
}

// rawAnalysis mirrors AnalysisResult with pointer fields so missing keys can
// be told apart from zero values when validating the provider JSON.
type rawAnalysis struct {
	Summary                      *string            `json:"summary"`
	RiskScore                    *int               `json:"risk_score"`
	RiskBucket                   *domain.RiskBucket `json:"risk_bucket"`
	ContributingFactors          []string           `json:"contributing_factors"`
	PotentialFutureRisks         []string           `json:"potential_future_risks"`
	PersonalizedRecommendations  []string           `json:"personalized_recommendations"`
	RecommendedLifestylePrograms []string           `json:"recommended_lifestyle_programs"`
}

// ParseAnalysis strips any markdown code fences from the raw provider text,
// parses it as JSON, and validates every expected key field by field.
// Lifestyle programs outside the fixed catalog are dropped.
func ParseAnalysis(content string) (*domain.AnalysisResult, error) {
	text := StripCodeFences(content)

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMResponse, err)
	}

	if raw.Summary == nil || strings.TrimSpace(*raw.Summary) == "" {
		return nil, fmt.Errorf("%w: missing summary", ErrLLMResponse)
	}
	if raw.RiskScore == nil {
		return nil, fmt.Errorf("%w: missing risk_score", ErrLLMResponse)
	}
	if *raw.RiskScore < 0 || *raw.RiskScore > 100 {
		return nil, fmt.Errorf("%w: risk_score %d out of range", ErrLLMResponse, *raw.RiskScore)
	}
	if raw.RiskBucket == nil {
		return nil, fmt.Errorf("%w: missing risk_bucket", ErrLLMResponse)
	}
	if !raw.RiskBucket.IsValid() {
		return nil, fmt.Errorf("%w: unknown risk_bucket %q", ErrLLMResponse, *raw.RiskBucket)
	}
	if raw.ContributingFactors == nil {
		return nil, fmt.Errorf("%w: missing contributing_factors", ErrLLMResponse)
	}
	if raw.PotentialFutureRisks == nil {
		return nil, fmt.Errorf("%w: missing potential_future_risks", ErrLLMResponse)
	}
	if raw.PersonalizedRecommendations == nil {
		return nil, fmt.Errorf("%w: missing personalized_recommendations", ErrLLMResponse)
	}
	if raw.RecommendedLifestylePrograms == nil {
		return nil, fmt.Errorf("%w: missing recommended_lifestyle_programs", ErrLLMResponse)
	}

	programs := make([]string, 0, len(raw.RecommendedLifestylePrograms))
	for _, p := range raw.RecommendedLifestylePrograms {
		if domain.IsLifestyleProgram(p) {
			programs = append(programs, p)
		}
	}

	return &domain.AnalysisResult{
		Summary:                      *raw.Summary,
		RiskScore:                    *raw.RiskScore,
		RiskBucket:                   *raw.RiskBucket,
		ContributingFactors:          raw.ContributingFactors,
		PotentialFutureRisks:         raw.PotentialFutureRisks,
		PersonalizedRecommendations:  raw.PersonalizedRecommendations,
		RecommendedLifestylePrograms: programs,
	}, nil
}

// StripCodeFences removes a wrapping markdown code fence (```json ... ``` or
// ``` ... ```) that some providers add around JSON output.
func StripCodeFences(s string) string {
	text := strings.TrimSpace(s)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
