package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/clinical-assistant/internal/api/validation"
	"github.com/blaisecz/clinical-assistant/internal/domain"
	"github.com/blaisecz/clinical-assistant/internal/langfuse"
	"github.com/blaisecz/clinical-assistant/internal/service"
	"github.com/blaisecz/clinical-assistant/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// AnalyzeHandler handles the patient analysis endpoints.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
	langfuseClient  langfuse.Client
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService, langfuseClient langfuse.Client) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		langfuseClient:  langfuseClient,
	}
}

// HomeResponse is the readiness message returned from the root endpoint.
// @Description Static readiness message describing how to use the API.
type HomeResponse struct {
	// Human-readable readiness message
	Message string `json:"message" example:"AI Clinical Assistant Ready!"`
	// Path to send patient data to
	SendPostTo string `json:"send_POST_to" example:"/analyze"`
	// Where to find a sample request body
	Example string `json:"example" example:"See /swagger for a sample JSON input"`
}

// Home handles GET /
// @Summary API readiness message
// @Description Static message pointing callers at the analyze endpoint.
// @Tags analysis
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func (h *AnalyzeHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HomeResponse{
		Message:    "AI Clinical Assistant Ready!",
		SendPostTo: "/analyze",
		Example:    "See /swagger for a sample JSON input",
	})
}

// Analyze handles POST /analyze
// @Summary Analyze a patient record
// @Description Compute BMI, run an AI clinical analysis, and return the merged summary. Always returns 200 for valid input: provider failures are absorbed into a static fallback analysis.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.PatientRecord true "Patient health data"
// @Success 200 {object} domain.ClinicalSummaryResponse "Clinical summary"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Missing or invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var record domain.PatientRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(record); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), &record)
	if err != nil {
		problem.InternalError("Failed to analyze patient").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for analysis feedback.
// @Description Request body for submitting feedback on a clinical summary.
type FeedbackRequest struct {
	// Trace ID from the analyze response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The recommendations were actionable."`
}

// PostFeedback handles POST /analyze/feedback
// @Summary Submit feedback on a clinical summary
// @Description Submit a rating and optional comment for a previous analyze response.
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /analyze/feedback [post]
func (h *AnalyzeHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged inside the client but never fail the request
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
