package validation

import (
	"testing"

	"github.com/blaisecz/clinical-assistant/internal/domain"
)

func intPtr(v int) *int { return &v }

func validRecord() domain.PatientRecord {
	return domain.PatientRecord{
		PatientID:        "P-1",
		Name:             "Jane Doe",
		Age:              52,
		Gender:           "female",
		HeightCm:         175,
		WeightKg:         70,
		BPSystolic:       intPtr(138),
		BPDiastolic:      intPtr(88),
		FastingGlucose:   intPtr(104),
		TotalCholesterol: intPtr(210),
		HDL:              intPtr(48),
		LDL:              intPtr(132),
		Triglycerides:    intPtr(160),
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	if errs := Validate(validRecord()); errs != nil {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidate_ZeroVitalsAreValid(t *testing.T) {
	// A reading of zero is a present, non-negative value and must pass.
	record := validRecord()
	record.BPDiastolic = intPtr(0)
	record.FastingGlucose = intPtr(0)
	record.HDL = intPtr(0)

	if errs := Validate(record); errs != nil {
		t.Fatalf("zero vitals must be accepted, got %+v", errs)
	}
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	errs := Validate(domain.PatientRecord{})
	if errs == nil {
		t.Fatal("expected validation errors for empty record")
	}

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Message
	}

	for _, want := range []string{"patient_id", "name", "age", "height_cm", "weight_kg", "bp_systolic", "fasting_glucose"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("expected error for field %q, got %v", want, fields)
		}
	}
}

func TestValidate_NegativeVitals(t *testing.T) {
	record := validRecord()
	record.FastingGlucose = intPtr(-10)

	errs := Validate(record)
	if errs == nil {
		t.Fatal("expected validation error for negative glucose")
	}
	if errs[0].Field != "fasting_glucose" {
		t.Errorf("field = %q, want fasting_glucose", errs[0].Field)
	}
}
