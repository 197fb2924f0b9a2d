package domain

import "fmt"

// PatientRecord is the request body for the analyze endpoint.
// @Description Structured patient health data: identity, anthropometrics, vitals, lipid panel, and lifestyle.
type PatientRecord struct {
	// External patient identifier
	PatientID string `json:"patient_id" validate:"required" example:"P-10234"`
	// Patient full name
	Name string `json:"name" validate:"required" example:"Jane Doe"`
	// Age in years
	Age int `json:"age" validate:"required,gt=0" example:"52" minimum:"1"`
	// Gender as reported
	Gender string `json:"gender" validate:"required" example:"female"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"required,gt=0" example:"175"`
	// Weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0" example:"70"`

	// Vitals and lipids are pointers so a reading of zero is distinguishable
	// from a missing field: required checks presence, gte checks the value.

	// Systolic blood pressure in mmHg
	BPSystolic *int `json:"bp_systolic" validate:"required,gte=0" example:"138"`
	// Diastolic blood pressure in mmHg
	BPDiastolic *int `json:"bp_diastolic" validate:"required,gte=0" example:"88"`
	// Fasting glucose in mg/dL
	FastingGlucose *int `json:"fasting_glucose" validate:"required,gte=0" example:"104"`
	// Optional HbA1c percentage
	HbA1c *float64 `json:"hba1c,omitempty" validate:"omitempty,gte=0" example:"5.9"`

	// Total cholesterol in mg/dL
	TotalCholesterol *int `json:"total_cholesterol" validate:"required,gte=0" example:"210"`
	// HDL cholesterol in mg/dL
	HDL *int `json:"hdl" validate:"required,gte=0" example:"48"`
	// LDL cholesterol in mg/dL
	LDL *int `json:"ldl" validate:"required,gte=0" example:"132"`
	// Triglycerides in mg/dL
	Triglycerides *int `json:"triglycerides" validate:"required,gte=0" example:"160"`

	// Current smoker flag
	Smoker bool `json:"smoker" example:"false"`
	// Optional alcohol consumption in units per week
	AlcoholUnitsPerWeek *int `json:"alcohol_units_per_week,omitempty" validate:"omitempty,gte=0" example:"4"`
	// Optional physical activity in minutes per week
	PhysicalActivityMinPerWeek *int `json:"physical_activity_min_per_week,omitempty" validate:"omitempty,gte=0" example:"120"`
	// Optional free-text clinical notes
	Notes *string `json:"notes,omitempty" example:"Family history of type 2 diabetes"`
}

// BPString formats the blood pressure reading for display, e.g. "138/88 mmHg".
// The formatting methods assume a validated record with all vitals present.
func (p *PatientRecord) BPString() string {
	return fmt.Sprintf("%d/%d mmHg", *p.BPSystolic, *p.BPDiastolic)
}

// GlucoseHbA1cString formats fasting glucose and HbA1c for display,
// e.g. "104 mg/dL (HbA1c 5.9%)". HbA1c renders as "N/A" when not provided.
func (p *PatientRecord) GlucoseHbA1cString() string {
	hba1c := "N/A"
	if p.HbA1c != nil {
		hba1c = trimFloat(*p.HbA1c)
	}
	return fmt.Sprintf("%d mg/dL (HbA1c %s%%)", *p.FastingGlucose, hba1c)
}

// LipidProfileString formats the lipid panel for display,
// e.g. "Total: 210, HDL: 48, LDL: 132, Trig: 160".
func (p *PatientRecord) LipidProfileString() string {
	return fmt.Sprintf("Total: %d, HDL: %d, LDL: %d, Trig: %d",
		*p.TotalCholesterol, *p.HDL, *p.LDL, *p.Triglycerides)
}

// trimFloat renders a float without trailing zeros (5.90 -> "5.9", 6.00 -> "6").
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
