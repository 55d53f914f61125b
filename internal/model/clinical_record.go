package model

// ClinicalRecord is one entry in a patient's clinical history. Cost is in
// integer currency units. TreatmentID is informational and optional.
type ClinicalRecord struct {
	ID          int64  `json:"id"`
	PatientID   int64  `json:"patient_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	TreatmentID *int64 `json:"treatment_id,omitempty"`
}
