package model

// Payment is one payment logged against a patient. Amount is in integer
// currency units; Method is a free label ("cash", "card", ...).
type Payment struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
	Method    string `json:"method"`
	Notes     string `json:"notes"`
}
