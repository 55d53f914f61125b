package model

// Appointment statuses. The schema defaults new rows to pending.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusAbsent    = "absent"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusAbsent:
		return true
	}
	return false
}

// Appointment is one agenda entry. Date is "YYYY-MM-DD", Time "HH:MM";
// PatientName is joined in on reads.
type Appointment struct {
	ID          int64  `json:"id"`
	PatientID   int64  `json:"patient_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	PatientName string `json:"patient_name,omitempty"`
}
