package model

// Patient is a clinic patient. Name is derived ("first last") and produced
// by the storage layer for display; it is never stored.
type Patient struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DNI          string `json:"dni"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BirthDate    string `json:"birth_date"`
	MedicalNotes string `json:"medical_notes"`
	CreatedAt    string `json:"created_at"`
	Name         string `json:"name"`
}
