package handlers

import "net/http"

// Register wires every named call onto the mux. Each route delegates to
// exactly one repository operation; there is no other logic to find here.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/patients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetPatients(w, r)
		case http.MethodPost:
			h.AddPatient(w, r)
		case http.MethodPut:
			h.UpdatePatient(w, r)
		case http.MethodDelete:
			h.DeletePatient(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/patients/by-id", requireGet(h.GetPatientByID))
	mux.HandleFunc("/api/v1/patients/by-dni", requireGet(h.GetPatientByDNI))

	mux.HandleFunc("/api/v1/appointments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetAppointments(w, r)
		case http.MethodPost:
			h.AddAppointment(w, r)
		case http.MethodDelete:
			h.DeleteAppointment(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/appointments/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.UpdateAppointmentStatus(w, r)
	})

	mux.HandleFunc("/api/v1/clinical-records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetClinicalRecords(w, r)
		case http.MethodPost:
			h.AddClinicalRecord(w, r)
		case http.MethodDelete:
			h.DeleteClinicalRecord(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/treatments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetTreatments(w, r)
		case http.MethodPost:
			h.AddTreatment(w, r)
		case http.MethodPut:
			h.UpdateTreatment(w, r)
		case http.MethodDelete:
			h.DeleteTreatment(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/payments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetPayments(w, r)
		case http.MethodPost:
			h.AddPayment(w, r)
		case http.MethodDelete:
			h.DeletePayment(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func requireGet(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	}
}
