package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/internal/storage"
	"github.com/dentadesk/dentadesk/libs/db"
)

func newTestBridge(t *testing.T) *http.ServeMux {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dental.db")
	d, err := db.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := storage.Migrate(context.Background(), d, logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	h := New(
		storage.NewPatientRepository(d),
		storage.NewAppointmentRepository(d),
		storage.NewClinicalRecordRepository(d),
		storage.NewPaymentRepository(d),
		storage.NewTreatmentRepository(d),
		logger,
	)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)
	return rw
}

func decodeWriteResult(t *testing.T, rw *httptest.ResponseRecorder) model.WriteResult {
	t.Helper()
	var res model.WriteResult
	if err := json.NewDecoder(rw.Body).Decode(&res); err != nil {
		t.Fatalf("decode write result: %v", err)
	}
	return res
}

func TestAgendaScenario(t *testing.T) {
	mux := newTestBridge(t)

	rw := doJSON(t, mux, http.MethodPost, "/api/v1/patients", map[string]any{
		"first_name": "Ana", "last_name": "Gomez", "dni": "30111222",
	})
	if rw.Code != http.StatusCreated {
		t.Fatalf("add-patient: expected 201, got %d (%s)", rw.Code, rw.Body.String())
	}
	patientID := decodeWriteResult(t, rw).LastInsertID
	if patientID <= 0 {
		t.Fatalf("expected an assigned patient id, got %d", patientID)
	}

	rw = doJSON(t, mux, http.MethodPost, "/api/v1/appointments", map[string]any{
		"patient_id": patientID, "date": "2024-03-01", "time": "09:00", "status": "pending",
	})
	if rw.Code != http.StatusCreated {
		t.Fatalf("add-appointment: expected 201, got %d (%s)", rw.Code, rw.Body.String())
	}

	rw = doJSON(t, mux, http.MethodGet, "/api/v1/appointments?start_date=2024-03-01&end_date=2024-03-01", nil)
	if rw.Code != http.StatusOK {
		t.Fatalf("get-appointments: expected 200, got %d", rw.Code)
	}
	var appts []model.Appointment
	if err := json.NewDecoder(rw.Body).Decode(&appts); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appts))
	}
	if appts[0].PatientName != "Ana Gomez" || appts[0].Status != "pending" {
		t.Fatalf("unexpected appointment row: %+v", appts[0])
	}
}

func TestCompleteAppointmentThroughBridge(t *testing.T) {
	mux := newTestBridge(t)

	patientID := decodeWriteResult(t, doJSON(t, mux, http.MethodPost, "/api/v1/patients", map[string]any{
		"first_name": "Juan", "last_name": "Perez",
	})).LastInsertID
	apptID := decodeWriteResult(t, doJSON(t, mux, http.MethodPost, "/api/v1/appointments", map[string]any{
		"patient_id": patientID, "date": "2024-03-01", "time": "10:00",
	})).LastInsertID

	rw := doJSON(t, mux, http.MethodPut, "/api/v1/appointments/status", map[string]any{
		"id": apptID, "status": "completed",
	})
	if rw.Code != http.StatusOK {
		t.Fatalf("update-appointment-status: expected 200, got %d (%s)", rw.Code, rw.Body.String())
	}

	rw = doJSON(t, mux, http.MethodGet, "/api/v1/appointments?start_date=2024-03-01&end_date=2024-03-01", nil)
	var appts []model.Appointment
	if err := json.NewDecoder(rw.Body).Decode(&appts); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if appts[0].Status != "completed" || appts[0].Time != "10:00" {
		t.Fatalf("status update lost fields: %+v", appts[0])
	}
}

func TestDuplicateDNIIsConflict(t *testing.T) {
	mux := newTestBridge(t)

	body := map[string]any{"first_name": "Ana", "last_name": "Gomez", "dni": "30111222"}
	if rw := doJSON(t, mux, http.MethodPost, "/api/v1/patients", body); rw.Code != http.StatusCreated {
		t.Fatalf("first insert: expected 201, got %d", rw.Code)
	}
	rw := doJSON(t, mux, http.MethodPost, "/api/v1/patients", map[string]any{
		"first_name": "Otra", "last_name": "Persona", "dni": "30111222",
	})
	if rw.Code != http.StatusConflict {
		t.Fatalf("duplicate dni: expected 409, got %d", rw.Code)
	}
}

func TestPatientLookups(t *testing.T) {
	mux := newTestBridge(t)

	if rw := doJSON(t, mux, http.MethodGet, "/api/v1/patients/by-dni?dni=30111222", nil); rw.Code != http.StatusNotFound {
		t.Fatalf("unknown dni: expected 404, got %d", rw.Code)
	}

	patientID := decodeWriteResult(t, doJSON(t, mux, http.MethodPost, "/api/v1/patients", map[string]any{
		"first_name": "Ana", "last_name": "Gomez", "dni": "30111222",
	})).LastInsertID

	rw := doJSON(t, mux, http.MethodGet, "/api/v1/patients/by-dni?dni=30111222", nil)
	if rw.Code != http.StatusOK {
		t.Fatalf("by-dni: expected 200, got %d", rw.Code)
	}
	var p model.Patient
	if err := json.NewDecoder(rw.Body).Decode(&p); err != nil {
		t.Fatalf("decode patient: %v", err)
	}
	if p.ID != patientID || p.Name != "Ana Gomez" {
		t.Fatalf("unexpected patient: %+v", p)
	}

	if rw := doJSON(t, mux, http.MethodGet, "/api/v1/patients/by-id?id=999", nil); rw.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rw.Code)
	}
}

func TestBoundaryValidation(t *testing.T) {
	mux := newTestBridge(t)

	cases := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"patient without last name", http.MethodPost, "/api/v1/patients", map[string]any{"first_name": "Ana"}},
		{"appointment without date", http.MethodPost, "/api/v1/appointments", map[string]any{"patient_id": 1, "time": "09:00"}},
		{"appointment with bad time", http.MethodPost, "/api/v1/appointments", map[string]any{"patient_id": 1, "date": "2024-03-01", "time": "9am"}},
		{"status outside the enum", http.MethodPut, "/api/v1/appointments/status", map[string]any{"id": 1, "status": "rescheduled"}},
		{"negative payment", http.MethodPost, "/api/v1/payments", map[string]any{"patient_id": 1, "amount": -5}},
		{"negative treatment price", http.MethodPost, "/api/v1/treatments", map[string]any{"name": "Limpieza", "default_price": -1}},
		{"record without description", http.MethodPost, "/api/v1/clinical-records", map[string]any{"patient_id": 1, "cost": 100}},
		{"appointments without range", http.MethodGet, "/api/v1/appointments", nil},
		{"delete without id", http.MethodDelete, "/api/v1/patients", nil},
	}
	for _, tc := range cases {
		if rw := doJSON(t, mux, tc.method, tc.target, tc.body); rw.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rw.Code)
		}
	}
}

func TestMethodDispatch(t *testing.T) {
	mux := newTestBridge(t)

	if rw := doJSON(t, mux, http.MethodPatch, "/api/v1/patients", nil); rw.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rw.Code)
	}
	if rw := doJSON(t, mux, http.MethodPost, "/api/v1/patients/by-dni?dni=1", nil); rw.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rw.Code)
	}
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	mux := newTestBridge(t)

	for _, target := range []string{
		"/api/v1/patients",
		"/api/v1/treatments",
		"/api/v1/payments?patient_id=1",
		"/api/v1/clinical-records?patient_id=1",
		"/api/v1/appointments?start_date=2024-03-01&end_date=2024-03-01",
	} {
		rw := doJSON(t, mux, http.MethodGet, target, nil)
		if rw.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rw.Code)
		}
		body := bytes.TrimSpace(rw.Body.Bytes())
		if len(body) == 0 || body[0] != '[' {
			t.Fatalf("%s: expected a JSON array, got %s", target, body)
		}
	}
}
