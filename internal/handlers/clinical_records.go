package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dentadesk/dentadesk/internal/model"
)

func patientIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("patient_id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) GetClinicalRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDParam(r)
	if !ok {
		http.Error(w, "patient_id is required", http.StatusBadRequest)
		return
	}
	records, err := h.clinicalRecords.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.storeError(w, r, "list clinical records", err)
		return
	}
	if records == nil {
		records = []model.ClinicalRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) AddClinicalRecord(w http.ResponseWriter, r *http.Request) {
	var rec model.ClinicalRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	rec.Description = strings.TrimSpace(rec.Description)
	if rec.PatientID <= 0 || rec.Description == "" {
		http.Error(w, "patient_id and description are required", http.StatusBadRequest)
		return
	}
	if rec.Cost < 0 {
		http.Error(w, "cost must not be negative", http.StatusBadRequest)
		return
	}
	res, err := h.clinicalRecords.Create(r.Context(), rec)
	if err != nil {
		h.storeError(w, r, "add clinical record", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) DeleteClinicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.clinicalRecords.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete clinical record", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
