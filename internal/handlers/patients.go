package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

func (h *Handler) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patients.List(r.Context())
	if err != nil {
		h.storeError(w, r, "list patients", err)
		return
	}
	if patients == nil {
		patients = []model.Patient{}
	}
	writeJSON(w, http.StatusOK, patients)
}

func (h *Handler) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	p, err := h.patients.GetByID(r.Context(), id)
	if db.IsNotFound(err) {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.storeError(w, r, "get patient", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) GetPatientByDNI(w http.ResponseWriter, r *http.Request) {
	dni := strings.TrimSpace(r.URL.Query().Get("dni"))
	if dni == "" {
		http.Error(w, "dni is required", http.StatusBadRequest)
		return
	}
	p, err := h.patients.GetByDNI(r.Context(), dni)
	if db.IsNotFound(err) {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.storeError(w, r, "get patient", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) decodePatient(w http.ResponseWriter, r *http.Request) (model.Patient, bool) {
	var p model.Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return model.Patient{}, false
	}
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.DNI = strings.TrimSpace(p.DNI)
	if p.FirstName == "" || p.LastName == "" {
		http.Error(w, "first_name and last_name are required", http.StatusBadRequest)
		return model.Patient{}, false
	}
	return p, true
}

func (h *Handler) AddPatient(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePatient(w, r)
	if !ok {
		return
	}
	res, err := h.patients.Create(r.Context(), p)
	if err != nil {
		h.storeError(w, r, "add patient", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePatient(w, r)
	if !ok {
		return
	}
	if p.ID <= 0 {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.patients.Update(r.Context(), p)
	if err != nil {
		h.storeError(w, r, "update patient", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.patients.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete patient", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
