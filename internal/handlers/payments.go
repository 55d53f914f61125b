package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dentadesk/dentadesk/internal/model"
)

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDParam(r)
	if !ok {
		http.Error(w, "patient_id is required", http.StatusBadRequest)
		return
	}
	payments, err := h.payments.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.storeError(w, r, "list payments", err)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var p model.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if p.PatientID <= 0 {
		http.Error(w, "patient_id is required", http.StatusBadRequest)
		return
	}
	if p.Amount < 0 {
		http.Error(w, "amount must not be negative", http.StatusBadRequest)
		return
	}
	p.Method = strings.TrimSpace(p.Method)
	if p.Method == "" {
		p.Method = "cash"
	}
	res, err := h.payments.Create(r.Context(), p)
	if err != nil {
		h.storeError(w, r, "add payment", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.payments.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete payment", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
