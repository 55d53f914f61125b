package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dentadesk/dentadesk/internal/model"
)

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if !validDate(startDate) || !validDate(endDate) {
		http.Error(w, "start_date and end_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	appts, err := h.appointments.ListByDateRange(r.Context(), startDate, endDate)
	if err != nil {
		h.storeError(w, r, "list appointments", err)
		return
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *Handler) AddAppointment(w http.ResponseWriter, r *http.Request) {
	var a model.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	a.Status = strings.TrimSpace(a.Status)
	if a.Status == "" {
		a.Status = model.StatusPending
	}
	if a.PatientID <= 0 || !validDate(a.Date) || !validClock(a.Time) {
		http.Error(w, "patient_id, date (YYYY-MM-DD) and time (HH:MM) are required", http.StatusBadRequest)
		return
	}
	if !model.ValidStatus(a.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	res, err := h.appointments.Create(r.Context(), a)
	if err != nil {
		h.storeError(w, r, "add appointment", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if req.ID <= 0 {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	if !model.ValidStatus(req.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	res, err := h.appointments.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		h.storeError(w, r, "update appointment status", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.appointments.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete appointment", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
