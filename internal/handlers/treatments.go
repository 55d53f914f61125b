package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dentadesk/dentadesk/internal/model"
)

func (h *Handler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatments.List(r.Context())
	if err != nil {
		h.storeError(w, r, "list treatments", err)
		return
	}
	if treatments == nil {
		treatments = []model.Treatment{}
	}
	writeJSON(w, http.StatusOK, treatments)
}

func (h *Handler) decodeTreatment(w http.ResponseWriter, r *http.Request) (model.Treatment, bool) {
	var t model.Treatment
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return model.Treatment{}, false
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return model.Treatment{}, false
	}
	if t.DefaultPrice < 0 {
		http.Error(w, "default_price must not be negative", http.StatusBadRequest)
		return model.Treatment{}, false
	}
	return t, true
}

func (h *Handler) AddTreatment(w http.ResponseWriter, r *http.Request) {
	t, ok := h.decodeTreatment(w, r)
	if !ok {
		return
	}
	res, err := h.treatments.Create(r.Context(), t)
	if err != nil {
		h.storeError(w, r, "add treatment", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	t, ok := h.decodeTreatment(w, r)
	if !ok {
		return
	}
	if t.ID <= 0 {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.treatments.Update(r.Context(), t)
	if err != nil {
		h.storeError(w, r, "update treatment", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	res, err := h.treatments.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete treatment", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
