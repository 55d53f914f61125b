package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dentadesk/dentadesk/internal/storage"
	"github.com/dentadesk/dentadesk/libs/db"
	"github.com/dentadesk/dentadesk/libs/httpx"
)

// Handler is the request bridge: one method per named call, each a pure
// delegation to a repository function. Field-shape validation happens here
// at the boundary; everything below trusts the schema.
type Handler struct {
	patients        *storage.PatientRepository
	appointments    *storage.AppointmentRepository
	clinicalRecords *storage.ClinicalRecordRepository
	payments        *storage.PaymentRepository
	treatments      *storage.TreatmentRepository
	logger          *slog.Logger
}

func New(
	patients *storage.PatientRepository,
	appointments *storage.AppointmentRepository,
	clinicalRecords *storage.ClinicalRecordRepository,
	payments *storage.PaymentRepository,
	treatments *storage.TreatmentRepository,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		patients:        patients,
		appointments:    appointments,
		clinicalRecords: clinicalRecords,
		payments:        payments,
		treatments:      treatments,
		logger:          logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// storeError maps repository failures onto the bridge: constraint
// violations are a rejected operation, everything else is opaque. The log
// line is the only diagnostic surface the workstation has.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	h.logger.Error(action+" failed",
		"err", err,
		"request_id", httpx.RequestIDFromContext(r.Context()),
	)
	if db.IsConstraint(err) {
		http.Error(w, "operation rejected by a database constraint", http.StatusConflict)
		return
	}
	http.Error(w, "failed to "+action, http.StatusInternalServerError)
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	return id, err == nil && id > 0
}
