package storage

import (
	"context"
	"testing"

	"github.com/dentadesk/dentadesk/internal/model"
	"github.com/dentadesk/dentadesk/libs/db"
)

func TestListByDateRangeFiltersAndOrders(t *testing.T) {
	d := newTestDB(t)
	repo := NewAppointmentRepository(d)
	id := mustCreatePatient(t, d, model.Patient{FirstName: "Ana", LastName: "Gomez"})

	for _, a := range []model.Appointment{
		{PatientID: id, Date: "2024-03-01", Time: "11:30", Status: model.StatusPending},
		{PatientID: id, Date: "2024-03-01", Time: "09:00", Status: model.StatusPending},
		{PatientID: id, Date: "2024-03-02", Time: "08:00", Status: model.StatusPending},
		{PatientID: id, Date: "2024-02-29", Time: "16:00", Status: model.StatusPending},
	} {
		if _, err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("create %s %s: %v", a.Date, a.Time, err)
		}
	}

	day, err := repo.ListByDateRange(context.Background(), "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("expected 2 appointments on the day, got %d", len(day))
	}
	if day[0].Time != "09:00" || day[1].Time != "11:30" {
		t.Fatalf("expected ascending time order, got %s then %s", day[0].Time, day[1].Time)
	}

	week, err := repo.ListByDateRange(context.Background(), "2024-02-29", "2024-03-02")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(week) != 4 {
		t.Fatalf("expected 4 appointments in range, got %d", len(week))
	}
	if week[0].Date != "2024-02-29" || week[3].Date != "2024-03-02" {
		t.Fatalf("expected ascending date order, got %s ... %s", week[0].Date, week[3].Date)
	}
}

func TestListJoinsPatientDisplayName(t *testing.T) {
	d := newTestDB(t)
	repo := NewAppointmentRepository(d)
	id := mustCreatePatient(t, d, model.Patient{FirstName: "Ana", LastName: "Gomez", DNI: "30111222"})

	if _, err := repo.Create(context.Background(), model.Appointment{
		PatientID: id, Date: "2024-03-01", Time: "09:00", Status: model.StatusPending,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	appts, err := repo.ListByDateRange(context.Background(), "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appts))
	}
	if appts[0].PatientName != "Ana Gomez" {
		t.Fatalf("expected patient_name %q, got %q", "Ana Gomez", appts[0].PatientName)
	}
	if appts[0].Status != model.StatusPending {
		t.Fatalf("expected status pending, got %q", appts[0].Status)
	}
}

func TestUpdateStatusLeavesOtherFieldsUnchanged(t *testing.T) {
	d := newTestDB(t)
	repo := NewAppointmentRepository(d)
	id := mustCreatePatient(t, d, model.Patient{FirstName: "Ana", LastName: "Gomez"})

	res, err := repo.Create(context.Background(), model.Appointment{
		PatientID: id, Date: "2024-03-01", Time: "09:00", Status: model.StatusPending, Notes: "control",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.UpdateStatus(context.Background(), res.LastInsertID, model.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	appts, err := repo.ListByDateRange(context.Background(), "2024-03-01", "2024-03-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	a := appts[0]
	if a.Status != model.StatusCompleted {
		t.Fatalf("expected status completed, got %q", a.Status)
	}
	if a.PatientID != id || a.Date != "2024-03-01" || a.Time != "09:00" || a.Notes != "control" {
		t.Fatalf("other fields changed: %+v", a)
	}
}

func TestCreateForUnknownPatientIsRejected(t *testing.T) {
	d := newTestDB(t)
	repo := NewAppointmentRepository(d)

	_, err := repo.Create(context.Background(), model.Appointment{
		PatientID: 12345, Date: "2024-03-01", Time: "09:00", Status: model.StatusPending,
	})
	if err == nil {
		t.Fatal("expected foreign key rejection")
	}
	if !db.IsConstraint(err) {
		t.Fatalf("expected a constraint violation, got: %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	d := newTestDB(t)
	repo := NewAppointmentRepository(d)
	id := mustCreatePatient(t, d, model.Patient{FirstName: "Ana", LastName: "Gomez"})

	res, err := repo.Create(context.Background(), model.Appointment{
		PatientID: id, Date: "2024-03-01", Time: "09:00", Status: model.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	del, err := repo.Delete(context.Background(), res.LastInsertID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if del.RowsAffected != 1 {
		t.Fatalf("expected 1 row affected, got %d", del.RowsAffected)
	}
}
