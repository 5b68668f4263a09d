package store

import (
	"testing"

	"medconnect/internal/model"
)

func seedState() State {
	return State{
		Doctors: []model.Doctor{
			{ID: "d1", Name: "Dr. A", Fees: 100, AvailableSlots: []string{"09:00"}},
			{ID: "d2", Name: "Dr. B", Fees: 150},
		},
		Appointments: []model.Appointment{
			{ID: "a1", DoctorID: "d1", PatientID: "p1", Status: model.StatusScheduled},
		},
	}
}

func TestApplyAddDoctor(t *testing.T) {
	s := seedState()
	next := Apply(s, AddDoctor{Doctor: model.Doctor{ID: "d3", Name: "Dr. C"}})

	if len(next.Doctors) != 3 {
		t.Fatalf("expected 3 doctors, got %d", len(next.Doctors))
	}
	if len(s.Doctors) != 2 {
		t.Error("Apply mutated its input state")
	}
}

func TestApplyUpdateDoctor(t *testing.T) {
	name := "Dr. Renamed"
	fees := 175.0

	tests := []struct {
		name     string
		cmd      UpdateDoctor
		wantName string
		wantFees float64
	}{
		{"merge both fields", UpdateDoctor{ID: "d1", Patch: DoctorPatch{Name: &name, Fees: &fees}}, "Dr. Renamed", 175},
		{"merge name only", UpdateDoctor{ID: "d1", Patch: DoctorPatch{Name: &name}}, "Dr. Renamed", 100},
		{"unknown id is a no-op", UpdateDoctor{ID: "nope", Patch: DoctorPatch{Name: &name}}, "Dr. A", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Apply(seedState(), tt.cmd)
			d := next.Doctors[0]
			if d.Name != tt.wantName || d.Fees != tt.wantFees {
				t.Errorf("got %q/%v, want %q/%v", d.Name, d.Fees, tt.wantName, tt.wantFees)
			}
		})
	}
}

func TestApplyDeleteDoctorKeepsAppointments(t *testing.T) {
	next := Apply(seedState(), DeleteDoctor{ID: "d1"})

	if len(next.Doctors) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(next.Doctors))
	}
	// deleting the doctor leaves the appointment's reference dangling
	if len(next.Appointments) != 1 || next.Appointments[0].DoctorID != "d1" {
		t.Error("expected appointment referencing the deleted doctor to survive")
	}
}

func TestApplyDeleteDoctorUnknownID(t *testing.T) {
	s := seedState()
	next := Apply(s, DeleteDoctor{ID: "nope"})
	if len(next.Doctors) != len(s.Doctors) {
		t.Error("unknown delete should be a no-op")
	}
}

func TestApplyCancelAppointment(t *testing.T) {
	s := seedState()

	next := Apply(s, CancelAppointment{ID: "a1"})
	if next.Appointments[0].Status != model.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", next.Appointments[0].Status)
	}

	// idempotent: cancelling again changes nothing
	again := Apply(next, CancelAppointment{ID: "a1"})
	if again.Appointments[0].Status != model.StatusCancelled {
		t.Error("second cancel should leave status cancelled")
	}

	// a completed appointment is terminal too
	s.Appointments[0].Status = model.StatusCompleted
	done := Apply(s, CancelAppointment{ID: "a1"})
	if done.Appointments[0].Status != model.StatusCompleted {
		t.Error("cancel must not touch a completed appointment")
	}
}

func TestApplyCancelUnknownID(t *testing.T) {
	s := seedState()
	next := Apply(s, CancelAppointment{ID: "nonexistent-id"})
	if next.Appointments[0].Status != model.StatusScheduled {
		t.Error("cancel of unknown id should be a no-op")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := seedState()
	Apply(s, CancelAppointment{ID: "a1"})
	if s.Appointments[0].Status != model.StatusScheduled {
		t.Error("Apply mutated the input appointment set")
	}
}
