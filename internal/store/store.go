// Package store is the domain state container for doctors and
// appointments. All mutations travel as commands through the pure Apply
// reducer; persistence of the appointment set happens afterwards as an
// observer step, never inside a transition.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medconnect/internal/catalog"
	"medconnect/internal/model"
	"medconnect/internal/storage"
)

type Store struct {
	mu    sync.Mutex
	state State
	kv    storage.Storage
	log   *zap.Logger
}

// New seeds the store. Doctors always come from the built-in catalog;
// appointments come from the persisted snapshot when one parses. A
// corrupt snapshot is logged and discarded, never surfaced.
func New(ctx context.Context, kv storage.Storage, log *zap.Logger) *Store {
	s := &Store{kv: kv, log: log}
	s.state = Apply(s.state, SetDoctors{Doctors: catalog.Doctors()})

	raw, err := kv.Get(ctx, storage.KeyAppointments)
	switch {
	case err == nil:
		var appts []model.Appointment
		if jerr := json.Unmarshal([]byte(raw), &appts); jerr != nil {
			log.Warn("discarding unreadable appointment snapshot", zap.Error(jerr))
		} else {
			s.state = Apply(s.state, SetAppointments{Appointments: appts})
		}
	case errors.Is(err, storage.ErrNotFound):
		// first run, nothing to load
	default:
		log.Warn("could not load appointment snapshot", zap.Error(err))
	}
	return s
}

// dispatch runs a command through the reducer, then persists the full
// appointment set if the command touched it.
func (s *Store) dispatch(ctx context.Context, c Command) {
	s.mu.Lock()
	s.state = Apply(s.state, c)
	appts := s.state.Appointments
	s.mu.Unlock()

	switch c.(type) {
	case AddAppointment, CancelAppointment:
		s.persist(ctx, appts)
	}
}

func (s *Store) persist(ctx context.Context, appts []model.Appointment) {
	raw, err := json.Marshal(appts)
	if err != nil {
		s.log.Warn("could not serialize appointments", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, storage.KeyAppointments, string(raw)); err != nil {
		s.log.Warn("could not persist appointments", zap.Error(err))
	}
}

// AddDoctor assigns a fresh id and creation timestamp and appends the
// record to the catalog. There is no error path.
func (s *Store) AddDoctor(ctx context.Context, d model.Doctor) model.Doctor {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now()
	s.dispatch(ctx, AddDoctor{Doctor: d})
	return d
}

// UpdateDoctor merges the patch into the matching record. Unknown ids
// are a silent no-op.
func (s *Store) UpdateDoctor(ctx context.Context, id string, patch DoctorPatch) {
	s.dispatch(ctx, UpdateDoctor{ID: id, Patch: patch})
}

// DeleteDoctor removes the matching record. Unknown ids are a silent
// no-op, and appointments referencing the doctor keep their dangling id.
func (s *Store) DeleteDoctor(ctx context.Context, id string) {
	s.dispatch(ctx, DeleteDoctor{ID: id})
}

func (s *Store) GetDoctorByID(id string) (model.Doctor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.state.Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return model.Doctor{}, false
}

func (s *Store) Doctors() []model.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDoctors(s.state.Doctors)
}

// BookAppointment assigns a fresh id, forces status to scheduled, stamps
// the creation time and appends the record. No conflict check is made:
// two identical bookings both succeed.
func (s *Store) BookAppointment(ctx context.Context, a model.Appointment) model.Appointment {
	a.ID = uuid.New().String()
	a.Status = model.StatusScheduled
	a.CreatedAt = time.Now()
	s.dispatch(ctx, AddAppointment{Appointment: a})
	return a
}

// CancelAppointment moves the matching record to cancelled unless it is
// already terminal. Idempotent; unknown ids are a silent no-op.
func (s *Store) CancelAppointment(ctx context.Context, id string) {
	s.dispatch(ctx, CancelAppointment{ID: id})
}

func (s *Store) Appointments() []model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyAppointments(s.state.Appointments)
}

func (s *Store) AppointmentsForPatient(patientID string) []model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Appointment
	for _, a := range s.state.Appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

// HasScheduled reports whether a scheduled appointment already occupies
// the doctor/date/time slot. Used only by opt-in conflict checking.
func (s *Store) HasScheduled(doctorID, date, timeLabel string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.state.Appointments {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeLabel && a.Status == model.StatusScheduled {
			return true
		}
	}
	return false
}
