package store

import "medconnect/internal/model"

// State is the domain snapshot: the doctor catalog and the ordered
// appointment set.
type State struct {
	Doctors      []model.Doctor
	Appointments []model.Appointment
}

// Command is the tagged union of domain mutations. Apply handles every
// command; an unknown id reduces to a no-op rather than an error.
type Command interface{ isCommand() }

type SetDoctors struct{ Doctors []model.Doctor }

type AddDoctor struct{ Doctor model.Doctor }

type UpdateDoctor struct {
	ID    string
	Patch DoctorPatch
}

type DeleteDoctor struct{ ID string }

type SetAppointments struct{ Appointments []model.Appointment }

type AddAppointment struct{ Appointment model.Appointment }

type CancelAppointment struct{ ID string }

func (SetDoctors) isCommand()        {}
func (AddDoctor) isCommand()         {}
func (UpdateDoctor) isCommand()      {}
func (DeleteDoctor) isCommand()      {}
func (SetAppointments) isCommand()   {}
func (AddAppointment) isCommand()    {}
func (CancelAppointment) isCommand() {}

// DoctorPatch carries the fields an update may merge. Nil pointers leave
// the current value alone; a nil slice leaves the slots alone.
type DoctorPatch struct {
	Name           *string
	Specialization *string
	Graduation     *string
	Picture        *string
	Bio            *string
	Experience     *string
	Fees           *float64
	AvailableSlots []string
}

func (p DoctorPatch) applyTo(d model.Doctor) model.Doctor {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Specialization != nil {
		d.Specialization = *p.Specialization
	}
	if p.Graduation != nil {
		d.Graduation = *p.Graduation
	}
	if p.Picture != nil {
		d.Picture = *p.Picture
	}
	if p.Bio != nil {
		d.Bio = *p.Bio
	}
	if p.Experience != nil {
		d.Experience = *p.Experience
	}
	if p.Fees != nil {
		d.Fees = *p.Fees
	}
	if p.AvailableSlots != nil {
		d.AvailableSlots = append([]string(nil), p.AvailableSlots...)
	}
	return d
}

// Apply is the pure transition function: current state + command → next
// state. It never mutates its input and is total over all commands.
func Apply(s State, c Command) State {
	switch c := c.(type) {
	case SetDoctors:
		s.Doctors = append([]model.Doctor(nil), c.Doctors...)
	case AddDoctor:
		s.Doctors = append(copyDoctors(s.Doctors), c.Doctor)
	case UpdateDoctor:
		s.Doctors = copyDoctors(s.Doctors)
		for i := range s.Doctors {
			if s.Doctors[i].ID == c.ID {
				s.Doctors[i] = c.Patch.applyTo(s.Doctors[i])
			}
		}
	case DeleteDoctor:
		// appointments referencing the doctor are left alone
		kept := make([]model.Doctor, 0, len(s.Doctors))
		for _, d := range s.Doctors {
			if d.ID != c.ID {
				kept = append(kept, d)
			}
		}
		s.Doctors = kept
	case SetAppointments:
		s.Appointments = append([]model.Appointment(nil), c.Appointments...)
	case AddAppointment:
		s.Appointments = append(copyAppointments(s.Appointments), c.Appointment)
	case CancelAppointment:
		s.Appointments = copyAppointments(s.Appointments)
		for i := range s.Appointments {
			a := &s.Appointments[i]
			if a.ID == c.ID && !a.Status.Terminal() {
				a.Status = model.StatusCancelled
			}
		}
	}
	return s
}

func copyDoctors(in []model.Doctor) []model.Doctor {
	return append([]model.Doctor(nil), in...)
}

func copyAppointments(in []model.Appointment) []model.Appointment {
	return append([]model.Appointment(nil), in...)
}
