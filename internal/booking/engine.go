// Package booking turns a (patient, doctor, date, time) tuple into a
// stored appointment.
package booking

import (
	"context"
	"errors"
	"slices"

	"medconnect/internal/model"
	"medconnect/internal/store"
)

var ErrSlotTaken = errors.New("slot already booked")

// Engine performs the booking checks and constructs the record. Only
// presence is validated by default: nothing stops two patients from
// booking the same slot unless the hardening flags below are set.
type Engine struct {
	store *store.Store

	// RequireListedSlot rejects a time missing from the doctor's
	// available slots.
	RequireListedSlot bool
	// RejectDoubleBooking rejects a slot that already has a scheduled
	// appointment with the same doctor.
	RejectDoubleBooking bool
}

func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Book validates the tuple and appends the appointment. The doctor
// lookup doubles as the presence check and supplies the denormalized
// doctor name.
func (e *Engine) Book(ctx context.Context, patient model.User, doctorID, date, timeLabel string) (model.Appointment, error) {
	if patient.ID == "" {
		return model.Appointment{}, model.MissingField("patient")
	}
	if date == "" {
		return model.Appointment{}, model.MissingField("date")
	}
	if timeLabel == "" {
		return model.Appointment{}, model.MissingField("time")
	}
	doc, ok := e.store.GetDoctorByID(doctorID)
	if !ok {
		return model.Appointment{}, &model.ValidationError{Field: "doctorId", Reason: "does not match any doctor"}
	}
	if e.RequireListedSlot && !slices.Contains(doc.AvailableSlots, timeLabel) {
		return model.Appointment{}, &model.ValidationError{Field: "time", Reason: "is not one of the doctor's slots"}
	}
	if e.RejectDoubleBooking && e.store.HasScheduled(doc.ID, date, timeLabel) {
		return model.Appointment{}, ErrSlotTaken
	}

	return e.store.BookAppointment(ctx, model.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doc.ID,
		PatientName: patient.Name,
		DoctorName:  doc.Name,
		Date:        date,
		Time:        timeLabel,
	}), nil
}

// Cancel forwards to the store; cancelling an unknown or already
// cancelled appointment is a no-op.
func (e *Engine) Cancel(ctx context.Context, id string) {
	e.store.CancelAppointment(ctx, id)
}
