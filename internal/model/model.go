package model

import "time"

type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Graduation     string    `json:"graduation"`
	Picture        string    `json:"picture"`
	Bio            string    `json:"bio"`
	Experience     string    `json:"experience"`
	Fees           float64   `json:"fees"`
	AvailableSlots []string  `json:"availableSlots"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	DoctorID    string            `json:"doctorId"`
	PatientName string            `json:"patientName"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"` // calendar date, yyyy-mm-dd, no time zone
	Time        string            `json:"time"` // slot label, e.g. "09:00"
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
