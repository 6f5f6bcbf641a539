package domain

import (
	"time"

	"github.com/barbercloud/barbercloud/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Valid reports whether s is a known status
func (s AppointmentStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCanceled
}

// Appointment represents a customer booking at a barbershop
type Appointment struct {
	ID              int64
	BarbershopID    int64
	ServiceID       int64
	CustomerName    string
	CustomerPhone   string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies a chair
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// CanTransitionTo returns true if the status change is allowed
// Canceled appointments are final
func (a *Appointment) CanTransitionTo(status AppointmentStatus) bool {
	if !status.Valid() || status == StatusPending {
		return false
	}
	return a.Status != StatusCanceled
}

// EndTime returns the appointment end time
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// StartsAt returns the appointment start as a point in time in loc
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	minutes, err := a.StartTime.Minutes()
	if err != nil {
		minutes = 0
	}
	y, m, d := a.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(minutes) * time.Minute)
}

// AppointmentsFilter filter for listing a barbershop's appointments
type AppointmentsFilter struct {
	BarbershopID    int64              // required
	StartDate       *time.Time         // inclusive, optional
	EndDate         *time.Time         // inclusive, optional
	Status          *AppointmentStatus // optional
	Query           string             // customer name or phone substring, optional
	IncludeInactive bool               // include canceled appointments
}
