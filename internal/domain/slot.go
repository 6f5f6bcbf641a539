package domain

import (
	"time"

	"github.com/barbercloud/barbercloud/pkg/types"
)

// AvailableSlot represents a time slot derived from the weekly template
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int // free chairs
	TotalSpots      int // total chairs
}

// IsFull returns true if the slot has no available chairs
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}

// BookingPolicy holds the slot rules shared by availability and booking
type BookingPolicy struct {
	SlotDurationMinutes     int
	Chairs                  int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
}

// DefaultBookingPolicy returns the built-in policy
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		Chairs:                  DefaultChairs,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (p BookingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// BookingSettings is a barbershop's stored booking policy
type BookingSettings struct {
	BarbershopID int64
	Policy       BookingPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DashboardStats are appointment counters shown on the admin dashboard
type DashboardStats struct {
	Today     int
	Next7Days int
	Total     int
}
