package domain

// Default booking policy values
const (
	DefaultSlotDurationMinutes     = 30
	DefaultChairs                  = 1
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MinChairs               = 1
	MaxChairs               = 50
	MaxAdvanceBookingDays   = 365
	MaxBookingNoticeMinutes = 10080 // 1 week
	MaxCustomerNameLength   = 120
	MaxCustomerPhoneLength  = 40
	MaxRangesPerDay         = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a chair
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
