package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidWeekday is returned for weekday ids outside 0..6
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday identifies a day of the week, 0 = Monday (first day of the week)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the fixed size of the weekday set
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
	"domingo",
}

// AllWeekdays returns the seven weekdays in canonical (ascending) order
func AllWeekdays() []Weekday {
	days := make([]Weekday, DaysInWeek)
	for i := range days {
		days[i] = Weekday(i)
	}
	return days
}

// Valid reports whether d is one of the seven weekdays
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Name returns the lowercase Spanish name
func (d Weekday) Name() string {
	if !d.Valid() {
		return "día " + strconv.Itoa(int(d))
	}
	return weekdayNames[d]
}

// Label returns the display label, e.g. "Miércoles"
func (d Weekday) Label() string {
	// a Caser is stateful and must not be shared across goroutines
	return cases.Title(language.Spanish).String(d.Name())
}

func (d Weekday) String() string {
	return d.Label()
}

// WeekdayFromTime converts a calendar date to a Weekday
func WeekdayFromTime(t time.Time) Weekday {
	// time.Weekday: Sunday = 0
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

// ParseWeekday accepts a numeric id ("0".."6") or a Spanish name
// with or without accents ("lunes", "Miércoles", "sabado")
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		if !d.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, n)
		}
		return d, nil
	}

	normalized := stripAccents(strings.ToLower(s))
	for i, name := range weekdayNames {
		if stripAccents(name) == normalized {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func stripAccents(s string) string {
	return strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(s)
}
