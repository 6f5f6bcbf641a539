package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday_Label(t *testing.T) {
	assert.Equal(t, "Lunes", Monday.Label())
	assert.Equal(t, "Miércoles", Wednesday.Label())
	assert.Equal(t, "Sábado", Saturday.Label())
	assert.False(t, Weekday(7).Valid())
	assert.Len(t, AllWeekdays(), DaysInWeek)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  Weekday
	}{
		{"0", Monday},
		{"6", Sunday},
		{"lunes", Monday},
		{"Miércoles", Wednesday},
		{"miercoles", Wednesday},
		{" SABADO ", Saturday},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseWeekday("7")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
	_, err = ParseWeekday("monday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekdayFromTime(t *testing.T) {
	// 2025-03-10 is a Monday
	assert.Equal(t, Monday, WeekdayFromTime(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)))
}

func TestPreset_Ranges(t *testing.T) {
	split, err := PresetSplit.Ranges()
	require.NoError(t, err)
	assert.Equal(t, []TimeRange{{"10:00", "13:00"}, {"16:00", "20:00"}}, split)

	// every call returns a fresh slice
	split[0].StartTime = "08:00"
	again, err := PresetSplit.Ranges()
	require.NoError(t, err)
	assert.Equal(t, TimeRange{"10:00", "13:00"}, again[0])

	_, err = Preset(99).Ranges()
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		parsed, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePreset("nocturno")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	a := &Appointment{Status: StatusPending}
	assert.True(t, a.CanTransitionTo(StatusConfirmed))
	assert.True(t, a.CanTransitionTo(StatusCanceled))
	assert.False(t, a.CanTransitionTo(StatusPending))

	a.Status = StatusCanceled
	assert.False(t, a.CanTransitionTo(StatusConfirmed))
	assert.False(t, a.IsActive())
}
