package workinghours

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud/internal/domain"
)

func entry(day domain.Weekday, start, end string) domain.WorkingHoursEntry {
	return domain.WorkingHoursEntry{Weekday: day, StartTime: typesTime(start), EndTime: typesTime(end)}
}

func rng(start, end string) domain.TimeRange {
	return domain.TimeRange{StartTime: typesTime(start), EndTime: typesTime(end)}
}

func sampleEntries() []domain.WorkingHoursEntry {
	return []domain.WorkingHoursEntry{
		entry(domain.Monday, "16:00", "20:00"),
		entry(domain.Monday, "10:00", "13:00"),
		entry(domain.Wednesday, "10:00", "20:00"),
		entry(domain.Friday, "16:00", "21:00"),
		entry(domain.Friday, "09:00", "12:00"),
		entry(domain.Friday, "09:00", "11:00"),
		entry(domain.Saturday, "bad", "13:00"),
	}
}

func TestCreateEmptyTemplate(t *testing.T) {
	template := CreateEmptyTemplate()

	require.Len(t, template, domain.DaysInWeek)
	for _, day := range domain.AllWeekdays() {
		ranges, ok := template[day]
		assert.True(t, ok, day.Label())
		assert.Empty(t, ranges, day.Label())
	}
	assert.Nil(t, Validate(template))
}

func TestLoadTemplate_GroupsAndSorts(t *testing.T) {
	template := LoadTemplate(sampleEntries())

	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00"), rng("16:00", "20:00")}, template[domain.Monday])
	assert.Empty(t, template[domain.Tuesday])
	assert.Equal(t, []domain.TimeRange{rng("09:00", "11:00"), rng("09:00", "12:00"), rng("16:00", "21:00")}, template[domain.Friday])
	// invalid values are kept as-is
	assert.Equal(t, []domain.TimeRange{rng("bad", "13:00")}, template[domain.Saturday])
}

func TestLoadTemplate_IndependentOfInputOrder(t *testing.T) {
	entries := sampleEntries()
	want := LoadTemplate(entries)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(entries)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, LoadTemplate(shuffled))
	}
}

func TestLoadTemplate_SkipsInvalidWeekday(t *testing.T) {
	template := LoadTemplate([]domain.WorkingHoursEntry{entry(domain.Weekday(9), "10:00", "11:00")})
	assert.Len(t, template, domain.DaysInWeek)
	for _, day := range domain.AllWeekdays() {
		assert.Empty(t, template[day])
	}
}

func TestFlatten_RoundTripPreservesMultiset(t *testing.T) {
	entries := sampleEntries()
	flattened := slices.Collect(Flatten(LoadTemplate(entries)))

	key := func(e domain.WorkingHoursEntry) string {
		return e.Weekday.Name() + "|" + e.StartTime.String() + "|" + e.EndTime.String()
	}
	want := make([]string, 0, len(entries))
	for _, e := range entries {
		want = append(want, key(e))
	}
	got := make([]string, 0, len(flattened))
	for _, e := range flattened {
		got = append(got, key(e))
	}
	assert.ElementsMatch(t, want, got)
}

func TestFlatten_Order(t *testing.T) {
	template := CreateEmptyTemplate()
	template[domain.Sunday] = []domain.TimeRange{rng("10:00", "12:00")}
	template[domain.Monday] = []domain.TimeRange{rng("16:00", "20:00"), rng("10:00", "13:00")}

	got := slices.Collect(Flatten(template))
	assert.Equal(t, []domain.WorkingHoursEntry{
		entry(domain.Monday, "16:00", "20:00"),
		entry(domain.Monday, "10:00", "13:00"),
		entry(domain.Sunday, "10:00", "12:00"),
	}, got)
}

func TestFlatten_StopsEarly(t *testing.T) {
	template := LoadTemplate(sampleEntries())
	count := 0
	for range Flatten(template) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestToggleDay_TwiceReturnsToClosed(t *testing.T) {
	template := CreateEmptyTemplate()

	require.NoError(t, ToggleDay(template, domain.Tuesday))
	assert.Equal(t, domain.DefaultOpenDay(), template[domain.Tuesday])
	assert.Nil(t, Validate(template))

	require.NoError(t, ToggleDay(template, domain.Tuesday))
	assert.Empty(t, template[domain.Tuesday])
}

func TestToggleDay_InvalidWeekday(t *testing.T) {
	err := ToggleDay(CreateEmptyTemplate(), domain.Weekday(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

func TestAddRange_DoesNotCheckOverlap(t *testing.T) {
	template := CreateEmptyTemplate()
	require.NoError(t, AddRange(template, domain.Monday))
	require.NoError(t, AddRange(template, domain.Monday))

	assert.Len(t, template[domain.Monday], 2)
	violation := Validate(template)
	require.NotNil(t, violation)
	assert.Equal(t, ViolationOverlap, violation.Kind)
}

func TestRemoveRange(t *testing.T) {
	template := LoadTemplate(sampleEntries())

	require.NoError(t, RemoveRange(template, domain.Monday, 0))
	assert.Equal(t, []domain.TimeRange{rng("16:00", "20:00")}, template[domain.Monday])

	err := RemoveRange(template, domain.Monday, 1)
	assert.ErrorIs(t, err, ErrRangeIndexOutOfRange)
	err = RemoveRange(template, domain.Monday, -1)
	assert.ErrorIs(t, err, ErrRangeIndexOutOfRange)
	assert.Len(t, template[domain.Monday], 1)
}

func TestUpdateRangeField(t *testing.T) {
	template := CreateEmptyTemplate()
	require.NoError(t, AddRange(template, domain.Thursday))

	require.NoError(t, UpdateRangeField(template, domain.Thursday, 0, FieldStart, "1"))
	require.NoError(t, UpdateRangeField(template, domain.Thursday, 0, FieldEnd, "18:30"))
	assert.Equal(t, rng("1", "18:30"), template[domain.Thursday][0])

	err := UpdateRangeField(template, domain.Thursday, 3, FieldStart, "10:00")
	assert.ErrorIs(t, err, ErrRangeIndexOutOfRange)
	err = UpdateRangeField(template, domain.Thursday, 0, RangeField(7), "10:00")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset domain.Preset
		want   []domain.TimeRange
	}{
		{domain.PresetContinuous, []domain.TimeRange{rng("10:00", "20:00")}},
		{domain.PresetSplit, []domain.TimeRange{rng("10:00", "13:00"), rng("16:00", "20:00")}},
		{domain.PresetAfternoon, []domain.TimeRange{rng("16:00", "21:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			template := LoadTemplate(sampleEntries())
			require.NoError(t, ApplyPreset(template, domain.Friday, tt.preset))
			assert.Equal(t, tt.want, template[domain.Friday])
		})
	}
}

func TestApplyPreset_SplitOnFridayIgnoresPriorState(t *testing.T) {
	for _, prior := range [][]domain.TimeRange{
		{},
		{rng("08:00", "22:00")},
		{rng("x", ""), rng("10:00", "11:00"), rng("10:30", "12:00")},
	} {
		template := CreateEmptyTemplate()
		template[domain.Friday] = prior
		require.NoError(t, ApplyPreset(template, domain.Friday, domain.PresetSplit))
		assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00"), rng("16:00", "20:00")}, template[domain.Friday])
	}
}

func TestApplyPreset_UnknownPresetLeavesDayUntouched(t *testing.T) {
	template := LoadTemplate(sampleEntries())
	before := template.Clone()

	err := ApplyPreset(template, domain.Friday, domain.Preset(0))
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)
	assert.Equal(t, before, template)
}

func TestCopyDay_IndependentCopies(t *testing.T) {
	template := CreateEmptyTemplate()
	template[domain.Monday] = []domain.TimeRange{rng("10:00", "13:00")}

	require.NoError(t, CopyDay(template, domain.Monday, []domain.Weekday{domain.Tuesday, domain.Wednesday}))
	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00")}, template[domain.Tuesday])
	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00")}, template[domain.Wednesday])
	assert.Empty(t, template[domain.Thursday])

	require.NoError(t, UpdateRangeField(template, domain.Tuesday, 0, FieldEnd, "14:00"))
	require.NoError(t, AddRange(template, domain.Tuesday))

	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00")}, template[domain.Monday])
	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00")}, template[domain.Wednesday])
}

func TestCopyDay_WholeWeek(t *testing.T) {
	template := CreateEmptyTemplate()
	require.NoError(t, ApplyPreset(template, domain.Monday, domain.PresetSplit))

	require.NoError(t, CopyDay(template, domain.Monday, domain.AllWeekdays()))
	for _, day := range domain.AllWeekdays() {
		assert.Equal(t, template[domain.Monday], template[day], day.Label())
	}
}

func TestCopyDay_RejectsEmptyTargets(t *testing.T) {
	template := LoadTemplate(sampleEntries())
	before := template.Clone()

	assert.ErrorIs(t, CopyDay(template, domain.Monday, nil), ErrNoCopyTargets)
	assert.ErrorIs(t, CopyDay(template, domain.Monday, []domain.Weekday{domain.Monday}), ErrNoCopyTargets)
	assert.ErrorIs(t, CopyDay(template, domain.Monday, []domain.Weekday{domain.Tuesday, domain.Weekday(8)}), domain.ErrInvalidWeekday)
	assert.Equal(t, before, template)
}

func TestViews(t *testing.T) {
	template := CreateEmptyTemplate()
	template[domain.Monday] = []domain.TimeRange{rng("16:00", "20:00"), rng("10:00", "13:00")}

	assert.Equal(t, "Abierto", DayStatusLabel(template, domain.Monday))
	assert.Equal(t, "Cerrado", DayStatusLabel(template, domain.Sunday))

	sorted := SortedRanges(template, domain.Monday)
	assert.Equal(t, []domain.TimeRange{rng("10:00", "13:00"), rng("16:00", "20:00")}, sorted)
	// source order is untouched
	assert.Equal(t, rng("16:00", "20:00"), template[domain.Monday][0])
}
