package workinghours

import (
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/types"
)

// RangeField редактируемое поле диапазона
type RangeField int

const (
	FieldStart RangeField = iota
	FieldEnd
)

// ParseRangeField принимает "start"/"end" (или "inicio"/"fin")
func ParseRangeField(s string) (RangeField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "inicio", "desde":
		return FieldStart, nil
	case "end", "fin", "hasta":
		return FieldEnd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// CreateEmptyTemplate возвращает шаблон, где все 7 дней закрыты
func CreateEmptyTemplate() domain.WeeklyTemplate {
	template := make(domain.WeeklyTemplate, domain.DaysInWeek)
	for _, day := range domain.AllWeekdays() {
		template[day] = []domain.TimeRange{}
	}
	return template
}

// LoadTemplate группирует записи по дням и сортирует диапазоны по началу
// Валидация не выполняется: ранее сохраненный некорректный шаблон показывается как есть
// Записи с днем вне 0..6 пропускаются
func LoadTemplate(entries []domain.WorkingHoursEntry) domain.WeeklyTemplate {
	template := CreateEmptyTemplate()
	for _, entry := range entries {
		if !entry.Weekday.Valid() {
			continue
		}
		template[entry.Weekday] = append(template[entry.Weekday], entry.Range())
	}

	for _, day := range domain.AllWeekdays() {
		sortRanges(template[day])
	}
	return template
}

// ToggleDay закрывает открытый день или открывает закрытый с расписанием по умолчанию
func ToggleDay(template domain.WeeklyTemplate, day domain.Weekday) error {
	if err := checkDay(day); err != nil {
		return err
	}

	if template.IsOpen(day) {
		template[day] = []domain.TimeRange{}
		return nil
	}
	template[day] = domain.DefaultOpenDay()
	return nil
}

// AddRange добавляет диапазон по умолчанию в конец дня
// Пересечения не проверяются: пользователь поправит диапазон до сохранения
func AddRange(template domain.WeeklyTemplate, day domain.Weekday) error {
	if err := checkDay(day); err != nil {
		return err
	}

	template[day] = append(template[day], domain.MorningRange)
	return nil
}

// RemoveRange удаляет диапазон по индексу
func RemoveRange(template domain.WeeklyTemplate, day domain.Weekday, index int) error {
	if err := checkIndex(template, day, index); err != nil {
		return err
	}

	template[day] = slices.Delete(domain.CloneRanges(template[day]), index, index+1)
	return nil
}

// UpdateRangeField записывает сырое значение в начало или конец диапазона
// Значение не проверяется: при вводе допустимы промежуточные некорректные состояния
func UpdateRangeField(template domain.WeeklyTemplate, day domain.Weekday, index int, field RangeField, value string) error {
	if err := checkIndex(template, day, index); err != nil {
		return err
	}

	switch field {
	case FieldStart:
		template[day][index].StartTime = types.TimeString(value)
	case FieldEnd:
		template[day][index].EndTime = types.TimeString(value)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	return nil
}

// ApplyPreset полностью заменяет диапазоны дня шаблоном пресета
func ApplyPreset(template domain.WeeklyTemplate, day domain.Weekday, preset domain.Preset) error {
	if err := checkDay(day); err != nil {
		return err
	}

	ranges, err := preset.Ranges()
	if err != nil {
		return err
	}
	template[day] = ranges
	return nil
}

// CopyDay копирует диапазоны source в каждый из targets (source исключается)
// Пустой набор целей отклоняется до каких-либо изменений
func CopyDay(template domain.WeeklyTemplate, source domain.Weekday, targets []domain.Weekday) error {
	if err := checkDay(source); err != nil {
		return err
	}

	targetSet := mapset.NewThreadUnsafeSet[domain.Weekday]()
	for _, target := range targets {
		if err := checkDay(target); err != nil {
			return err
		}
		targetSet.Add(target)
	}
	targetSet.Remove(source)

	if targetSet.Cardinality() == 0 {
		return ErrNoCopyTargets
	}

	for _, target := range targetSet.ToSlice() {
		template[target] = domain.CloneRanges(template[source])
	}
	return nil
}

func checkDay(day domain.Weekday) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, int(day))
	}
	return nil
}

func checkIndex(template domain.WeeklyTemplate, day domain.Weekday, index int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if index < 0 || index >= len(template[day]) {
		return fmt.Errorf("%w: %s has %d ranges, got index %d",
			ErrRangeIndexOutOfRange, day.Label(), len(template[day]), index)
	}
	return nil
}

// sortRanges сортирует по началу; порядок полный, чтобы результат не зависел от входного порядка
func sortRanges(ranges []domain.TimeRange) {
	slices.SortFunc(ranges, compareRanges)
}

func compareRanges(a, b domain.TimeRange) int {
	if c := a.StartTime.Compare(b.StartTime); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.StartTime), string(b.StartTime)); c != 0 {
		return c
	}
	if c := a.EndTime.Compare(b.EndTime); c != 0 {
		return c
	}
	return strings.Compare(string(a.EndTime), string(b.EndTime))
}
