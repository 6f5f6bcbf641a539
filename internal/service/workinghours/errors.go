package workinghours

import (
	"errors"

	"github.com/barbercloud/barbercloud/internal/domain"
)

var (
	// ErrInvalidTemplate базовая ошибка для всех нарушений валидации шаблона
	ErrInvalidTemplate = errors.New("workinghours: invalid weekly template")

	// ErrRangeIndexOutOfRange возвращается при обращении к несуществующему диапазону
	ErrRangeIndexOutOfRange = errors.New("workinghours: range index out of range")

	// ErrNoCopyTargets возвращается, если не выбран ни один день для копирования
	ErrNoCopyTargets = errors.New("workinghours: select at least one target day")

	// ErrUnknownField возвращается при попытке изменить неизвестное поле диапазона
	ErrUnknownField = errors.New("workinghours: unknown range field")
)

// ViolationKind вид нарушения, в порядке проверки внутри дня
type ViolationKind string

const (
	ViolationMissingTime   ViolationKind = "missing_time"
	ViolationMalformedTime ViolationKind = "malformed_time"
	ViolationInvertedRange ViolationKind = "inverted_range"
	ViolationOverlap       ViolationKind = "overlap"
)

// ValidationError первое найденное нарушение шаблона
// Message предназначено для показа пользователю и называет день недели
type ValidationError struct {
	Weekday domain.Weekday
	Kind    ViolationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTemplate
}
