package replace_working_hours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Нарушения правил шаблона возвращаются как *workinghours.ValidationError
	ErrInvalidInput = errors.New("replace_working_hours: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("replace_working_hours: internal error")
)
