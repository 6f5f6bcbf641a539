package workinghours

import (
	"context"
	"slices"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// Save проверяет шаблон и отправляет его в хранилище целиком
// При нарушении возвращает *ValidationError и не обращается к хранилищу
// Ошибка хранилища возвращается без изменений
func Save(ctx context.Context, template domain.WeeklyTemplate, store RemoteStore) error {
	if violation := Validate(template); violation != nil {
		return violation
	}

	items := slices.Collect(Flatten(template))
	return store.ReplaceWorkingHours(ctx, items)
}

// Editor владеет редактируемым шаблоном одной сессии
// Не предназначен для конкурентного использования
type Editor struct {
	store    RemoteStore
	logger   Logger
	template domain.WeeklyTemplate
	loadErr  error
}

// NewEditor создает редактор с пустым шаблоном
func NewEditor(store RemoteStore, logger Logger) *Editor {
	return &Editor{
		store:    store,
		logger:   logger,
		template: CreateEmptyTemplate(),
	}
}

// Load загружает шаблон из хранилища, заменяя текущий
// Ошибка загрузки не фатальна: шаблон становится пустым, пишется предупреждение,
// а причина доступна через LoadErr
func (e *Editor) Load(ctx context.Context) domain.WeeklyTemplate {
	entries, err := e.store.GetWorkingHours(ctx)
	if err != nil {
		e.logger.Warn("Editor.Load: failed to load working hours, starting from empty template: %v", err)
		e.loadErr = err
		e.template = CreateEmptyTemplate()
		return e.template
	}

	e.loadErr = nil
	e.template = LoadTemplate(entries)
	e.logger.Info("Editor.Load: loaded %d ranges", len(entries))
	return e.template
}

// LoadErr ошибка последней загрузки или nil
// Не nil означает, что шаблон пустой не потому, что так сохранено
func (e *Editor) LoadErr() error {
	return e.loadErr
}

// Template возвращает текущий шаблон (без копирования)
func (e *Editor) Template() domain.WeeklyTemplate {
	return e.template
}

// Reset закрывает все дни
func (e *Editor) Reset() {
	e.template = CreateEmptyTemplate()
}

func (e *Editor) ToggleDay(day domain.Weekday) error {
	return ToggleDay(e.template, day)
}

func (e *Editor) AddRange(day domain.Weekday) error {
	return AddRange(e.template, day)
}

func (e *Editor) RemoveRange(day domain.Weekday, index int) error {
	return RemoveRange(e.template, day, index)
}

func (e *Editor) UpdateRangeField(day domain.Weekday, index int, field RangeField, value string) error {
	return UpdateRangeField(e.template, day, index, field, value)
}

func (e *Editor) ApplyPreset(day domain.Weekday, preset domain.Preset) error {
	return ApplyPreset(e.template, day, preset)
}

func (e *Editor) CopyDay(source domain.Weekday, targets []domain.Weekday) error {
	return CopyDay(e.template, source, targets)
}

// Validate проверяет текущий шаблон
func (e *Editor) Validate() *ValidationError {
	return Validate(e.template)
}

// Save сохраняет текущий шаблон
// При ошибке шаблон в памяти не меняется, сохранение можно повторить
func (e *Editor) Save(ctx context.Context) error {
	if err := Save(ctx, e.template, e.store); err != nil {
		e.logger.Warn("Editor.Save: %v", err)
		return err
	}

	e.logger.Info("Editor.Save: weekly template saved")
	return nil
}
