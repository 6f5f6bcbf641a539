package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/barbercloud/barbercloud/internal/config"
	"github.com/barbercloud/barbercloud/internal/integrations/barbercloud"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
	"github.com/barbercloud/barbercloud/pkg/logger"
)

const appVersion = "0.3.0"

// errNotLoaded текущий шаблон не загружен, сохранение затерло бы всю неделю
var errNotLoaded = errors.New("no se pudieron cargar los horarios actuales, no se guardó nada")

// validationFailure шаблон не прошел проверку, сообщение уже напечатано
type validationFailure struct {
	violation *workinghours.ValidationError
}

func (f *validationFailure) Error() string {
	return f.violation.Message
}

// app общее состояние команд одного запуска
type app struct {
	out io.Writer

	configPath string
	apiURL     string
	token      string
	timeout    time.Duration
	logLevel   string

	// newStore подменяется в тестах
	newStore func(cfg *config.Config, log *logger.Logger) workinghours.RemoteStore
	log      *logger.Logger
}

func newApp(out io.Writer) *app {
	return &app{
		out:      out,
		newStore: defaultStore,
	}
}

func defaultStore(cfg *config.Config, log *logger.Logger) workinghours.RemoteStore {
	return barbercloud.NewClient(cfg.Remote.APIURL, cfg.Remote.TrimmedToken(), cfg.Remote.RemoteTimeout(), log)
}

// editor загружает конфигурацию и текущий шаблон
func (a *app) editor(ctx context.Context) (*workinghours.Editor, error) {
	cfg, err := config.LoadOptional(a.configPath)
	if err != nil {
		return nil, err
	}

	// Флаги важнее файла и окружения
	if a.apiURL != "" {
		cfg.Remote.APIURL = a.apiURL
	}
	if a.token != "" {
		cfg.Remote.Token = a.token
	}
	if a.timeout > 0 {
		cfg.Remote.Timeout = int(a.timeout / time.Second)
	}

	if a.log == nil {
		log, err := logger.New("", a.logLevel)
		if err != nil {
			return nil, err
		}
		a.log = log
	}

	editor := workinghours.NewEditor(a.newStore(cfg, a.log), a.log)
	editor.Load(ctx)
	return editor, nil
}

// mutate загружает шаблон, применяет изменение, проверяет и сохраняет
// При нарушении печатается сообщение, запрос на запись не отправляется
// Если загрузка не удалась, ничего не сохраняется
func (a *app) mutate(cmd *cobra.Command, change func(e *workinghours.Editor) error) error {
	return a.apply(cmd, true, change)
}

// overwrite как mutate, но результат не зависит от сохраненного шаблона
func (a *app) overwrite(cmd *cobra.Command, change func(e *workinghours.Editor) error) error {
	return a.apply(cmd, false, change)
}

func (a *app) apply(cmd *cobra.Command, requireLoaded bool, change func(e *workinghours.Editor) error) error {
	editor, err := a.editor(cmd.Context())
	if err != nil {
		return err
	}

	if loadErr := editor.LoadErr(); requireLoaded && loadErr != nil {
		return fmt.Errorf("%w: %v", errNotLoaded, loadErr)
	}

	if err := change(editor); err != nil {
		return err
	}

	if violation := editor.Validate(); violation != nil {
		fmt.Fprintln(a.out, violation.Message)
		return &validationFailure{violation: violation}
	}

	if err := editor.Save(cmd.Context()); err != nil {
		var remoteErr *barbercloud.RemoteError
		if errors.As(err, &remoteErr) {
			return fmt.Errorf("%s", remoteErr.Message)
		}
		return err
	}

	renderTemplate(a.out, editor.Template())
	fmt.Fprintln(a.out, "Horarios guardados")
	return nil
}
