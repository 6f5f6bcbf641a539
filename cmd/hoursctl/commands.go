package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/internal/service/workinghours"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hoursctl",
		Short:         "Edit a barbershop's weekly working hours",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetVersionTemplate("hoursctl v{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "config.toml", "Path to TOML config (optional)")
	flags.StringVar(&a.apiURL, "api-url", "", "API base URL (overrides [remote].api_url)")
	flags.StringVar(&a.token, "token", "", "Admin bearer token (overrides [remote].token)")
	flags.DurationVar(&a.timeout, "timeout", 0, "HTTP timeout, e.g. 10s")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(
		newShowCmd(a),
		newValidateCmd(a),
		newToggleCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newSetCmd(a),
		newPresetCmd(a),
		newCopyCmd(a),
		newResetCmd(a),
	)
	return root
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored weekly template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := a.editor(cmd.Context())
			if err != nil {
				return err
			}
			renderTemplate(a.out, editor.Template())
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the stored template without saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := a.editor(cmd.Context())
			if err != nil {
				return err
			}
			if violation := editor.Validate(); violation != nil {
				fmt.Fprintln(a.out, violation.Message)
				return &validationFailure{violation: violation}
			}
			fmt.Fprintln(a.out, "Horarios válidos")
			return nil
		},
	}
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <day>",
		Short: "Open a closed day (10:00-13:00, 16:00-20:00) or close an open one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.ToggleDay(day)
			})
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <day>",
		Short: "Append a 10:00-13:00 range to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.AddRange(day)
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <day> <n>",
		Short: "Remove the n-th range of a day (as numbered by show)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			index, err := parseRangeNumber(args[1])
			if err != nil {
				return err
			}
			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.RemoveRange(day, index)
			})
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <day> <n> <start|end> <HH:MM>",
		Short: "Change the start or end of the n-th range of a day",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			index, err := parseRangeNumber(args[1])
			if err != nil {
				return err
			}
			field, err := workinghours.ParseRangeField(args[2])
			if err != nil {
				return err
			}
			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.UpdateRangeField(day, index, field, args[3])
			})
		},
	}
}

func newPresetCmd(a *app) *cobra.Command {
	names := make([]string, 0, len(domain.Presets()))
	for _, p := range domain.Presets() {
		names = append(names, p.String())
	}

	return &cobra.Command{
		Use:       "preset <day> <name>",
		Short:     "Replace a day's ranges with a preset: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			preset, err := domain.ParsePreset(args[1])
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
			}
			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.ApplyPreset(day, preset)
			})
		},
	}
}

func newCopyCmd(a *app) *cobra.Command {
	var (
		to  []string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "copy <source-day>",
		Short: "Copy a day's ranges to other days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := domain.ParseWeekday(args[0])
			if err != nil {
				return err
			}

			targets := domain.AllWeekdays()
			if !all {
				targets = make([]domain.Weekday, 0, len(to))
				for _, name := range to {
					day, err := domain.ParseWeekday(name)
					if err != nil {
						return err
					}
					targets = append(targets, day)
				}
			}

			return a.mutate(cmd, func(e *workinghours.Editor) error {
				return e.CopyDay(source, targets)
			})
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "Target days, e.g. --to martes,miercoles")
	cmd.Flags().BoolVar(&all, "all", false, "Copy to every other day")
	cmd.MarkFlagsMutuallyExclusive("to", "all")
	cmd.MarkFlagsOneRequired("to", "all")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Close every day and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.overwrite(cmd, func(e *workinghours.Editor) error {
				e.Reset()
				return nil
			})
		},
	}
}

// parseRangeNumber номер диапазона с единицы, как в выводе show
func parseRangeNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", workinghours.ErrRangeIndexOutOfRange, s)
	}
	return n - 1, nil
}

