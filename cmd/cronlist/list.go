package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/xzzpig/cronlist/internal/core/datelist"
	"github.com/xzzpig/cronlist/internal/i18n"
	"github.com/xzzpig/cronlist/internal/utils"
)

type listFlags struct {
	limit    int
	start    string
	end      string
	timezone string
	format   string
	lang     string
	json     bool
}

type listOutput struct {
	Expression string          `json:"expression"`
	Timezone   string          `json:"timezone"`
	Dates      []string        `json:"dates"`
	Warnings   []listedWarning `json:"warnings"`
}

type listedWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newListCmd() *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list <expression>",
		Short: "Print the upcoming occurrences of a cron expression",
		Example: `  cronlist list "0 0 * * *" --limit 3
  cronlist list "0 0 1 * *" --start 2023-01-01 --end 2023-06-30T23:59
  cronlist list "@hourly" --tz UTC --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := datelist.NewBuilder(cfg.Schedule.Timezone)
			opts, err := f.options(builder, cmd.Flags().Changed("limit"))
			if err != nil {
				return err
			}

			result, err := builder.Build(args[0], opts)
			if err != nil {
				return err
			}

			lang := f.lang
			if lang == "" {
				lang = cfg.App.Locale
			}
			return writeList(cmd.OutOrStdout(), args[0], result, f.format, f.json, i18n.ParseLocale(lang))
		},
	}

	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "maximum number of occurrences")
	cmd.Flags().StringVar(&f.start, "start", "", "reference instant (RFC 3339, 2006-01-02[T15:04[:05]] or Unix milliseconds; default now)")
	cmd.Flags().StringVar(&f.end, "end", "", "only list occurrences before this instant (at most 20 unless --limit is set)")
	cmd.Flags().StringVar(&f.timezone, "tz", "", "IANA timezone the schedule is evaluated in (default from config)")
	cmd.Flags().StringVar(&f.format, "format", time.RFC3339, "Go time layout used for plain output")
	cmd.Flags().StringVar(&f.lang, "lang", "", "language for warnings in JSON output (en, ja)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of one date per line")

	return cmd
}

func (f *listFlags) options(builder *datelist.Builder, limitSet bool) (*datelist.Options, error) {
	loc, err := builder.Location(f.timezone)
	if err != nil {
		return nil, err
	}

	opts := &datelist.Options{Timezone: loc.String()}
	if limitSet {
		opts.Limit = utils.Ptr(f.limit)
	}
	if f.start != "" {
		t, err := utils.ParseInstant(f.start, loc)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		opts.CurrentDate = &t
	}
	if f.end != "" {
		t, err := utils.ParseInstant(f.end, loc)
		if err != nil {
			return nil, fmt.Errorf("--end: %w", err)
		}
		opts.EndDate = &t
	}
	return opts, nil
}

func writeList(w io.Writer, expr string, result *datelist.Result, layout string, asJSON bool, locale string) error {
	if !asJSON {
		for _, d := range result.Dates {
			if _, err := fmt.Fprintln(w, d.Format(layout)); err != nil {
				return err
			}
		}
		return nil
	}

	localizer := i18n.NewLocalizer(locale)
	out := listOutput{
		Expression: expr,
		Timezone:   result.Location.String(),
		Dates:      make([]string, 0, len(result.Dates)),
		Warnings:   make([]listedWarning, 0, len(result.Warnings)),
	}
	for _, d := range result.Dates {
		out.Dates = append(out.Dates, d.Format(time.RFC3339))
	}
	for _, warn := range result.Warnings {
		out.Warnings = append(out.Warnings, listedWarning{
			Code:    warn.Code,
			Message: i18n.TWithData(localizer, warn.Code, warn.Data),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
