package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterbourgon/ff/v4"

	"github.com/dmitrymomot/liquidfilters/internal/server"
	"github.com/dmitrymomot/liquidfilters/pkg/locale"
	"github.com/dmitrymomot/liquidfilters/pkg/logger"
	"github.com/dmitrymomot/liquidfilters/pkg/money"
	"github.com/dmitrymomot/liquidfilters/pkg/slug"
)

var errUsage = errors.New("usage")

type app struct {
	stdout io.Writer
	stderr io.Writer

	localeName *string
	logLevel   *string
	logFormat  *string

	log *slog.Logger
}

func (a *app) command() *ff.Command {
	rootFlags := ff.NewFlagSet("liquidfilters")
	a.localeName = rootFlags.StringLong("locale", "", "monetary locale such as de_DE (default: LC_ALL, LC_MONETARY, LANG)")
	a.logLevel = rootFlags.StringLong("log-level", "", "debug, info, warn or error (default: LOG_LEVEL, then info)")
	a.logFormat = rootFlags.StringLong("log-format", "", "json or text (default: LOG_FORMAT, then json)")

	handleFlags := ff.NewFlagSet("handle").SetParent(rootFlags)
	maxLength := handleFlags.IntLong("max-length", 0, "cut the handle at a word boundary (0: no limit)")
	fallback := handleFlags.StringLong("fallback", "", "text used when the input yields an empty handle")
	normalize := handleFlags.BoolLong("normalize", "compose decomposed accents before transliteration")

	moneyFlags := ff.NewFlagSet("money").SetParent(rootFlags)
	format := moneyFlags.StringEnumLong("format", "output format", "currency", "number", "no_trailing_zeros")

	serveFlags := ff.NewFlagSet("serve").SetParent(rootFlags)
	addr := serveFlags.StringLong("addr", "", "listen address (default: LIQUIDFILTERS_ADDR, then :8080)")

	handleCmd := &ff.Command{
		Name:      "handle",
		Usage:     "liquidfilters handle [FLAGS] TEXT...",
		ShortHelp: "print the URL handle of TEXT",
		Flags:     handleFlags,
		Exec: func(_ context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: handle TEXT...", errUsage)
			}
			h := slug.Make(strings.Join(args, " "),
				slug.MaxLength(*maxLength),
				slug.Fallback(*fallback),
				slug.Normalize(*normalize),
			)
			_, err := fmt.Fprintln(a.stdout, h)
			return err
		},
	}

	moneyCmd := &ff.Command{
		Name:      "money",
		Usage:     "liquidfilters money [FLAGS] AMOUNT",
		ShortHelp: "format AMOUNT with the monetary conventions of a locale",
		Flags:     moneyFlags,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: money AMOUNT", errUsage)
			}
			amount, err := money.ParseAmount(args[0])
			if err != nil {
				return err
			}
			conv, err := a.conventions(ctx)
			if err != nil {
				return err
			}

			var out string
			switch *format {
			case "number":
				out, err = money.FormatNumber(amount, conv)
			case "no_trailing_zeros":
				out, err = money.FormatCurrencyNoTrailingZeros(amount, conv)
			default:
				out, err = money.FormatCurrency(amount, conv)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, out)
			return err
		},
	}

	serveCmd := &ff.Command{
		Name:      "serve",
		Usage:     "liquidfilters serve [FLAGS]",
		ShortHelp: "start the preview HTTP server",
		Flags:     serveFlags,
		Exec: func(ctx context.Context, _ []string) error {
			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			if *addr != "" {
				cfg.Addr = *addr
			}

			log, err := a.logger()
			if err != nil {
				return err
			}
			conv, err := a.conventions(ctx)
			if err != nil {
				return err
			}
			if err := locale.SetActive(conv); err != nil {
				return err
			}

			return server.New(cfg, server.WithLogger(log)).Run(ctx)
		},
	}

	return &ff.Command{
		Name:        "liquidfilters",
		Usage:       "liquidfilters [FLAGS] <SUBCOMMAND> ...",
		ShortHelp:   "preview the handle and money template filters",
		Flags:       rootFlags,
		Subcommands: []*ff.Command{handleCmd, moneyCmd, serveCmd},
	}
}

// logger builds the process logger once, letting flags override LOG_* variables.
func (a *app) logger() (*slog.Logger, error) {
	if a.log != nil {
		return a.log, nil
	}
	cfg, err := logger.LoadConfig()
	if err != nil {
		return nil, err
	}
	if *a.logLevel != "" {
		cfg.Level = *a.logLevel
	}
	if *a.logFormat != "" {
		cfg.Format = *a.logFormat
	}
	a.log = logger.New(cfg, a.stderr, server.RequestIDExtractor())
	return a.log, nil
}

// conventions resolves --locale, or the POSIX environment when it is not set.
// An unusable environment locale is logged and replaced by the default; an
// explicit --locale that cannot be resolved is an error.
func (a *app) conventions(ctx context.Context) (money.Conventions, error) {
	if *a.localeName != "" {
		return locale.Lookup(*a.localeName)
	}

	c, err := locale.FromEnv()
	if err == nil {
		return c, nil
	}

	log, lerr := a.logger()
	if lerr != nil {
		return money.Conventions{}, lerr
	}
	log.WarnContext(ctx, "environment locale not supported, using default", slog.String("error", err.Error()))
	return locale.Default(), nil
}
