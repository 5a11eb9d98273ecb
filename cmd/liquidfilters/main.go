// Command liquidfilters previews the handle and money template filters from the
// shell or over HTTP.
//
//	liquidfilters handle "Déjà Vu"            # deja-vu
//	liquidfilters --locale de_DE money 1234.5  # 1.234,50 €
//	liquidfilters serve --addr :8080
//
// Every flag can also be set through the environment with a LIQUIDFILTERS_ prefix,
// for example LIQUIDFILTERS_LOCALE=fr_FR. A .env file in the working directory is
// loaded first when present. Pass negative amounts after "--".
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/dmitrymomot/liquidfilters/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil && !errors.Is(err, ff.ErrHelp) {
		slog.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run parses args and executes the selected subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.command()

	if err := root.Parse(args, ff.WithEnvVarPrefix("LIQUIDFILTERS")); err != nil {
		sel := root.GetSelected()
		if sel == nil {
			sel = root
		}
		fmt.Fprintf(stderr, "%s\n", ffhelp.Command(sel))
		if errors.Is(err, ff.ErrHelp) {
			return err
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	err := root.Run(ctx)
	logger.Flush(2 * time.Second)

	if errors.Is(err, ff.ErrNoExec) {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Command(root))
	}
	return err
}
