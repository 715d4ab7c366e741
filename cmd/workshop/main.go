package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/smarty/workshop/contracts"
	"github.com/smarty/workshop/core"
	"github.com/smarty/workshop/shell"
)

const programName = "workshop"

func main() {
	log.SetFlags(log.Ltime)
	os.Exit(int(run(os.Args[1:], os.Stdout, os.Stderr)))
}

func run(args []string, stdout, stderr io.Writer) contracts.ExitCode {
	loader := core.NewConfigLoader(shell.NewEnvironment(), stderr)
	config, err := loader.LoadConfig(programName, args)
	if errors.Is(err, flag.ErrHelp) {
		return contracts.ExitSuccess
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "[WARN]", err)
		return contracts.ExitUsage
	}
	if config.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s [%s]\n", programName, ldflagsSoftwareVersion)
		return contracts.ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := NewInstallApp(config, stdout).Run(ctx)
	_, _ = fmt.Fprint(stdout, report.Summary())
	if ctx.Err() != nil {
		_, _ = fmt.Fprintln(stderr, "[WARN] Interrupted.")
		return contracts.ExitFailure
	}
	return report.ExitCode()
}

var ldflagsSoftwareVersion = "debug"
