package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flux-pwa-generator/cli"
	apperrors "flux-pwa-generator/pkg/errors"
)

func main() {
	// Stop between files on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(apperrors.ExitCode(err))
	}
}
