package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/sweeps/cmd/sweeps"
	"github.com/arthur-debert/sweeps/pkg/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := sweeps.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		renderer := output.NewRenderer(os.Stderr, output.FormatAuto, false)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		stop()
		os.Exit(1)
	}
}
