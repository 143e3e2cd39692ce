package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/safe-calc/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrFailed) {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
