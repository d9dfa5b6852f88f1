package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/on-the-ground/noise_ive_go/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
