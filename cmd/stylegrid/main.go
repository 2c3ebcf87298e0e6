package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/stylegrid/internal/cli"
)

// main is the entrypoint for the stylegrid application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, nil, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
