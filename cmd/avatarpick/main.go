// Package main runs the avatar selection screen in the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	avatarpickcmd "github.com/louisbranch/avatarpick/internal/cmd/avatarpick"
	"github.com/louisbranch/avatarpick/internal/platform/config"
)

func main() {
	cfg, err := avatarpickcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := avatarpickcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("avatarpick: %v", err)
	}
}
