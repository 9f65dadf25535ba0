// Package main writes a session record and prints its session id.
package main

import (
	"context"
	"flag"
	"os"

	seedcmd "github.com/louisbranch/avatarpick/internal/cmd/seed"
	"github.com/louisbranch/avatarpick/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := seedcmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("seed: %v", err)
	}
}
