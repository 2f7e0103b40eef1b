package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/commands"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/output"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.RootCmd().ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		cancel()
		os.Exit(1)
	}
}
