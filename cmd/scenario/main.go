package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/config"
	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/logger"
)

func main() {
	rt, err := config.LoadRuntime()
	if err != nil {
		logger.Error("failed to load runtime settings", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := NewRootCmd(rt).ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
	stop()
}
