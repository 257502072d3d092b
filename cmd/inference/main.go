package main

import (
	"log/slog"
	"os"

	"jobSeniority/internal/app"
)

func main() {
	cfg, err := app.LoadInferenceCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	a := app.NewInference(cfg)
	if err := a.Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
