package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "jobSeniority/internal/api/grpc"
	"jobSeniority/internal/pkg/logger"
	"jobSeniority/internal/ports"
	"jobSeniority/internal/usecase/model"
)

// InferenceApp — сервис модели сеньорности за gRPC.
type InferenceApp struct {
	cfg InferenceConfig
}

// NewInference создаёт сервис модели с конфигом.
func NewInference(cfg InferenceConfig) *InferenceApp {
	return &InferenceApp{cfg: cfg}
}

// Run выбирает модель, поднимает gRPC-сервер и блокируется до SIGINT/SIGTERM, затем делает graceful stop.
func (a *InferenceApp) Run() error {
	log := logger.NewFromConfig(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := newModel(ctx, a.cfg, log)
	if err != nil {
		return err
	}

	addr := a.cfg.Grpc.Host + ":" + a.cfg.Grpc.Port
	srv := apigrpc.NewServer(addr, m, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	log.Info("inference service started", "grpc", addr, "model", a.cfg.Model)

	select {
	case err := <-errCh:
		return fmt.Errorf("grpc server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func newModel(ctx context.Context, cfg InferenceConfig, log *slog.Logger) (ports.ISeniorityModel, error) {
	switch cfg.Model {
	case ModelHeuristic:
		return model.NewHeuristic(), nil
	case ModelRandom:
		return model.NewRandom(), nil
	case ModelGemini:
		g, err := model.NewGemini(ctx, cfg.Gemini, log)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown model %q (want %s, %s or %s)", cfg.Model, ModelHeuristic, ModelGemini, ModelRandom)
	}
}
