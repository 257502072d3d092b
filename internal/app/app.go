package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "jobSeniority/internal/api/http"
	"jobSeniority/internal/api/http/controllers/enrich"
	"jobSeniority/internal/api/http/controllers/runs"
	"jobSeniority/internal/api/http/controllers/system"
	"jobSeniority/internal/infrastructure/click"
	"jobSeniority/internal/infrastructure/inference"
	"jobSeniority/internal/infrastructure/kafka"
	"jobSeniority/internal/infrastructure/mongo"
	"jobSeniority/internal/infrastructure/pg"
	"jobSeniority/internal/infrastructure/redis"
	"jobSeniority/internal/infrastructure/s3"
	"jobSeniority/internal/pkg/logger"
	"jobSeniority/internal/ports"
	"jobSeniority/internal/usecase/enricher"
	"jobSeniority/internal/usecase/processor"
)

// App — пайплайн обогащения: HTTP API, обработка бакета, консьюмер событий.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения — в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к инфраструктуре, собирает юзкейсы и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewFromConfig(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.New(ctx, &a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()
	cache := redis.NewCache(rdb, log)
	cursor := redis.NewCursorStore(rdb, a.cfg.Redis.CursorKey)

	model, err := inference.New(&a.cfg.Inference)
	if err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	defer model.Close()

	s3cli, err := s3.NewClient(ctx, &a.cfg.S3)
	if err != nil {
		return fmt.Errorf("s3: %w", err)
	}
	store := s3.NewStore(s3cli, a.cfg.S3.Bucket, a.cfg.S3.PageSize, log)

	repo, closeRepo, err := a.runRepository(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Kafka и ClickHouse необязательны: без них события не публикуются и не пишутся в аналитику.
	var producer ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		defer p.Close()
		producer = p
	}
	var analytics ports.IEnrichmentAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		w := click.NewFileEventWriter(ch)
		if err := w.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse ensure table: %w", err)
		}
		analytics = w
	}

	enr := enricher.New(cache, model, log)
	proc := processor.New(a.cfg.Processor, enr, store, cursor, repo, producer, analytics, log)

	if a.cfg.Kafka.Enabled && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, proc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	if a.cfg.Processor.RunOnStart {
		go func() {
			if _, err := proc.Run(ctx); err != nil {
				log.Error("startup run failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(map[string]system.Pinger{"cache": cache, "runs": repo}, log),
		enrich.New(enr, log),
		runs.New(proc, log))

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"inference", a.cfg.Inference.Addr,
		"bucket", a.cfg.S3.Bucket,
		"runs_backend", a.cfg.RunsBackend)

	return srv.Start(ctx)
}

// runRepository подключает журнал обработанных файлов по RunsBackend.
func (a *App) runRepository(ctx context.Context, log *slog.Logger) (ports.IRunRepository, func(), error) {
	switch a.cfg.RunsBackend {
	case RunsBackendPG:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewRunRepo(db, log), func() { _ = db.Close() }, nil
	case RunsBackendMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewRunRepo(cli, log), func() { _ = cli.Disconnect(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown runs backend %q (want %s or %s)", a.cfg.RunsBackend, RunsBackendPG, RunsBackendMongo)
	}
}
