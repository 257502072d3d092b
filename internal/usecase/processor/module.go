package processor

import (
	"log/slog"

	"jobSeniority/internal/pkg/worker"
	"jobSeniority/internal/ports"
)

// Config — префиксы бакета и настройки пула. Переменные: SENIORITY_PROCESSOR_*.
type Config struct {
	RawPrefix    string         `envconfig:"RAW_PREFIX" default:"job-postings-raw/"`
	OutputPrefix string         `envconfig:"OUTPUT_PREFIX" default:"job-postings-mod/"`
	RunOnStart   bool           `envconfig:"RUN_ON_START" default:"false"`
	Workers      worker.Options `envconfig:"WORKERS"`
}

// UseCase — обработка файлов бакета: чтение, обогащение, запись, курсор, события.
type UseCase struct {
	cfg       Config
	enricher  ports.IEnricher
	store     ports.IObjectStore
	cursor    ports.ICursorStore
	repo      ports.IRunRepository
	broker    ports.IProducer
	analytics ports.IEnrichmentAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс обработки. broker и analytics могут быть nil: тогда события не публикуются и не пишутся.
func New(
	cfg Config,
	enricher ports.IEnricher,
	store ports.IObjectStore,
	cursor ports.ICursorStore,
	repo ports.IRunRepository,
	broker ports.IProducer,
	analytics ports.IEnrichmentAnalytics,
	log *slog.Logger,
) *UseCase {
	return &UseCase{
		cfg:       cfg,
		enricher:  enricher,
		store:     store,
		cursor:    cursor,
		repo:      repo,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}
