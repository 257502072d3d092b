package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"jobSeniority/internal/domain"
)

// IEnricher — обогащение батча вакансий уровнем сеньорности через кэш и один батч-вызов модели.
type IEnricher interface {
	Enrich(ctx context.Context, postings []domain.Posting) (domain.Enrichment, error)
}

// IProcessorUseCase — обработка бакета: файлы, история, события из Kafka.
type IProcessorUseCase interface {
	ProcessFile(ctx context.Context, key string) (domain.FileReport, error)
	Run(ctx context.Context) (domain.RunReport, error)
	History(ctx context.Context) ([]domain.FileReport, error)
	HandleFileEvent(ctx context.Context, r domain.FileReport) error
}
