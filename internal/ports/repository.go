package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"jobSeniority/internal/domain"
)

// IRunRepository — журнал обработанных файлов (PostgreSQL или MongoDB).
type IRunRepository interface {
	SaveRun(ctx context.Context, r domain.FileReport) error
	GetHistory(ctx context.Context) ([]domain.FileReport, error)
	Ping(ctx context.Context) error
}
