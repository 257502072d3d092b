package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"jobSeniority/internal/domain"
)

// IEnrichmentAnalytics — запись событий обработки файлов в хранилище аналитики (ClickHouse).
type IEnrichmentAnalytics interface {
	WriteFileEvent(ctx context.Context, r domain.FileReport) error
}
