package click

import (
	"context"
	"fmt"

	"jobSeniority/internal/domain"
)

const enrichmentAnalyticsFull = "default.enrichment_analytics"

// FileEventWriter записывает события обработки файлов в ClickHouse: доля попаданий в кэш,
// сколько вакансий осталось без уровня, по времени и по файлам.
type FileEventWriter struct {
	db *Client
}

// NewFileEventWriter создаёт писатель событий для аналитики.
func NewFileEventWriter(db *Client) *FileEventWriter {
	return &FileEventWriter{db: db}
}

// EnsureTable создаёт таблицу событий в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *FileEventWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key String,
			output_key String,
			postings UInt32,
			hits UInt32,
			misses UInt32,
			resolved UInt32,
			absent UInt32,
			ok UInt8,
			processed_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (processed_at, key)
		PARTITION BY toYYYYMM(processed_at)`,
		enrichmentAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteFileEvent реализует ports.IEnrichmentAnalytics: пишет одно событие в ClickHouse.
func (w *FileEventWriter) WriteFileEvent(ctx context.Context, r domain.FileReport) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (key, output_key, postings, hits, misses, resolved, absent, ok, processed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		enrichmentAnalyticsFull,
	)
	ok := uint8(0)
	if r.OK {
		ok = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		r.Key, r.OutputKey, uint32(r.Postings), uint32(r.Hits), uint32(r.Misses),
		uint32(r.Resolved), uint32(r.Absent), ok, r.ProcessedAt)
	if err != nil {
		return fmt.Errorf("insert file event: %w", err)
	}
	return nil
}

// Summary — агрегат по всем событиям.
type Summary struct {
	Files    uint64
	Postings uint64
	Hits     uint64
	Absent   uint64
}

// Summary возвращает суммарные счётчики по таблице событий.
func (w *FileEventWriter) Summary(ctx context.Context) (Summary, error) {
	query := fmt.Sprintf(
		"SELECT count(), sum(postings), sum(hits), sum(absent) FROM %s",
		enrichmentAnalyticsFull,
	)
	var s Summary
	if err := w.db.DB().QueryRowContext(ctx, query).Scan(&s.Files, &s.Postings, &s.Hits, &s.Absent); err != nil {
		return Summary{}, fmt.Errorf("select summary: %w", err)
	}
	return s, nil
}
