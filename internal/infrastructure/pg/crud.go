package pg

import (
	"context"
	"log/slog"

	"jobSeniority/internal/domain"
)

// historyLimit — сколько последних записей отдаёт GetHistory.
const historyLimit = 1000

// RunRepo реализует ports.IRunRepository для PostgreSQL.
type RunRepo struct {
	db  *DB
	log *slog.Logger
}

// NewRunRepo возвращает журнал обработанных файлов.
func NewRunRepo(db *DB, log *slog.Logger) *RunRepo {
	return &RunRepo{db: db, log: log}
}

// SaveRun сохраняет итог обработки файла.
func (r *RunRepo) SaveRun(ctx context.Context, rep domain.FileReport) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO processed_files (key, output_key, postings, hits, misses, resolved, absent, ok, processed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rep.Key, rep.OutputKey, rep.Postings, rep.Hits, rep.Misses, rep.Resolved, rep.Absent, rep.OK, rep.ProcessedAt)
	if err != nil {
		r.log.Debug("SaveRun failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает журнал обработанных файлов (последние сначала).
func (r *RunRepo) GetHistory(ctx context.Context) ([]domain.FileReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, key, output_key, postings, hits, misses, resolved, absent, ok, processed_at
		 FROM processed_files ORDER BY processed_at DESC, id DESC LIMIT $1`, historyLimit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.FileReport
	for rows.Next() {
		var rep domain.FileReport
		err := rows.Scan(&rep.ID, &rep.Key, &rep.OutputKey, &rep.Postings, &rep.Hits, &rep.Misses,
			&rep.Resolved, &rep.Absent, &rep.OK, &rep.ProcessedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *RunRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
