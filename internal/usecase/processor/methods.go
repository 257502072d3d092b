package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/pkg/metrics"
	"jobSeniority/internal/pkg/worker"
)

// ProcessFile — читает JSONL-файл, обогащает все вакансии одним батчем и пишет результат под выходным префиксом.
// Если модель не ответила ни на один промах, файл не пишется: ошибка временная, файл подберёт следующий проход.
func (u *UseCase) ProcessFile(ctx context.Context, key string) (domain.FileReport, error) {
	body, err := u.store.Get(ctx, key)
	if err != nil {
		return domain.FileReport{}, fmt.Errorf("read %s: %w", key, err)
	}

	lines, postings, err := parseLines(body)
	if err != nil {
		return domain.FileReport{}, fmt.Errorf("%s: %w", key, err)
	}

	enr, err := u.enricher.Enrich(ctx, postings)
	if err != nil {
		return domain.FileReport{}, fmt.Errorf("%s: %w", key, err)
	}
	if !enr.OK {
		return domain.FileReport{}, &domain.TransientError{Err: fmt.Errorf("%s: %w", key, domain.ErrInferenceUnavailable)}
	}

	out, err := augment(lines, enr.Seniorities)
	if err != nil {
		return domain.FileReport{}, fmt.Errorf("%s: %w", key, err)
	}

	report := domain.FileReport{
		Key:         key,
		OutputKey:   u.cfg.OutputPrefix + path.Base(key),
		Postings:    len(postings),
		Hits:        enr.Hits,
		Misses:      enr.Misses,
		Resolved:    enr.Resolved,
		Absent:      enr.Absent,
		OK:          enr.OK,
		ProcessedAt: time.Now().UTC(),
	}
	if err := u.store.Put(ctx, report.OutputKey, out); err != nil {
		return domain.FileReport{}, fmt.Errorf("write %s: %w", report.OutputKey, err)
	}
	u.log.Info("file processed", "key", key, "output", report.OutputKey, "postings", report.Postings,
		"hits", report.Hits, "misses", report.Misses, "absent", report.Absent)

	if err := u.repo.SaveRun(ctx, report); err != nil {
		u.log.Warn("run record save", "key", key, "error", err)
	}
	u.publish(ctx, report)

	return report, nil
}

// publish отправляет событие FileProcessed. Ошибка брокера не ломает обработку файла.
func (u *UseCase) publish(ctx context.Context, r domain.FileReport) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(r)
	if err != nil {
		u.log.Warn("file event marshal", "key", r.Key, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(r.Key), value); err != nil {
		u.log.Warn("broker send", "key", r.Key, "error", err)
		return
	}
	u.log.Debug("file event published", "key", r.Key)
}

// Run — один проход по бакету: файлы после курсора обрабатываются пулом воркеров.
// Курсор сдвигается до последнего ключа префикса листинга без повторяемых ошибок: такие файлы
// перечитает следующий проход. Постоянные ошибки (битый файл, нет объекта, нет доступа) курсор
// не держат, файл остаётся только в report.Failed.
func (u *UseCase) Run(ctx context.Context) (domain.RunReport, error) {
	startAfter, _, err := u.cursor.LastKey(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("read cursor: %w", err)
	}
	report := domain.RunReport{StartAfter: startAfter, LastKey: startAfter}
	u.log.Info("run started", "prefix", u.cfg.RawPrefix, "start_after", startAfter)

	results, listErr := worker.ProcessAll(ctx, u.store.Keys(ctx, u.cfg.RawPrefix, startAfter), u.ProcessFile, u.cfg.Workers)

	held := false
	for _, r := range results {
		if r.Err != nil {
			report.Failed = append(report.Failed, domain.FileError{Key: r.Input, Error: r.Err.Error()})
			metrics.FilesProcessed.WithLabelValues(failureStatus(r.Err)).Inc()
			if retryable(r.Err) {
				u.log.Error("file failed, will be retried next run", "key", r.Input, "error", r.Err)
				held = true
			} else {
				u.log.Error("file skipped", "key", r.Input, "error", r.Err)
			}
		} else {
			report.Files = append(report.Files, r.Output)
			metrics.FilesProcessed.WithLabelValues("ok").Inc()
		}
		if !held {
			report.LastKey = r.Input
		}
	}

	if report.LastKey != startAfter {
		// Контекст прохода мог истечь, а успешный префикс сохранить нужно.
		if err := u.cursor.SetLastKey(context.WithoutCancel(ctx), report.LastKey); err != nil {
			return report, fmt.Errorf("advance cursor: %w", err)
		}
	}
	u.log.Info("run finished", "files", len(report.Files), "failed", len(report.Failed), "last_key", report.LastKey)

	if listErr != nil {
		return report, fmt.Errorf("list %s: %w", u.cfg.RawPrefix, listErr)
	}
	return report, nil
}

// retryable — ошибка файла, которую может исправить следующий проход (в том числе прерванный отменой).
func retryable(err error) bool {
	return domain.IsTransient(err) || errors.Is(err, context.Canceled)
}

func failureStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrInferenceUnavailable):
		return "inference_unavailable"
	case errors.Is(err, domain.ErrMalformedFile), errors.Is(err, domain.ErrMalformedPosting):
		return "malformed"
	case errors.Is(err, domain.ErrObjectNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// History — журнал обработанных файлов (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.FileReport, error) {
	return u.repo.GetHistory(ctx)
}

// HandleFileEvent вызывается консьюмером при получении сообщения из топика событий обработки.
func (u *UseCase) HandleFileEvent(ctx context.Context, r domain.FileReport) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteFileEvent(ctx, r); err != nil {
		u.log.Warn("analytics write", "key", r.Key, "error", err)
		return err
	}
	u.log.Info("file event stored to click", "key", r.Key, "postings", r.Postings, "absent", r.Absent)
	return nil
}

// parseLines разбирает JSONL: пустые строки пропускаются, каждая остальная должна быть JSON-объектом.
func parseLines(body []byte) ([][]byte, []domain.Posting, error) {
	var lines [][]byte
	var postings []domain.Posting
	for n, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return nil, nil, fmt.Errorf("line %d: %w", n+1, domain.ErrMalformedFile)
		}
		obj, ok := gjson.ParseBytes(line).Value().(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("line %d: not an object: %w", n+1, domain.ErrMalformedFile)
		}
		lines = append(lines, line)
		postings = append(postings, domain.Posting(obj))
	}
	return lines, postings, nil
}

// augment дописывает в каждую строку поле seniority, не меняя порядок остальных атрибутов.
func augment(lines [][]byte, seniorities []domain.Seniority) ([]byte, error) {
	var buf bytes.Buffer
	for i, line := range lines {
		var (
			out []byte
			err error
		)
		if s := seniorities[i]; s.Known {
			out, err = sjson.SetBytes(line, domain.AttrSeniority, s.Level)
		} else {
			out, err = sjson.SetRawBytes(line, domain.AttrSeniority, []byte("null"))
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		buf.Write(out)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
