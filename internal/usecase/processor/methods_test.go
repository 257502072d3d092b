package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/mocks"
	"jobSeniority/internal/pkg/worker"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func keys(items ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, k := range items {
			if !yield(k, nil) {
				return
			}
		}
	}
}

type deps struct {
	enricher  *mocks.MockIEnricher
	store     *mocks.MockIObjectStore
	cursor    *mocks.MockICursorStore
	repo      *mocks.MockIRunRepository
	broker    *mocks.MockIProducer
	analytics *mocks.MockIEnrichmentAnalytics
}

func newUseCase(t *testing.T) (*UseCase, deps) {
	ctrl := gomock.NewController(t)
	d := deps{
		enricher:  mocks.NewMockIEnricher(ctrl),
		store:     mocks.NewMockIObjectStore(ctrl),
		cursor:    mocks.NewMockICursorStore(ctrl),
		repo:      mocks.NewMockIRunRepository(ctrl),
		broker:    mocks.NewMockIProducer(ctrl),
		analytics: mocks.NewMockIEnrichmentAnalytics(ctrl),
	}
	cfg := Config{
		RawPrefix:    "job-postings-raw/",
		OutputPrefix: "job-postings-mod/",
		// Один воркер и без повторов: порядок вызовов моков детерминирован.
		Workers: worker.Options{Workers: 1, MaxRetries: 0},
	}
	uc := New(cfg, d.enricher, d.store, d.cursor, d.repo, d.broker, d.analytics, newTestLogger())
	return uc, d
}

const rawFile = `{"company":"Tech Corp","title":"Data Scientist","url":"https://a"}

{"company":"Revelio Labs","title":"Senior Data Engineer","location":"New York, NY"}
`

func TestProcessFile_WritesAugmentedLines(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, "job-postings-raw/1.txt").Return([]byte(rawFile), nil)
	d.enricher.EXPECT().Enrich(ctx, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, postings []domain.Posting) (domain.Enrichment, error) {
			// Пустая строка пропущена, атрибуты переданы как есть.
			assert.Equal(t, "Tech Corp", postings[0]["company"])
			assert.Equal(t, "New York, NY", postings[1]["location"])
			return domain.Enrichment{
				Seniorities: []domain.Seniority{domain.Level(4), {}},
				OK:          true, Hits: 1, Misses: 1, Absent: 1,
			}, nil
		})

	var written []byte
	d.store.EXPECT().Put(ctx, "job-postings-mod/1.txt", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body []byte) error {
			written = body
			return nil
		})
	d.repo.EXPECT().SaveRun(ctx, gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(ctx, []byte("job-postings-raw/1.txt"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			var r domain.FileReport
			require.NoError(t, json.Unmarshal(value, &r))
			assert.Equal(t, "job-postings-mod/1.txt", r.OutputKey)
			assert.Equal(t, 1, r.Absent)
			return nil
		})

	report, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	require.NoError(t, err)
	assert.Equal(t, 2, report.Postings)
	assert.Equal(t, 1, report.Hits)
	assert.False(t, report.ProcessedAt.IsZero())

	lines := strings.Split(strings.TrimSuffix(string(written), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"company":"Tech Corp","title":"Data Scientist","url":"https://a","seniority":4}`, lines[0])
	assert.Equal(t, `{"company":"Revelio Labs","title":"Senior Data Engineer","location":"New York, NY","seniority":null}`, lines[1])
}

func TestProcessFile_InferenceUnavailableIsTransient(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, "job-postings-raw/1.txt").Return([]byte(rawFile), nil)
	d.enricher.EXPECT().Enrich(ctx, gomock.Any()).Return(domain.Enrichment{
		Seniorities: make([]domain.Seniority, 2), OK: false, Misses: 2, Absent: 2,
	}, nil)
	// Put, SaveRun и Send не вызываются: файл не пишется.

	_, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceUnavailable)
	var te *domain.TransientError
	assert.ErrorAs(t, err, &te)
}

func TestProcessFile_MalformedLine(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, "job-postings-raw/1.txt").Return([]byte("{\"company\":\"A\",\"title\":\"B\"}\nnot json\n"), nil)

	_, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	assert.ErrorIs(t, err, domain.ErrMalformedFile)
	assert.Contains(t, err.Error(), "line 2")
}

func TestProcessFile_NonObjectLine(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, "job-postings-raw/1.txt").Return([]byte("[1,2,3]\n"), nil)

	_, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	assert.ErrorIs(t, err, domain.ErrMalformedFile)
}

func TestProcessFile_MalformedPosting(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, gomock.Any()).Return([]byte(`{"title":"B"}`), nil)
	d.enricher.EXPECT().Enrich(ctx, gomock.Any()).
		Return(domain.Enrichment{}, errors.Join(errors.New("posting 0"), domain.ErrMalformedPosting))

	_, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	assert.ErrorIs(t, err, domain.ErrMalformedPosting)
}

func TestProcessFile_SideEffectFailuresAreNotFatal(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.store.EXPECT().Get(ctx, gomock.Any()).Return([]byte(`{"company":"A","title":"B"}`), nil)
	d.enricher.EXPECT().Enrich(ctx, gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(2)}, OK: true, Misses: 1, Resolved: 1,
	}, nil)
	d.store.EXPECT().Put(ctx, "job-postings-mod/1.txt", []byte("{\"company\":\"A\",\"title\":\"B\",\"seniority\":2}\n")).Return(nil)
	d.repo.EXPECT().SaveRun(ctx, gomock.Any()).Return(errors.New("pg down"))
	d.broker.EXPECT().Send(ctx, gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	report, err := uc.ProcessFile(ctx, "job-postings-raw/1.txt")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Resolved)
}

// okFile программирует успешную обработку файла key с одной вакансией.
func okFile(d deps, key string) {
	d.store.EXPECT().Get(gomock.Any(), key).Return([]byte(`{"company":"A","title":"B"}`), nil)
	d.store.EXPECT().Put(gomock.Any(), "job-postings-mod/"+key[len("job-postings-raw/"):], gomock.Any()).Return(nil)
}

var connReset = &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")}

func TestRun_RetryableFailureHoldsCursor(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("job-postings-raw/0.txt", true, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "job-postings-raw/0.txt").
		Return(keys("job-postings-raw/1.txt", "job-postings-raw/2.txt", "job-postings-raw/3.txt"))

	okFile(d, "job-postings-raw/1.txt")
	okFile(d, "job-postings-raw/3.txt")
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/2.txt").Return(nil, connReset)

	d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
	}, nil).Times(2)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Файл 2 упал с сетевой ошибкой — курсор встаёт на 1, файлы 2 и 3 будут перечитаны следующим проходом.
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/1.txt").Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "job-postings-raw/0.txt", report.StartAfter)
	assert.Equal(t, "job-postings-raw/1.txt", report.LastKey)
	assert.Len(t, report.Files, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "job-postings-raw/2.txt", report.Failed[0].Key)
}

func TestRun_AllSucceeded(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").
		Return(keys("job-postings-raw/1.txt", "job-postings-raw/2.txt"))
	okFile(d, "job-postings-raw/1.txt")
	okFile(d, "job-postings-raw/2.txt")
	d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
	}, nil).Times(2)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/2.txt").Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "job-postings-raw/2.txt", report.LastKey)
	assert.Empty(t, report.Failed)
}

func TestRun_NothingNew(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("job-postings-raw/9.txt", true, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "job-postings-raw/9.txt").Return(keys())
	// SetLastKey не вызывается: курсор не сдвинулся.

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "job-postings-raw/9.txt", report.LastKey)
	assert.Empty(t, report.Files)
}

func TestRun_FirstFileFailsCursorStays(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").
		Return(keys("job-postings-raw/1.txt", "job-postings-raw/2.txt"))
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/1.txt").Return(nil, connReset)
	okFile(d, "job-postings-raw/2.txt")
	d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
	}, nil)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "", report.LastKey)
	assert.Len(t, report.Files, 1)
	assert.Len(t, report.Failed, 1)
}

// Битый или недоступный файл повтором не починить: он попадает в Failed, но курсор уходит дальше,
// иначе такой файл держал бы курсор вечно.
func TestRun_PermanentFailureDoesNotPinCursor(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").
		Return(keys("job-postings-raw/1.txt", "job-postings-raw/2.txt", "job-postings-raw/3.txt"))
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/1.txt").Return([]byte("{not json"), nil)
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/2.txt").Return(nil, errors.New("api error AccessDenied: Access Denied"))
	okFile(d, "job-postings-raw/3.txt")
	d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
	}, nil)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/3.txt").Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "job-postings-raw/3.txt", report.LastKey)
	assert.Len(t, report.Files, 1)
	require.Len(t, report.Failed, 2)
	assert.Equal(t, "job-postings-raw/1.txt", report.Failed[0].Key)
	assert.Equal(t, "job-postings-raw/2.txt", report.Failed[1].Key)
}

// Постоянные ошибки пропускаются, первая повторяемая останавливает курсор.
func TestRun_CursorStopsAtFirstRetryableFailure(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").
		Return(keys("job-postings-raw/1.txt", "job-postings-raw/2.txt", "job-postings-raw/3.txt", "job-postings-raw/4.txt"))
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/1.txt").
		Return(nil, fmt.Errorf("get s3://b/job-postings-raw/1.txt: %w", domain.ErrObjectNotFound))
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/2.txt").Return([]byte(`{"company":"","title":"B"}`), nil)
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/3.txt").Return([]byte(`{"company":"A","title":"B"}`), nil)
	okFile(d, "job-postings-raw/4.txt")
	gomock.InOrder(
		d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).
			Return(domain.Enrichment{}, fmt.Errorf("posting 0: %w", domain.ErrMalformedPosting)),
		d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
			Seniorities: make([]domain.Seniority, 1), OK: false, Misses: 1, Absent: 1,
		}, nil),
		d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
			Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
		}, nil),
	)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/2.txt").Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "job-postings-raw/2.txt", report.LastKey)
	assert.Len(t, report.Files, 1)
	assert.Len(t, report.Failed, 3)
}

func TestRun_RetriesTransientFile(t *testing.T) {
	uc, d := newUseCase(t)
	uc.cfg.Workers = worker.Options{Workers: 1, MaxRetries: 1, BackoffInitial: time.Millisecond, BackoffMax: time.Millisecond}
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").Return(keys("job-postings-raw/1.txt"))
	d.store.EXPECT().Get(gomock.Any(), "job-postings-raw/1.txt").Return([]byte(`{"company":"A","title":"B"}`), nil).Times(2)
	gomock.InOrder(
		d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
			Seniorities: make([]domain.Seniority, 1), OK: false, Misses: 1, Absent: 1,
		}, nil),
		d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
			Seniorities: []domain.Seniority{domain.Level(5)}, OK: true, Misses: 1, Resolved: 1,
		}, nil),
	)
	d.store.EXPECT().Put(gomock.Any(), "job-postings-mod/1.txt", gomock.Any()).Return(nil)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/1.txt").Return(nil)

	report, err := uc.Run(ctx)

	require.NoError(t, err)
	assert.Len(t, report.Files, 1)
	assert.Empty(t, report.Failed)
}

func TestRun_CursorReadError(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()

	d.cursor.EXPECT().LastKey(ctx).Return("", false, errors.New("redis down"))

	_, err := uc.Run(ctx)

	assert.ErrorContains(t, err, "read cursor")
}

func TestRun_ListErrorKeepsProcessedPrefix(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	listErr := errors.New("list page failed")

	d.cursor.EXPECT().LastKey(ctx).Return("", false, nil)
	d.store.EXPECT().Keys(ctx, "job-postings-raw/", "").Return(func(yield func(string, error) bool) {
		if !yield("job-postings-raw/1.txt", nil) {
			return
		}
		yield("", listErr)
	})
	okFile(d, "job-postings-raw/1.txt")
	d.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(domain.Enrichment{
		Seniorities: []domain.Seniority{domain.Level(3)}, OK: true, Hits: 1,
	}, nil)
	d.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.cursor.EXPECT().SetLastKey(gomock.Any(), "job-postings-raw/1.txt").Return(nil)

	report, err := uc.Run(ctx)

	assert.ErrorIs(t, err, listErr)
	assert.Equal(t, "job-postings-raw/1.txt", report.LastKey)
}

func TestHistory(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	want := []domain.FileReport{{ID: 1, Key: "job-postings-raw/1.txt"}}

	d.repo.EXPECT().GetHistory(ctx).Return(want, nil)

	got, err := uc.History(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHandleFileEvent(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	ev := domain.FileReport{Key: "job-postings-raw/1.txt", Postings: 3}

	d.analytics.EXPECT().WriteFileEvent(ctx, ev).Return(nil)
	require.NoError(t, uc.HandleFileEvent(ctx, ev))

	d.analytics.EXPECT().WriteFileEvent(ctx, ev).Return(errors.New("click down"))
	assert.Error(t, uc.HandleFileEvent(ctx, ev))
}
