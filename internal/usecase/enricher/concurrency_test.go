package enricher

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobSeniority/internal/domain"
)

// memCache — потокобезопасный кэш в памяти для тестов с несколькими батчами одновременно.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	sets atomic.Int64
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets.Add(1)
	return nil
}

func (c *memCache) Ping(context.Context) error { return nil }

// lenModel — детерминированная модель: уровень зависит только от ключа.
type lenModel struct {
	calls atomic.Int64
}

func (m *lenModel) InferSeniority(_ context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error) {
	m.calls.Add(1)
	out := make([]domain.SeniorityResponse, 0, len(batch))
	for _, r := range batch {
		out = append(out, domain.SeniorityResponse{Index: r.Index, Seniority: levelFor(r.Company, r.Title)})
	}
	return out, nil
}

func levelFor(company, title string) int {
	return domain.ClampSeniority(len(domain.CacheKey(company, title)) % 8)
}

// Несколько батчей параллельно делят один кэш: гонки промахов по одному ключу безобидны,
// значения у одинаковых ключей совпадают, каждый батч делает не больше одного вызова модели.
func TestEnrich_ConcurrentBatchesShareCache(t *testing.T) {
	cache := newMemCache()
	model := &lenModel{}
	uc := New(cache, model, newTestLogger())

	const batches = 16
	postings := make([]domain.Posting, 0, 10)
	for i := 0; i < 10; i++ {
		postings = append(postings, posting("Company"+strconv.Itoa(i%5), "Title"+strconv.Itoa(i%3)))
	}

	var wg sync.WaitGroup
	results := make([]domain.Enrichment, batches)
	errs := make([]error, batches)
	for b := 0; b < batches; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			results[b], errs[b] = uc.Enrich(context.Background(), postings)
		}(b)
	}
	wg.Wait()

	for b := 0; b < batches; b++ {
		require.NoError(t, errs[b])
		assert.True(t, results[b].OK)
		for i, s := range results[b].Seniorities {
			company, _ := postings[i].Attr(domain.AttrCompany)
			title, _ := postings[i].Attr(domain.AttrTitle)
			assert.Equal(t, domain.Level(levelFor(company, title)), s, fmt.Sprintf("batch %d index %d", b, i))
		}
	}
	assert.LessOrEqual(t, model.calls.Load(), int64(batches))

	// После прогрева повторный батч обходится без модели.
	before := model.calls.Load()
	res, err := uc.Enrich(context.Background(), postings)
	require.NoError(t, err)
	assert.Equal(t, len(postings), res.Hits)
	assert.Equal(t, before, model.calls.Load())
}
