package enricher

import (
	"context"
	"fmt"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/pkg/metrics"
)

// miss — промах по одному ключу: индекс, с которым ключ уходит в модель, и все позиции с этим ключом.
type miss struct {
	key      string
	req      domain.SeniorityRequest
	indices  []int
	resolved bool
}

// Enrich — для каждой вакансии проверяет кэш; все промахи отправляет модели одним батч-вызовом,
// раскладывает ответы по исходным позициям и пишет их в кэш.
// Ошибка возвращается только для вакансии без company/title. Недоступность модели не ошибка:
// промахи остаются неизвестными, а OK == false, если не пришло ни одного ответа.
func (u *UseCase) Enrich(ctx context.Context, postings []domain.Posting) (domain.Enrichment, error) {
	out := domain.Enrichment{Seniorities: make([]domain.Seniority, len(postings)), OK: true}
	if len(postings) == 0 {
		return out, nil
	}

	keys := make([]string, len(postings))
	for i, p := range postings {
		key, err := p.CacheKey()
		if err != nil {
			return domain.Enrichment{}, fmt.Errorf("posting %d: %w", i, err)
		}
		keys[i] = key
	}

	var misses []*miss
	byKey := make(map[string]*miss)
	for i, key := range keys {
		if level, found := u.cache.Get(ctx, key); found {
			out.Seniorities[i] = domain.Level(level)
			out.Hits++
			continue
		}
		out.Misses++
		if m, ok := byKey[key]; ok {
			m.indices = append(m.indices, i)
			continue
		}
		company, _ := postings[i].Attr(domain.AttrCompany)
		title, _ := postings[i].Attr(domain.AttrTitle)
		m := &miss{
			key:     key,
			req:     domain.SeniorityRequest{Index: i, Company: company, Title: title},
			indices: []int{i},
		}
		byKey[key] = m
		misses = append(misses, m)
	}

	if len(misses) == 0 {
		return out, nil
	}

	// В модель уходит один запрос на ключ, но ответ принимается по любой позиции этого ключа.
	batch := make([]domain.SeniorityRequest, len(misses))
	byIndex := make(map[int]*miss, out.Misses)
	for i, m := range misses {
		batch[i] = m.req
		for _, idx := range m.indices {
			byIndex[idx] = m
		}
	}

	accepted := u.merge(ctx, &out, byIndex, u.fetch(ctx, batch))

	out.Absent = out.Misses - out.Resolved
	if accepted == 0 {
		out.OK = false
		metrics.InferenceCalls.WithLabelValues("failed").Inc()
	} else if out.Absent > 0 {
		metrics.InferenceCalls.WithLabelValues("partial").Inc()
	} else {
		metrics.InferenceCalls.WithLabelValues("ok").Inc()
	}
	return out, nil
}

// fetch делает единственный батч-вызов модели. Любая ошибка транспорта — пустой ответ.
func (u *UseCase) fetch(ctx context.Context, batch []domain.SeniorityRequest) []domain.SeniorityResponse {
	metrics.InferenceBatchSize.Observe(float64(len(batch)))
	resp, err := u.inference.InferSeniority(ctx, batch)
	if err != nil {
		u.log.Error("seniority inference failed", "batch", len(batch), "error", err)
		return nil
	}
	return resp
}

// merge раскладывает ответы модели по позициям промахов и прогревает кэш. Возвращает число принятых ответов.
func (u *UseCase) merge(ctx context.Context, out *domain.Enrichment, byIndex map[int]*miss, resp []domain.SeniorityResponse) int {
	accepted := 0
	for _, r := range resp {
		m, ok := byIndex[r.Index]
		if !ok {
			u.log.Warn("inference returned unknown index, ignored", "index", r.Index)
			continue
		}
		if m.resolved {
			u.log.Warn("inference returned repeated answer for key, ignored", "index", r.Index, "key", m.key)
			continue
		}
		m.resolved = true
		accepted++

		for _, i := range m.indices {
			out.Seniorities[i] = domain.Level(r.Seniority)
		}
		out.Resolved += len(m.indices)

		if err := u.cache.Set(ctx, m.key, r.Seniority); err != nil {
			u.log.Warn("cache set failed", "key", m.key, "error", err)
		}
	}
	return accepted
}
