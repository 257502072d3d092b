package model

import (
	"context"
	"math/rand/v2"

	"jobSeniority/internal/domain"
)

// Random — заглушка с равномерно случайным уровнем 1..7. Полезна для нагрузочных прогонов конвейера.
type Random struct{}

func NewRandom() *Random {
	return &Random{}
}

func (Random) Infer(_ context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error) {
	out := make([]domain.SeniorityResponse, len(batch))
	for i, r := range batch {
		out[i] = domain.SeniorityResponse{
			Index:     r.Index,
			Seniority: domain.MinSeniority + rand.IntN(domain.MaxSeniority-domain.MinSeniority+1),
		}
	}
	return out, nil
}
