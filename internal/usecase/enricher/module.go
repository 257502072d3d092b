package enricher

import (
	"log/slog"

	"jobSeniority/internal/ports"
)

// UseCase — батч-обогащение вакансий: кэш, один вызов модели на все промахи, слияние по индексу.
type UseCase struct {
	cache     *KeyCache
	inference ports.IInferenceClient
	log       *slog.Logger
}

// New создаёт юзкейс обогащения. Клиенты передаются явно, глобальных синглтонов нет.
func New(cache ports.ICache, inference ports.IInferenceClient, log *slog.Logger) *UseCase {
	return &UseCase{cache: NewKeyCache(cache, log), inference: inference, log: log}
}
