package ports

//go:generate mockgen -source=inference.go -destination=../mocks/inference_mock.go -package=mocks

import (
	"context"

	"jobSeniority/internal/domain"
)

// IInferenceClient — удалённый сервис модели: один синхронный батч-вызов на все промахи.
// Ответы могут прийти в любом порядке и покрыть не все индексы.
type IInferenceClient interface {
	InferSeniority(ctx context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error)
}

// ISeniorityModel — сама модель на стороне gRPC-сервера. Внутреннее устройство — чёрный ящик.
type ISeniorityModel interface {
	Infer(ctx context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error)
}
