package seniority

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jobSeniority/internal/api/grpc/seniorityv1"
	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

// Server реализует gRPC SeniorityModel поверх модели ports.ISeniorityModel.
type Server struct {
	seniorityv1.UnimplementedSeniorityModelServer
	model ports.ISeniorityModel
	log   *slog.Logger
}

// New создаёт gRPC-сервер модели.
func New(model ports.ISeniorityModel, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{model: model, log: log}
}

// InferSeniority переводит батч в доменные запросы, вызывает модель и возвращает ответы с теми же индексами.
func (s *Server) InferSeniority(ctx context.Context, req *seniorityv1.SeniorityRequestBatch) (*seniorityv1.SeniorityResponseBatch, error) {
	in := req.GetBatch()
	batch := make([]domain.SeniorityRequest, 0, len(in))
	for _, r := range in {
		batch = append(batch, domain.SeniorityRequest{
			Index:   int(r.GetIndex()),
			Company: r.GetCompany(),
			Title:   r.GetTitle(),
		})
	}

	out, err := s.model.Infer(ctx, batch)
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		s.log.Error("infer failed", "batch", len(batch), "error", err)
		return nil, status.Errorf(codes.Unavailable, "%v", err)
	}

	items := make([]*seniorityv1.SeniorityResponse, len(out))
	for i, r := range out {
		items[i] = &seniorityv1.SeniorityResponse{
			Index:     int32(r.Index),
			Seniority: int32(r.Seniority),
		}
	}
	return &seniorityv1.SeniorityResponseBatch{Batch: items}, nil
}
