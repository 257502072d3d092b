package inference

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"jobSeniority/internal/api/grpc/seniorityv1"
	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

// Config — адрес gRPC-сервиса модели, таймаут одного батч-вызова и предел размера сообщения (0 — seniorityv1.MaxMessageSize).
type Config struct {
	Addr       string        `envconfig:"ADDR" default:"localhost:50051"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"30s"`
	MaxMsgSize int           `envconfig:"MAX_MSG_SIZE"`
}

var _ ports.IInferenceClient = (*Client)(nil)

// Client реализует ports.IInferenceClient поверх gRPC SeniorityModel.
type Client struct {
	conn    *grpc.ClientConn
	stub    seniorityv1.SeniorityModelClient
	timeout time.Duration
}

// New создаёт клиента. Соединение ленивое: недоступный сервер проявится ошибкой первого вызова.
func New(cfg *Config, opts ...grpc.DialOption) (*Client, error) {
	maxMsg := cfg.MaxMsgSize
	if maxMsg <= 0 {
		maxMsg = seniorityv1.MaxMessageSize
	}
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMsg), grpc.MaxCallSendMsgSize(maxMsg)),
	}, opts...)
	conn, err := grpc.NewClient(cfg.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("inference dial %s: %w", cfg.Addr, err)
	}
	return &Client{conn: conn, stub: seniorityv1.NewSeniorityModelClient(conn), timeout: cfg.Timeout}, nil
}

// InferSeniority отправляет один батч и ждёт ответ не дольше таймаута.
func (c *Client) InferSeniority(ctx context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &seniorityv1.SeniorityRequestBatch{Batch: make([]*seniorityv1.SeniorityRequest, len(batch))}
	for i, r := range batch {
		req.Batch[i] = &seniorityv1.SeniorityRequest{
			Index:   int32(r.Index),
			Company: r.Company,
			Title:   r.Title,
		}
	}

	resp, err := c.stub.InferSeniority(ctx, req, grpc.WaitForReady(false))
	if err != nil {
		return nil, fmt.Errorf("infer seniority: %w", err)
	}

	out := make([]domain.SeniorityResponse, 0, len(resp.GetBatch()))
	for _, r := range resp.GetBatch() {
		if r == nil {
			continue
		}
		out = append(out, domain.SeniorityResponse{Index: int(r.GetIndex()), Seniority: int(r.GetSeniority())})
	}
	return out, nil
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.conn.Close()
}
