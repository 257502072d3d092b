package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"jobSeniority/internal/api/grpc/interceptors"
	"jobSeniority/internal/api/grpc/seniority"
	"jobSeniority/internal/api/grpc/seniorityv1"
	"jobSeniority/internal/ports"
)

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует SeniorityModel. Логирующий интерцептор пишет метод, latency_ms и grpc_code (аналог HTTP middleware).
func NewServer(addr string, model ports.ISeniorityModel, log *slog.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.RecoveryUnaryInterceptor(log),
			interceptors.LoggingUnaryInterceptor(log),
		),
		grpc.MaxRecvMsgSize(seniorityv1.MaxMessageSize),
		grpc.MaxSendMsgSize(seniorityv1.MaxMessageSize),
	)
	seniorityv1.RegisterSeniorityModelServer(s, seniority.New(model, log))
	return &Server{grpc: s, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом листенере (в тестах — bufconn).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
