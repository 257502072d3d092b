package seniorityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName                                  = "seniority.v1.SeniorityModel"
	SeniorityModel_InferSeniority_FullMethodName = "/seniority.v1.SeniorityModel/InferSeniority"
)

// SeniorityModelClient — клиентская сторона сервиса.
type SeniorityModelClient interface {
	InferSeniority(ctx context.Context, in *SeniorityRequestBatch, opts ...grpc.CallOption) (*SeniorityResponseBatch, error)
}

type seniorityModelClient struct {
	cc grpc.ClientConnInterface
}

// NewSeniorityModelClient создаёт клиента поверх соединения. Кодек выбирается через CallContentSubtype.
func NewSeniorityModelClient(cc grpc.ClientConnInterface) SeniorityModelClient {
	return &seniorityModelClient{cc: cc}
}

func (c *seniorityModelClient) InferSeniority(ctx context.Context, in *SeniorityRequestBatch, opts ...grpc.CallOption) (*SeniorityResponseBatch, error) {
	out := new(SeniorityResponseBatch)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, SeniorityModel_InferSeniority_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SeniorityModelServer — серверная сторона сервиса.
type SeniorityModelServer interface {
	InferSeniority(context.Context, *SeniorityRequestBatch) (*SeniorityResponseBatch, error)
}

// UnimplementedSeniorityModelServer встраивается в реализации для совместимости вперёд.
type UnimplementedSeniorityModelServer struct{}

func (UnimplementedSeniorityModelServer) InferSeniority(context.Context, *SeniorityRequestBatch) (*SeniorityResponseBatch, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InferSeniority not implemented")
}

// RegisterSeniorityModelServer регистрирует реализацию на gRPC-сервере.
func RegisterSeniorityModelServer(s grpc.ServiceRegistrar, srv SeniorityModelServer) {
	s.RegisterService(&SeniorityModel_ServiceDesc, srv)
}

func _SeniorityModel_InferSeniority_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SeniorityRequestBatch)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeniorityModelServer).InferSeniority(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SeniorityModel_InferSeniority_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SeniorityModelServer).InferSeniority(ctx, req.(*SeniorityRequestBatch))
	}
	return interceptor(ctx, in, info, handler)
}

// SeniorityModel_ServiceDesc — описание сервиса для grpc.Server.
var SeniorityModel_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SeniorityModelServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InferSeniority",
			Handler:    _SeniorityModel_InferSeniority_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "seniority/v1/seniority.proto",
}
