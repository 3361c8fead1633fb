package jobrunnerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	JobRunnerService_Run_FullMethodName    = "/jobrunner.v1.JobRunnerService/Run"
	JobRunnerService_Stop_FullMethodName   = "/jobrunner.v1.JobRunnerService/Stop"
	JobRunnerService_Status_FullMethodName = "/jobrunner.v1.JobRunnerService/Status"
	JobRunnerService_Log_FullMethodName    = "/jobrunner.v1.JobRunnerService/Log"
)

// JobRunnerServiceClient is the client API for JobRunnerService.
type JobRunnerServiceClient interface {
	Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error)
	Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*StopResponse, error)
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	Log(ctx context.Context, in *LogRequest, opts ...grpc.CallOption) (JobRunnerService_LogClient, error)
}

type jobRunnerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobRunnerServiceClient(cc grpc.ClientConnInterface) JobRunnerServiceClient {
	return &jobRunnerServiceClient{cc}
}

func (c *jobRunnerServiceClient) Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error) {
	out := new(RunResponse)
	if err := c.cc.Invoke(ctx, JobRunnerService_Run_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobRunnerServiceClient) Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*StopResponse, error) {
	out := new(StopResponse)
	if err := c.cc.Invoke(ctx, JobRunnerService_Stop_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobRunnerServiceClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	if err := c.cc.Invoke(ctx, JobRunnerService_Status_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobRunnerServiceClient) Log(ctx context.Context, in *LogRequest, opts ...grpc.CallOption) (JobRunnerService_LogClient, error) {
	stream, err := c.cc.NewStream(ctx, &JobRunnerService_ServiceDesc.Streams[0], JobRunnerService_Log_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &jobRunnerServiceLogClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// JobRunnerService_LogClient is the client stream for the Log RPC.
type JobRunnerService_LogClient interface {
	Recv() (*LogChunk, error)
	grpc.ClientStream
}

type jobRunnerServiceLogClient struct {
	grpc.ClientStream
}

func (x *jobRunnerServiceLogClient) Recv() (*LogChunk, error) {
	m := new(LogChunk)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// JobRunnerServiceServer is the server API for JobRunnerService.
type JobRunnerServiceServer interface {
	Run(context.Context, *RunRequest) (*RunResponse, error)
	Stop(context.Context, *StopRequest) (*StopResponse, error)
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	Log(*LogRequest, JobRunnerService_LogServer) error
	mustEmbedUnimplementedJobRunnerServiceServer()
}

// UnimplementedJobRunnerServiceServer must be embedded by every
// implementation, so adding a method to the interface later is not a
// breaking change for existing servers.
type UnimplementedJobRunnerServiceServer struct{}

func (UnimplementedJobRunnerServiceServer) Run(context.Context, *RunRequest) (*RunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Run not implemented")
}

func (UnimplementedJobRunnerServiceServer) Stop(context.Context, *StopRequest) (*StopResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stop not implemented")
}

func (UnimplementedJobRunnerServiceServer) Status(context.Context, *StatusRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Status not implemented")
}

func (UnimplementedJobRunnerServiceServer) Log(*LogRequest, JobRunnerService_LogServer) error {
	return status.Error(codes.Unimplemented, "method Log not implemented")
}

func (UnimplementedJobRunnerServiceServer) mustEmbedUnimplementedJobRunnerServiceServer() {}

// UnsafeJobRunnerServiceServer may be embedded to opt out of forward
// compatibility for this service. Use of this interface is not recommended.
type UnsafeJobRunnerServiceServer interface {
	mustEmbedUnimplementedJobRunnerServiceServer()
}

func RegisterJobRunnerServiceServer(s grpc.ServiceRegistrar, srv JobRunnerServiceServer) {
	s.RegisterService(&JobRunnerService_ServiceDesc, srv)
}

func _JobRunnerService_Run_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobRunnerServiceServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobRunnerService_Run_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobRunnerServiceServer).Run(ctx, req.(*RunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobRunnerService_Stop_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobRunnerServiceServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobRunnerService_Stop_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobRunnerServiceServer).Stop(ctx, req.(*StopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobRunnerService_Status_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobRunnerServiceServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobRunnerService_Status_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobRunnerServiceServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobRunnerService_Log_Handler(srv any, stream grpc.ServerStream) error {
	m := new(LogRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobRunnerServiceServer).Log(m, &jobRunnerServiceLogServer{stream})
}

// JobRunnerService_LogServer is the server stream for the Log RPC.
type JobRunnerService_LogServer interface {
	Send(*LogChunk) error
	grpc.ServerStream
}

type jobRunnerServiceLogServer struct {
	grpc.ServerStream
}

func (x *jobRunnerServiceLogServer) Send(m *LogChunk) error {
	return x.ServerStream.SendMsg(m)
}

// JobRunnerService_ServiceDesc is the grpc.ServiceDesc for JobRunnerService.
var JobRunnerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "jobrunner.v1.JobRunnerService",
	HandlerType: (*JobRunnerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Run", Handler: _JobRunnerService_Run_Handler},
		{MethodName: "Stop", Handler: _JobRunnerService_Stop_Handler},
		{MethodName: "Status", Handler: _JobRunnerService_Status_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Log",
			Handler:       _JobRunnerService_Log_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "jobrunner/v1/jobrunner.proto",
}
