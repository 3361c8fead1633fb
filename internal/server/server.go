// Package server wires the gRPC transport: mutual TLS 1.3, health,
// reflection, the authorization interceptor, and the JobRunnerService
// handlers backed by internal/rpcadapter.
package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/auth"
	"github.com/mrhwick/jobrunner/internal/config"
	"github.com/mrhwick/jobrunner/internal/rpcadapter"
	"github.com/mrhwick/jobrunner/pkg/runner"
)

// Server is the JobRunnerService gRPC handler plus its transport.
type Server struct {
	jobrunnerpb.UnimplementedJobRunnerServiceServer

	cfg     *config.ServerConfig
	adapter *rpcadapter.Adapter
	s       *grpc.Server
	health  *health.Server
}

// New builds a Server ready to Serve. adapter wraps the Runner that
// actually executes jobs; pred authorizes each call's verified client
// certificate chain.
func New(cfg *config.ServerConfig, adapter *rpcadapter.Adapter, pred auth.Predicate) (*Server, error) {
	srv := &Server{cfg: cfg, adapter: adapter}

	tlsConfig, err := srv.tlsConfig()
	if err != nil {
		return nil, err
	}

	srv.s = grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    config.DefaultKeepaliveTime,
			Timeout: config.DefaultKeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             config.DefaultKeepaliveMinTime,
			PermitWithoutStream: true,
		}),
		grpc.Creds(credentials.NewTLS(tlsConfig)),
		grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(pred)),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(pred)),
	)

	srv.health = health.NewServer()
	healthpb.RegisterHealthServer(srv.s, srv.health)
	reflection.Register(srv.s)

	jobrunnerpb.RegisterJobRunnerServiceServer(srv.s, srv)

	srv.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return srv, nil
}

func (s *Server) tlsConfig() (*tls.Config, error) {
	crt, err := tls.LoadX509KeyPair(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("error loading server keypair: %w", err)
	}

	caCert, err := os.ReadFile(s.cfg.TLS.CACertFile)
	if err != nil {
		return nil, fmt.Errorf("error loading ca-cert file: %w", err)
	}

	clientCAs := x509.NewCertPool()
	if !clientCAs.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no certificates found in %s", s.cfg.TLS.CACertFile)
	}

	suite, err := s.cfg.Cipher.TLSCipherSuite()
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    clientCAs,
		Certificates: []tls.Certificate{crt},
		MinVersion:   tls.VersionTLS13,
		CipherSuites: []uint16{suite},
	}, nil
}

// Serve blocks accepting connections on cfg.Addr until the listener or
// server is closed.
func (s *Server) Serve() error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	slog.Info("listening", "addr", lis.Addr())

	return s.s.Serve(lis)
}

// ForceStop forcibly terminates all connections.
func (s *Server) ForceStop() {
	s.health.Shutdown()
	s.s.Stop()
}

// GracefulStop waits for in-flight RPCs to finish.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.s.GracefulStop()
}

// Run implements JobRunnerServiceServer.
func (s *Server) Run(_ context.Context, req *jobrunnerpb.RunRequest) (*jobrunnerpb.RunResponse, error) {
	return s.adapter.Run(req), nil
}

// Stop implements JobRunnerServiceServer.
func (s *Server) Stop(_ context.Context, req *jobrunnerpb.StopRequest) (*jobrunnerpb.StopResponse, error) {
	return s.adapter.Stop(req), nil
}

// Status implements JobRunnerServiceServer.
func (s *Server) Status(_ context.Context, req *jobrunnerpb.StatusRequest) (*jobrunnerpb.StatusResponse, error) {
	return s.adapter.Status(req), nil
}

// Log implements JobRunnerServiceServer's server-streaming RPC: it reads
// the tailing logstream.Stream in fixed-size chunks and forwards each as a
// LogChunk, stopping when the stream reports io.EOF (job stopped and
// drained) or the client cancels.
func (s *Server) Log(req *jobrunnerpb.LogRequest, stream jobrunnerpb.JobRunnerService_LogServer) error {
	desc, ok := rpcadapter.LogDescriptorFromPB(req.GetDescriptor_())
	if !ok {
		return stream.Send(rpcadapter.LogTaskError(&runner.TaskError{Code: runner.CodeInvalidID, Msg: "unknown log descriptor"}))
	}

	logStream, err := s.adapter.Runner().Log(req.GetJobId(), desc, int(req.GetBufferSize()))
	if err != nil {
		var taskErr *runner.TaskError
		if errors.As(err, &taskErr) {
			return stream.Send(rpcadapter.LogTaskError(taskErr))
		}
		return stream.Send(rpcadapter.LogGeneralError(err))
	}
	defer logStream.Close()

	buf := make([]byte, logStream.BufSize())
	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := logStream.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if sendErr := stream.Send(rpcadapter.LogData(chunk)); sendErr != nil {
				return sendErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return stream.Send(rpcadapter.LogGeneralError(err))
		}
	}
}
