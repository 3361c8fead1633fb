// Package client builds an authenticated gRPC connection to the server for
// the run/stop/status/logs subcommands, sharing internal/config's flag
// definitions rather than duplicating them.
package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/config"
)

// Dial opens a mutually-authenticated gRPC connection to cfg.Addr and
// returns a ready-to-use JobRunnerServiceClient. The caller owns the
// returned connection's lifetime via the returned io.Closer-shaped func.
func Dial(cfg *config.ClientConfig) (jobrunnerpb.JobRunnerServiceClient, func() error, error) {
	tlsConfig, err := tlsConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}

	return jobrunnerpb.NewJobRunnerServiceClient(conn), conn.Close, nil
}

func tlsConfig(cfg *config.ClientConfig) (*tls.Config, error) {
	crt, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("error loading client keypair: %w", err)
	}

	serverCAs := x509.NewCertPool()
	if cfg.TLS.CACertFile != "" {
		caCert, err := os.ReadFile(cfg.TLS.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("error loading ca-cert file: %w", err)
		}
		if !serverCAs.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.TLS.CACertFile)
		}
	}

	return &tls.Config{
		RootCAs:      serverCAs,
		Certificates: []tls.Certificate{crt},
		MinVersion:   tls.VersionTLS13,
	}, nil
}
