// Package auth implements the pluggable authorization predicate applied to
// every RPC after mTLS has already verified the client certificate's chain
// and signature. Authentication (is this a trusted cert) is the gRPC
// server's TLS config; authorization (is this particular identity allowed
// to call us) is this package.
package auth

import (
	"context"
	"crypto/x509"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// Predicate decides whether the given verified client certificate chain is
// allowed to use the service. It receives the peer's full verified chain,
// leaf first. A non-nil error rejects the call; its text becomes the
// client-visible denial reason.
type Predicate func(chain []*x509.Certificate) error

// AllowCommonNames returns a Predicate that accepts a connection only if
// the leaf certificate's Subject Common Name is present in names. This is
// the default policy, hardcoded to allow "client" unless the server is
// configured otherwise.
func AllowCommonNames(names ...string) Predicate {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	return func(chain []*x509.Certificate) error {
		if len(chain) == 0 {
			return fmt.Errorf("no client certificate presented")
		}

		cn := chain[0].Subject.CommonName
		if _, ok := allowed[cn]; !ok {
			return fmt.Errorf("common name %q is not authorized", cn)
		}

		return nil
	}
}

// UnaryInterceptor builds a grpc.UnaryServerInterceptor enforcing pred
// against the calling peer's verified TLS certificate chain.
func UnaryInterceptor(pred Predicate) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := authorize(ctx, pred); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamInterceptor builds a grpc.StreamServerInterceptor enforcing pred
// against the calling peer's verified TLS certificate chain.
func StreamInterceptor(pred Predicate) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := authorize(ss.Context(), pred); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

func authorize(ctx context.Context, pred Predicate) error {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "no peer info in context")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return status.Error(codes.Unauthenticated, "connection is not authenticated via TLS")
	}

	if len(tlsInfo.State.VerifiedChains) == 0 {
		return status.Error(codes.Unauthenticated, "no verified client certificate chain")
	}

	if err := pred(tlsInfo.State.VerifiedChains[0]); err != nil {
		return status.Errorf(codes.PermissionDenied, "not authorized: %v", err)
	}

	return nil
}
