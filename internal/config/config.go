// Package config defines the server and client cobra flag sets, matching
// the teacher's internal/config/config.go shape. Values come from the
// command line only; no environment variables are read.
package config

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// TLS holds the PEM file paths needed to build a tls.Config on either side
// of the connection.
type TLS struct {
	CACertFile string
	CertFile   string
	KeyFile    string
}

// Cipher names a TLS 1.3 cipher suite the operator selected, independent of
// negotiation, per the spec's "selected by configuration" requirement.
type Cipher string

const (
	CipherChaCha20 Cipher = "chacha20"
	CipherAES      Cipher = "aes"
)

// TLSCipherSuite maps the CLI-facing cipher name to its tls package
// constant. An empty name selects the ChaCha20 default; an unrecognized
// name yields an error, so a typo'd flag is caught at startup.
func (c Cipher) TLSCipherSuite() (uint16, error) {
	switch c {
	case "", CipherChaCha20:
		return tls.TLS_CHACHA20_POLY1305_SHA256, nil
	case CipherAES:
		return tls.TLS_AES_256_GCM_SHA384, nil
	default:
		return 0, fmt.Errorf("unknown cipher %q, want %q or %q", c, CipherChaCha20, CipherAES)
	}
}

const (
	DefaultAddr             = "[::1]:50051"
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultKeepaliveTime    = 30 * time.Second
	DefaultKeepaliveTimeout = 20 * time.Second
	DefaultKeepaliveMinTime = 15 * time.Second
	DefaultLogDir           = "tmp"
)

// ServerConfig contains all configuration passed in via the serve command's
// flags.
type ServerConfig struct {
	Addr            string
	TLS             TLS
	Cipher          Cipher
	Silent          bool
	ShutdownTimeout time.Duration
	LogDir          string

	// Memory, CPU and Disk hold per-job cgroup knob defaults. No flag sets
	// them and nothing applies them to Run requests: each job uses only the
	// knobs in its own Run request.
	Memory *uint64
	CPU    *uint64
	Disk   *uint64
}

// Flags registers the serve command's flags on cmd. Environment variables
// are not consulted; every value comes from these flags or their defaults.
func (c *ServerConfig) Flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.Addr, "address", DefaultAddr, "listen address")

	const caCertFlag = "client-ca"
	cmd.Flags().StringVar(&c.TLS.CACertFile, caCertFlag, "", "ca cert used to validate client certificates (required)")
	_ = cmd.MarkFlagRequired(caCertFlag)

	const certFlag = "cert"
	cmd.Flags().StringVar(&c.TLS.CertFile, certFlag, "", "server certificate file (required)")
	_ = cmd.MarkFlagRequired(certFlag)

	const keyFlag = "key"
	cmd.Flags().StringVar(&c.TLS.KeyFile, keyFlag, "", "server key file (required)")
	_ = cmd.MarkFlagRequired(keyFlag)

	cmd.Flags().StringVar((*string)(&c.Cipher), "cipher", string(CipherChaCha20), "tls 1.3 cipher suite to enforce: chacha20 or aes")
	cmd.Flags().BoolVar(&c.Silent, "silent", false, "suppress non-error log output")
	cmd.Flags().DurationVar(&c.ShutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "time to wait for connections to close before forcing shutdown")
	cmd.Flags().StringVar(&c.LogDir, "log-dir", DefaultLogDir, "directory holding per-job stdout/stderr log files")
}

// ClientConfig contains the flags shared by every client-side subcommand.
type ClientConfig struct {
	Addr string
	TLS  TLS
}

// Flags registers the client's shared flags on cmd. Environment variables
// are not consulted.
func (c *ClientConfig) Flags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.Addr, "address", DefaultAddr, "server address")

	const caCertFlag = "client-ca"
	cmd.PersistentFlags().StringVar(&c.TLS.CACertFile, caCertFlag, "", "ca cert used to validate the server certificate (required)")
	_ = cmd.MarkPersistentFlagRequired(caCertFlag)

	const certFlag = "cert"
	cmd.PersistentFlags().StringVar(&c.TLS.CertFile, certFlag, "", "client certificate file (required)")
	_ = cmd.MarkPersistentFlagRequired(certFlag)

	const keyFlag = "key"
	cmd.PersistentFlags().StringVar(&c.TLS.KeyFile, keyFlag, "", "client key file (required)")
	_ = cmd.MarkPersistentFlagRequired(keyFlag)
}
