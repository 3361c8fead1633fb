package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/internal/auth"
	"github.com/mrhwick/jobrunner/internal/config"
	"github.com/mrhwick/jobrunner/internal/rpcadapter"
	"github.com/mrhwick/jobrunner/internal/server"
	"github.com/mrhwick/jobrunner/pkg/cgroup"
	"github.com/mrhwick/jobrunner/pkg/registry"
	"github.com/mrhwick/jobrunner/pkg/runner"
)

type serve struct {
	cfg config.ServerConfig
	srv *server.Server
}

func Serve() *cobra.Command {
	var s serve

	cmd := cobra.Command{
		Use:   "serve",
		Short: "Start the jobrunner server and listen for connections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.serve(cmd.Context())
		},
	}

	s.cfg.Flags(&cmd)

	return &cmd
}

func (s *serve) serve(ctx context.Context) error {
	if s.cfg.Silent {
		slog.SetLogLoggerLevel(slog.LevelError)
	}

	r, stopSweep, err := s.buildRunner()
	if err != nil {
		return err
	}
	defer stopSweep()

	adapter := rpcadapter.New(r)

	if s.srv, err = server.New(&s.cfg, adapter, auth.AllowCommonNames("client")); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		defer close(done)
		err = s.srv.Serve()
	}()

	select {
	case <-done:
		return err
	case sig := <-sigCh:
		slog.Warn("caught signal", "sig", sig)
		return s.gracefulStop()
	case <-ctx.Done():
		slog.Warn("application context done", "err", ctx.Err())
		return s.gracefulStop()
	}
}

// buildRunner assembles the Runner and its dependencies: the cgroup
// builder (nil, with a warning, on platforms without cgroup v1 support),
// the shared registry, and the periodic sweep goroutine, whose stop func
// the caller must defer.
func (s *serve) buildRunner() (*runner.Runner, func(), error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, nil, err
	}

	var builder runner.CgroupBuilder
	if runtime.GOOS == "linux" {
		b, err := cgroup.NewBuilder("/jobrunner")
		if err != nil {
			return nil, nil, err
		}
		builder = b
	} else {
		slog.Warn("cgroup isolation is unavailable on this platform; jobs will run unconstrained")
	}

	rcfg := runner.DefaultConfig()
	rcfg.ReexecPath = exe
	rcfg.ReexecArgs = []string{"child"}
	if s.cfg.LogDir != "" {
		rcfg.LogDir = s.cfg.LogDir
	}

	if err := os.MkdirAll(rcfg.LogDir, 0o755); err != nil {
		return nil, nil, err
	}

	r := runner.New(rcfg, registry.New(), builder)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go r.RunSweepLoop(sweepCtx)

	return r, stopSweep, nil
}

func (s *serve) gracefulStop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		defer close(done)
		s.srv.GracefulStop()
	}()

	select {
	case <-done:
		slog.Info("shutdown gracefully")
		return nil
	case <-ctx.Done():
		slog.Warn("timed out waiting to shutdown")
		s.srv.ForceStop()
		return ctx.Err()
	}
}
