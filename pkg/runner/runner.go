// Package runner implements the Runner subsystem: it orchestrates spawning
// a child process with cgroup constraints applied before its first
// instruction, maintains the authoritative registry of live and terminated
// children through a per-child reaper, implements the graceful-then-
// forceful Stop protocol, and builds the tailing log stream.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mrhwick/jobrunner/pkg/cgroup"
	"github.com/mrhwick/jobrunner/pkg/jobid"
	"github.com/mrhwick/jobrunner/pkg/logstream"
	"github.com/mrhwick/jobrunner/pkg/registry"
)

// CgroupBuilder is the subset of *cgroup.Builder the Runner needs. It is an
// interface so tests (and non-Linux or unprivileged environments) can
// inject a fake without requiring real cgroupfs access.
type CgroupBuilder interface {
	Build(jobID string, req cgroup.Request) (cgroup.Handle, error)
}

// Config holds the Runner's fixed configuration.
type Config struct {
	// ReexecPath is the path to the currently running binary. The Runner
	// re-execs it with ReexecArgs to get a fresh process that attaches
	// itself to the job's cgroup before exec-ing the real command.
	ReexecPath string
	// ReexecArgs are prepended to the re-exec invocation, e.g. the hidden
	// "child" cobra subcommand name.
	ReexecArgs []string

	// LogDir is the directory holding each job's two log files.
	LogDir string

	// StopGrace is the budget for the graceful SIGTERM phase of Stop.
	StopGrace time.Duration
	// StopPollInterval is the delay between SIGTERM attempts.
	StopPollInterval time.Duration
	// LogPollInterval is the backoff used by log streams between polls.
	LogPollInterval time.Duration

	// SweepInterval is the cadence of the periodic sweep that detects jobs
	// whose reaper never recorded a terminal status (see DESIGN.md).
	SweepInterval time.Duration
}

// DefaultConfig returns a Config with the spec's defaults filled in,
// including LogDir "tmp"; callers still must set ReexecPath and ReexecArgs.
func DefaultConfig() Config {
	return Config{
		LogDir:           "tmp",
		StopGrace:        5 * time.Second,
		StopPollInterval: 100 * time.Millisecond,
		LogPollInterval:  logstream.DefaultPollInterval,
		SweepInterval:    30 * time.Second,
	}
}

// Runner orchestrates Run, Stop, Status and Log over a shared Registry.
type Runner struct {
	cfg      Config
	registry *registry.Registry
	cgroups  CgroupBuilder
}

// New creates a Runner. registry and cgroups are shared with the rest of
// the server; cgroups may be nil if cgroup support is unavailable on this
// platform, in which case Run will fail any request with active knobs but
// still run unconstrained commands.
func New(cfg Config, reg *registry.Registry, cgroups CgroupBuilder) *Runner {
	return &Runner{cfg: cfg, registry: reg, cgroups: cgroups}
}

// Run validates req, builds the job's cgroup, creates its two log files,
// and spawns the re-exec'd child. The returned id is inserted into the
// registry before Run returns, so any subsequent Stop/Status/Log call for
// it is guaranteed to find it.
func (r *Runner) Run(req SpawnRequest) (jobid.ID, error) {
	if err := validate(req); err != nil {
		return jobid.ID{}, err
	}

	id := jobid.New()

	handle, err := r.buildCgroup(id, req)
	if err != nil {
		return jobid.ID{}, err
	}

	stdout, err := os.Create(r.logPath(id, LogStdout))
	if err != nil {
		r.deleteCgroup(id, handle)
		return jobid.ID{}, &InternalError{Err: fmt.Errorf("create stdout log: %w", err)}
	}
	defer stdout.Close()

	stderr, err := os.Create(r.logPath(id, LogStderr))
	if err != nil {
		r.deleteCgroup(id, handle)
		return jobid.ID{}, &InternalError{Err: fmt.Errorf("create stderr log: %w", err)}
	}
	defer stderr.Close()

	cmd := r.buildCmd(handle, req)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		r.deleteCgroup(id, handle)
		return jobid.ID{}, &InternalError{Err: fmt.Errorf("start process: %w", err)}
	}

	r.registry.Insert(id, uint32(cmd.Process.Pid)) //nolint:gosec

	go r.reap(id, cmd, handle)

	return id, nil
}

func (r *Runner) buildCgroup(id jobid.ID, req SpawnRequest) (cgroup.Handle, error) {
	cgReq := cgroup.Request{Memory: req.Memory, CPU: req.CPU, Disk: req.Disk}

	if r.cgroups == nil {
		if cgReq.Active() {
			return nil, &InternalError{Err: errors.New("cgroup support unavailable on this platform")}
		}
		return nil, nil
	}

	handle, err := r.cgroups.Build(id.String(), cgReq)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("build cgroup: %w", err)}
	}

	return handle, nil
}

func (r *Runner) deleteCgroup(id jobid.ID, handle cgroup.Handle) {
	if handle == nil {
		return
	}
	if err := handle.Delete(); err != nil {
		slog.Warn("error deleting cgroup", "job", id, "err", err)
	}
}

// buildCmd configures argv for the re-executed child: it is told the
// cgroup path (so it can attach itself before its final exec; empty when
// the request has no active knob and no cgroup was created) and the real
// command and arguments, separated by "--" so the hidden child subcommand
// never has to parse flags belonging to the target command.
func (r *Runner) buildCmd(handle cgroup.Handle, req SpawnRequest) *exec.Cmd {
	cgroupPath := ""
	cgReq := cgroup.Request{Memory: req.Memory, CPU: req.CPU, Disk: req.Disk}
	if handle != nil && cgReq.Active() {
		cgroupPath = handle.Path()
	}

	args := make([]string, 0, len(r.cfg.ReexecArgs)+3+len(req.Args))
	args = append(args, r.cfg.ReexecArgs...)
	args = append(args, cgroupPath, "--", req.Command)
	args = append(args, req.Args...)

	cmd := exec.Command(r.cfg.ReexecPath, args...)
	cmd.SysProcAttr = sysProcAttr()

	return cmd
}

// reap blocks until the child is reaped by the kernel, records its
// terminal status and deletes its cgroup. Exactly one reaper exists per
// child; the periodic sweep is the only other MarkStopped caller, and the
// registry keeps whichever of the two records a Stopped status first.
func (r *Runner) reap(id jobid.ID, cmd *exec.Cmd, handle cgroup.Handle) {
	waitErr := cmd.Wait()

	exit, ok := interpretExit(cmd.ProcessState)
	if !ok {
		slog.Warn("reaper could not determine child's exit status, leaving Running", "job", id, "err", waitErr)
		return
	}

	r.registry.MarkStopped(id, exit)
	r.deleteCgroup(id, handle)
}

// Stop implements the graceful-then-forceful stop protocol: SIGTERM every
// StopPollInterval for up to StopGrace, then a single SIGKILL.
func (r *Runner) Stop(idStr string) error {
	id, err := jobid.Parse(idStr)
	if err != nil {
		return newTaskError(CodeInvalidID, "invalid id")
	}

	e, err := r.registry.Get(id)
	if err != nil {
		return newTaskError(CodeProcessNotFound, "process not found")
	}
	if e.Status == StatusStopped {
		return newTaskError(CodeProcessAlreadyStopped, "already stopped")
	}

	pid := int(e.PID)
	deadline := time.Now().Add(r.cfg.StopGrace)

	for r.registry.Running(id) {
		if time.Now().After(deadline) {
			_ = syscall.Kill(pid, syscall.SIGKILL)
			return nil
		}

		switch err := syscall.Kill(pid, syscall.SIGTERM); {
		case err == nil:
			time.Sleep(r.cfg.StopPollInterval)
		case errors.Is(err, syscall.ESRCH):
			// already gone; the reaper will catch up
			return nil
		case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM), errors.Is(err, syscall.ECHILD):
			return newTaskError(CodeCouldntStop, fmt.Sprintf("couldn't stop: %v", err))
		default:
			_ = syscall.Kill(pid, syscall.SIGKILL)
			return nil
		}
	}

	return nil
}

// Status is a pure read over the registry.
func (r *Runner) Status(idStr string) (StatusResponse, error) {
	id, err := jobid.Parse(idStr)
	if err != nil {
		return StatusResponse{}, newTaskError(CodeInvalidID, "invalid id")
	}

	e, err := r.registry.Get(id)
	if err != nil {
		return StatusResponse{}, newTaskError(CodeProcessNotFound, "process not found")
	}

	return StatusResponse{Status: e.Status, Exit: e.Exit}, nil
}

// Log constructs a lazy, restartable stream of the selected log file's
// bytes. Each call reopens the file from the beginning, independent of any
// other outstanding stream for the same job. bufSize <= 0 falls back to
// logstream.DefaultBufSize, the spec's 256-byte default.
func (r *Runner) Log(idStr string, desc LogDescriptor, bufSize int) (*logstream.Stream, error) {
	id, err := jobid.Parse(idStr)
	if err != nil {
		return nil, newTaskError(CodeInvalidID, "invalid id")
	}

	if _, err := r.registry.Get(id); err != nil {
		return nil, newTaskError(CodeProcessNotFound, "process not found")
	}

	stream, err := logstream.Open(r.logPath(id, desc), func() bool { return r.registry.Running(id) }, r.cfg.LogPollInterval, bufSize)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("open log: %w", err)}
	}

	return stream, nil
}

func (r *Runner) logPath(id jobid.ID, desc LogDescriptor) string {
	return filepath.Join(r.cfg.LogDir, fmt.Sprintf("%s.%s.txt", id.String(), desc.suffix()))
}

// RunSweepLoop periodically checks every registry entry still marked
// Running against the OS (kill(pid, 0)) and marks it Stopped with an
// unknown exit cause if the process is actually gone. This resolves the
// spec's open question about a reaper that fails to record a terminal
// status: rather than leaving such jobs Running forever, a bounded sweep
// eventually unblocks any Stop caller polling on them. It runs until ctx is
// done and is meant to be started in its own goroutine by the server.
func (r *Runner) RunSweepLoop(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweepOnce()
		}
	}
}

func (r *Runner) sweepOnce() {
	r.registry.Sweep(func(id jobid.ID, pid uint32) {
		if syscall.Kill(int(pid), 0) == nil {
			return
		}

		r.registry.MarkStopped(id, Exit{})
		slog.Warn("swept stale running entry with no observed exit", "job", id, "pid", pid)
	})
}
