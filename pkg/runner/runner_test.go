package runner_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhwick/jobrunner/pkg/cgroup"
	"github.com/mrhwick/jobrunner/pkg/jobid"
	"github.com/mrhwick/jobrunner/pkg/registry"
	"github.com/mrhwick/jobrunner/pkg/runner"
)

// childEnv marks this test binary invocation as standing in for the
// re-exec'd "child" subcommand: it skips straight to exec-ing the target
// command, the same shape as internal/commands.Child but without cobra or
// real cgroup attachment, since these tests never set active cgroup knobs.
const childEnv = "JOBRUNNER_TEST_CHILD"

// TestMain lets the test binary re-exec itself in place of the real
// "jobrunner child" subcommand, mirroring the teacher's self-reexec
// pattern for exercising the spawn path end-to-end without a built binary.
func TestMain(m *testing.M) {
	if os.Getenv(childEnv) == "1" {
		os.Exit(runAsChild())
	}
	os.Exit(m.Run())
}

func runAsChild() int {
	args := os.Args[1:]
	dash := -1
	for i, a := range args {
		if a == "--" {
			dash = i
			break
		}
	}
	if dash < 0 || dash+1 >= len(args) {
		fmt.Fprintln(os.Stderr, "test child: missing -- command")
		return 2
	}

	target := args[dash+1:]
	binary, err := exec.LookPath(target[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "test child:", err)
		return 2
	}

	if err := syscall.Exec(binary, target, os.Environ()); err != nil {
		fmt.Fprintln(os.Stderr, "test child exec:", err)
		return 2
	}

	return 0
}

type fakeCgroupBuilder struct {
	buildErr error
}

func (f *fakeCgroupBuilder) Build(jobID string, req cgroup.Request) (cgroup.Handle, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return fakeHandle{}, nil
}

type fakeHandle struct{}

func (fakeHandle) Path() string  { return "" }
func (fakeHandle) Delete() error { return nil }

func newTestRunner(t *testing.T) (*runner.Runner, *registry.Registry) {
	t.Helper()

	self, err := os.Executable()
	require.NoError(t, err)

	cfg := runner.DefaultConfig()
	cfg.ReexecPath = self
	cfg.ReexecArgs = nil
	cfg.LogDir = t.TempDir()
	cfg.StopGrace = 200 * time.Millisecond
	cfg.StopPollInterval = 10 * time.Millisecond

	reg := registry.New()
	r := runner.New(cfg, reg, &fakeCgroupBuilder{})
	return r, reg
}

func withChildEnv(t *testing.T) func() {
	t.Helper()
	require.NoError(t, os.Setenv(childEnv, "1"))
	return func() { require.NoError(t, os.Unsetenv(childEnv)) }
}

func TestRunValidatesCommand(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Run(runner.SpawnRequest{Command: "  "})
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeNameEmpty, taskErr.Code)
}

func TestRunValidatesArgs(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Run(runner.SpawnRequest{Command: "true", Args: []string{""}})
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeArgEmpty, taskErr.Code)
}

func TestRunValidatesDisk(t *testing.T) {
	r, _ := newTestRunner(t)

	zero := uint64(0)
	_, err := r.Run(runner.SpawnRequest{Command: "true", Disk: &zero})
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeInvalidMaxDisk, taskErr.Code)
}

func TestShortLivedJobReachesStoppedWithExitCode(t *testing.T) {
	defer withChildEnv(t)()
	r, _ := newTestRunner(t)

	id, err := r.Run(runner.SpawnRequest{Command: "sh", Args: []string{"-c", "exit 3"}})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		resp, err := r.Status(id.String())
		return err == nil && resp.Status == runner.StatusStopped
	}, 5*time.Second, 10*time.Millisecond)

	resp, err := r.Status(id.String())
	require.NoError(t, err)
	require.NotNil(t, resp.Exit.Code)
	assert.Equal(t, int32(3), *resp.Exit.Code)
}

func TestLongRunningJobCanBeStopped(t *testing.T) {
	defer withChildEnv(t)()
	r, _ := newTestRunner(t)

	id, err := r.Run(runner.SpawnRequest{Command: "sleep", Args: []string{"30"}})
	require.NoError(t, err)

	resp, err := r.Status(id.String())
	require.NoError(t, err)
	assert.Equal(t, runner.StatusRunning, resp.Status)

	require.NoError(t, r.Stop(id.String()))

	require.Eventually(t, func() bool {
		resp, err := r.Status(id.String())
		return err == nil && resp.Status == runner.StatusStopped
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStopUnknownID(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Stop(jobid.New().String())
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeProcessNotFound, taskErr.Code)
}

func TestStopInvalidID(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Stop("not-a-valid-id")
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeInvalidID, taskErr.Code)
}

func TestStopAlreadyStopped(t *testing.T) {
	defer withChildEnv(t)()
	r, _ := newTestRunner(t)

	id, err := r.Run(runner.SpawnRequest{Command: "true"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		resp, err := r.Status(id.String())
		return err == nil && resp.Status == runner.StatusStopped
	}, 5*time.Second, 10*time.Millisecond)

	err = r.Stop(id.String())
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeProcessAlreadyStopped, taskErr.Code)
}

func TestStatusUnknownID(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Status(jobid.New().String())
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeProcessNotFound, taskErr.Code)
}

func TestLogStreamsAndTerminates(t *testing.T) {
	defer withChildEnv(t)()
	r, _ := newTestRunner(t)

	id, err := r.Run(runner.SpawnRequest{Command: "sh", Args: []string{"-c", "printf hello"}})
	require.NoError(t, err)

	stream, err := r.Log(id.String(), runner.LogStdout, 0)
	require.NoError(t, err)
	defer stream.Close()

	buf := make([]byte, 64)
	var out []byte
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		n, err := stream.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}

	assert.Equal(t, "hello", string(out))
}

func TestLogUnknownID(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Log(jobid.New().String(), runner.LogStdout, 0)
	var taskErr *runner.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, runner.CodeProcessNotFound, taskErr.Code)
}

func TestSweepMarksStaleRunningEntryStopped(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	cfg := runner.DefaultConfig()
	cfg.ReexecPath = self
	cfg.LogDir = t.TempDir()
	cfg.SweepInterval = 10 * time.Millisecond

	reg := registry.New()
	r := runner.New(cfg, reg, &fakeCgroupBuilder{})

	id := jobid.New()
	// A pid that is certain to be gone: fork a short-lived process and
	// wait on it ourselves, so the registry holds a "Running" entry whose
	// pid the kernel has already reaped, the same starved-reaper scenario
	// the sweep exists to resolve.
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())
	reg.Insert(id, uint32(cmd.Process.Pid))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	r.RunSweepLoop(ctx)

	resp, err := r.Status(id.String())
	require.NoError(t, err)
	assert.Equal(t, runner.StatusStopped, resp.Status)
	assert.False(t, resp.Exit.Known())
}
