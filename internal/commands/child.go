package commands

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/pkg/cgroup"
)

// Child builds the hidden "child" subcommand. It is never invoked by a
// user directly: Runner.Run re-execs the running binary with this
// subcommand, a cgroup path, "--", and the real target command and its
// arguments. The child attaches itself to the named cgroup (if any), then
// replaces itself with the target command via exec(2), so the target
// process inherits the cgroup membership before its first instruction
// runs and never exists as a separate, unconstrained process.
func Child() *cobra.Command {
	cmd := cobra.Command{
		Use:    "child cgroup-path -- command [args]...",
		Hidden: true,
		Args:   cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChild(cmd, args)
		},
	}

	return &cmd
}

func runChild(cmd *cobra.Command, args []string) error {
	dashAt := cmd.ArgsLenAtDash()
	if dashAt <= 0 || dashAt >= len(args) {
		return fmt.Errorf("child: expected cgroup-path -- command [args]...")
	}

	cgroupPath := args[0]
	target := args[dashAt:]

	if cgroupPath != "" {
		if err := cgroup.Attach(cgroupPath, os.Getpid()); err != nil {
			return fmt.Errorf("child: attach to cgroup %s: %w", cgroupPath, err)
		}
	}

	binary, err := exec.LookPath(target[0])
	if err != nil {
		return fmt.Errorf("child: %w", err)
	}

	return syscall.Exec(binary, target, os.Environ())
}
