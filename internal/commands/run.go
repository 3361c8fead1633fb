package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/client"
	"github.com/mrhwick/jobrunner/internal/config"
)

type run struct {
	cfg    config.ClientConfig
	memory uint64
	cpu    uint64
	disk   uint64
}

// Run builds the "run" subcommand: it submits a command and its arguments
// (everything after "--") to the server and prints the assigned job id.
func Run() *cobra.Command {
	var r run

	cmd := cobra.Command{
		Use:   "run [flags] -- command [args]...",
		Short: "Run a command on the jobrunner server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args)
		},
	}

	r.cfg.Flags(&cmd)
	cmd.Flags().Uint64Var(&r.memory, "memory", 0, "memory limit in bytes (0 means unconstrained)")
	cmd.Flags().Uint64Var(&r.cpu, "cpu", 0, "relative cpu.shares weight (0 means unconstrained)")
	cmd.Flags().Uint64Var(&r.disk, "disk", 0, "per-device disk throughput limit in bytes/sec (0 means unconstrained)")

	return &cmd
}

func (r *run) run(cmd *cobra.Command, args []string) error {
	cli, closeConn, err := client.Dial(&r.cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	req := &jobrunnerpb.RunRequest{
		Command: args[0],
		Args:    args[1:],
	}
	if r.memory != 0 {
		req.Memory = &r.memory
	}
	if r.cpu != 0 {
		req.CPU = &r.cpu
	}
	if r.disk != 0 {
		req.Disk = &r.disk
	}

	resp, err := cli.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	switch result := resp.GetResult().(type) {
	case *jobrunnerpb.RunResponse_JobId:
		fmt.Fprintln(cmd.OutOrStdout(), result.JobId)
		return nil
	case *jobrunnerpb.RunResponse_TaskError:
		return fmt.Errorf("%s", result.TaskError.Description)
	case *jobrunnerpb.RunResponse_GeneralError:
		return fmt.Errorf("%s", result.GeneralError.Description)
	default:
		return fmt.Errorf("unexpected response from server")
	}
}
