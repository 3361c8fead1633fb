package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/client"
	"github.com/mrhwick/jobrunner/internal/config"
)

type status struct {
	cfg config.ClientConfig
}

func Status() *cobra.Command {
	var s status
	cmd := cobra.Command{
		Use:   "status [flags] job-id",
		Short: "Get the status of a job on the jobrunner server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, args[0])
		},
	}

	s.cfg.Flags(&cmd)

	return &cmd
}

func (s *status) run(cmd *cobra.Command, jobID string) error {
	cli, closeConn, err := client.Dial(&s.cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	resp, err := cli.Status(cmd.Context(), &jobrunnerpb.StatusRequest{JobId: jobID})
	if err != nil {
		return err
	}

	switch result := resp.GetResult().(type) {
	case *jobrunnerpb.StatusResponse_Ok:
		fmt.Fprintln(cmd.OutOrStdout(), formatStatus(result.Ok))
		return nil
	case *jobrunnerpb.StatusResponse_TaskError:
		return fmt.Errorf("%s", result.TaskError.Description)
	case *jobrunnerpb.StatusResponse_GeneralError:
		return fmt.Errorf("%s", result.GeneralError.Description)
	default:
		return fmt.Errorf("unexpected response from server")
	}
}

func formatStatus(ok *jobrunnerpb.StatusOK) string {
	if ok.Status == jobrunnerpb.ProcessStatus_PROCESS_STATUS_RUNNING {
		return "running"
	}

	if code, known := ok.Exit.GetExitCode(); known {
		return fmt.Sprintf("stopped (exit code %d)", code)
	}
	if sig, known := ok.Exit.GetSignal(); known {
		return fmt.Sprintf("stopped (signal %d)", sig)
	}
	return "stopped (unknown cause)"
}
