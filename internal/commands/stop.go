package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/client"
	"github.com/mrhwick/jobrunner/internal/config"
)

type stop struct {
	cfg config.ClientConfig
}

func Stop() *cobra.Command {
	var s stop
	cmd := cobra.Command{
		Use:   "stop [flags] job-id",
		Short: "Stop a job on the jobrunner server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, args[0])
		},
	}

	s.cfg.Flags(&cmd)

	return &cmd
}

func (s *stop) run(cmd *cobra.Command, jobID string) error {
	cli, closeConn, err := client.Dial(&s.cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	resp, err := cli.Stop(cmd.Context(), &jobrunnerpb.StopRequest{JobId: jobID})
	if err != nil {
		return err
	}

	switch result := resp.GetResult().(type) {
	case *jobrunnerpb.StopResponse_Ok:
		fmt.Fprintln(cmd.OutOrStdout(), "stopped")
		return nil
	case *jobrunnerpb.StopResponse_TaskError:
		return fmt.Errorf("%s", result.TaskError.Description)
	case *jobrunnerpb.StopResponse_GeneralError:
		return fmt.Errorf("%s", result.GeneralError.Description)
	default:
		return fmt.Errorf("unexpected response from server")
	}
}
