package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/internal/client"
	"github.com/mrhwick/jobrunner/internal/config"
)

type logs struct {
	cfg        config.ClientConfig
	descriptor string
	bufferSize uint32
}

// Logs builds the "logs" subcommand: it opens the server-streaming Log RPC
// and copies chunks to stdout as they arrive, until the job stops and its
// log is drained or the user interrupts the command.
func Logs() *cobra.Command {
	var l logs

	cmd := cobra.Command{
		Use:   "logs [flags] job-id",
		Short: "Stream a job's captured output from the jobrunner server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return l.run(cmd, args[0])
		},
	}

	l.cfg.Flags(&cmd)
	cmd.Flags().StringVar(&l.descriptor, "descriptor", "stdout", "which stream to tail: stdout or stderr")
	cmd.Flags().Uint32Var(&l.bufferSize, "buffer-size", 0, "read-chunk size in bytes (0 uses the server default of 256)")

	return &cmd
}

func (l *logs) run(cmd *cobra.Command, jobID string) error {
	desc, err := parseDescriptor(l.descriptor)
	if err != nil {
		return err
	}

	cli, closeConn, err := client.Dial(&l.cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	req := &jobrunnerpb.LogRequest{JobId: jobID, Descriptor: desc}
	if l.bufferSize > 0 {
		req.BufferSize = &l.bufferSize
	}

	stream, err := cli.Log(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch result := chunk.GetResult().(type) {
		case *jobrunnerpb.LogChunk_Data:
			if _, err := out.Write(result.Data); err != nil {
				return err
			}
		case *jobrunnerpb.LogChunk_TaskError:
			return fmt.Errorf("%s", result.TaskError.Description)
		case *jobrunnerpb.LogChunk_GeneralError:
			return fmt.Errorf("%s", result.GeneralError.Description)
		}
	}
}

func parseDescriptor(s string) (jobrunnerpb.LogDescriptor, error) {
	switch strings.ToLower(s) {
	case "stdout":
		return jobrunnerpb.LogDescriptor_LOG_DESCRIPTOR_STDOUT, nil
	case "stderr":
		return jobrunnerpb.LogDescriptor_LOG_DESCRIPTOR_STDERR, nil
	default:
		return jobrunnerpb.LogDescriptor_LOG_DESCRIPTOR_UNSPECIFIED, fmt.Errorf("unknown descriptor %q, want stdout or stderr", s)
	}
}
