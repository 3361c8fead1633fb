package runner

import "strings"

// SpawnRequest is the input to Run. Optional fields default to
// "unconstrained" when nil.
type SpawnRequest struct {
	Command string
	Args    []string

	// Memory is memory.limit_in_bytes, in bytes.
	Memory *uint64
	// CPU is cpu.shares, a relative weight.
	CPU *uint64
	// Disk is the per-device bytes-per-second blkio throttle.
	Disk *uint64
}

func validate(req SpawnRequest) error {
	if strings.TrimSpace(req.Command) == "" {
		return newTaskError(CodeNameEmpty, "command is empty")
	}

	for _, a := range req.Args {
		if a == "" {
			return newTaskError(CodeArgEmpty, "argument is empty")
		}
	}

	if req.Disk != nil && *req.Disk == 0 {
		return newTaskError(CodeInvalidMaxDisk, "disk rate must be greater than zero")
	}

	return nil
}

// LogDescriptor selects which of a job's two log files to stream.
type LogDescriptor int

const (
	LogStdout LogDescriptor = iota
	LogStderr
)

func (d LogDescriptor) suffix() string {
	if d == LogStderr {
		return "stderr"
	}
	return "stdout"
}

// StatusResponse is the response shape for Status.
type StatusResponse struct {
	Status Status
	Exit   Exit
}
