// Package rpcadapter translates between the wire types in api/jobrunnerpb
// and the domain types in pkg/runner, including the full task-error and
// general-error mapping table, keeping pkg/runner transport-agnostic.
// internal/server also uses both layers for the streaming Log RPC.
package rpcadapter

import (
	"errors"

	"github.com/mrhwick/jobrunner/api/jobrunnerpb"
	"github.com/mrhwick/jobrunner/pkg/runner"
)

// Adapter holds only the Runner it wraps; its methods call that Runner and
// translate requests and results between the wire and domain types. It
// exists as a type so the server can hold it as a single dependency,
// matching the teacher's handler-struct-per-dependency shape.
type Adapter struct {
	runner *runner.Runner
}

// New builds an Adapter around r.
func New(r *runner.Runner) *Adapter {
	return &Adapter{runner: r}
}

func spawnRequestFromPB(req *jobrunnerpb.RunRequest) runner.SpawnRequest {
	return runner.SpawnRequest{
		Command: req.GetCommand(),
		Args:    req.GetArgs(),
		Memory:  req.Memory,
		CPU:     req.CPU,
		Disk:    req.Disk,
	}
}

// Run adapts pkg/runner.Runner.Run to the wire request/response shapes.
func (a *Adapter) Run(req *jobrunnerpb.RunRequest) *jobrunnerpb.RunResponse {
	id, err := a.runner.Run(spawnRequestFromPB(req))
	if err == nil {
		return &jobrunnerpb.RunResponse{Result: &jobrunnerpb.RunResponse_JobId{JobId: id.String()}}
	}

	var taskErr *runner.TaskError
	if errors.As(err, &taskErr) {
		return &jobrunnerpb.RunResponse{Result: &jobrunnerpb.RunResponse_TaskError{TaskError: &jobrunnerpb.RunError{
			Code:        runErrorCode(taskErr.Code),
			Description: taskErr.Msg,
		}}}
	}

	return &jobrunnerpb.RunResponse{Result: &jobrunnerpb.RunResponse_GeneralError{GeneralError: generalError(err)}}
}

func runErrorCode(code runner.TaskErrorCode) jobrunnerpb.RunErrorCode {
	switch code {
	case runner.CodeNameEmpty:
		return jobrunnerpb.RunErrorCode_RUN_ERROR_CODE_NAME_EMPTY
	case runner.CodeArgEmpty:
		return jobrunnerpb.RunErrorCode_RUN_ERROR_CODE_ARG_EMPTY
	case runner.CodeInvalidMaxDisk:
		return jobrunnerpb.RunErrorCode_RUN_ERROR_CODE_INVALID_MAX_DISK
	default:
		return jobrunnerpb.RunErrorCode_RUN_ERROR_CODE_UNSPECIFIED
	}
}

// Stop adapts pkg/runner.Runner.Stop.
func (a *Adapter) Stop(req *jobrunnerpb.StopRequest) *jobrunnerpb.StopResponse {
	err := a.runner.Stop(req.GetJobId())
	if err == nil {
		return &jobrunnerpb.StopResponse{Result: &jobrunnerpb.StopResponse_Ok{Ok: true}}
	}

	var taskErr *runner.TaskError
	if errors.As(err, &taskErr) {
		return &jobrunnerpb.StopResponse{Result: &jobrunnerpb.StopResponse_TaskError{TaskError: &jobrunnerpb.StopError{
			Code:        stopErrorCode(taskErr.Code),
			Description: taskErr.Msg,
		}}}
	}

	return &jobrunnerpb.StopResponse{Result: &jobrunnerpb.StopResponse_GeneralError{GeneralError: generalError(err)}}
}

func stopErrorCode(code runner.TaskErrorCode) jobrunnerpb.StopErrorCode {
	switch code {
	case runner.CodeInvalidID:
		return jobrunnerpb.StopErrorCode_STOP_ERROR_CODE_INVALID_ID
	case runner.CodeProcessNotFound:
		return jobrunnerpb.StopErrorCode_STOP_ERROR_CODE_PROCESS_NOT_FOUND
	case runner.CodeProcessAlreadyStopped:
		return jobrunnerpb.StopErrorCode_STOP_ERROR_CODE_PROCESS_ALREADY_STOPPED
	case runner.CodeCouldntStop:
		return jobrunnerpb.StopErrorCode_STOP_ERROR_CODE_COULDNT_STOP
	default:
		return jobrunnerpb.StopErrorCode_STOP_ERROR_CODE_UNSPECIFIED
	}
}

// Status adapts pkg/runner.Runner.Status.
func (a *Adapter) Status(req *jobrunnerpb.StatusRequest) *jobrunnerpb.StatusResponse {
	resp, err := a.runner.Status(req.GetJobId())
	if err == nil {
		return &jobrunnerpb.StatusResponse{Result: &jobrunnerpb.StatusResponse_Ok{Ok: &jobrunnerpb.StatusOK{
			Status: processStatus(resp.Status),
			Exit:   exitToPB(resp.Exit),
		}}}
	}

	var taskErr *runner.TaskError
	if errors.As(err, &taskErr) {
		return &jobrunnerpb.StatusResponse{Result: &jobrunnerpb.StatusResponse_TaskError{TaskError: &jobrunnerpb.StatusError{
			Code:        statusErrorCode(taskErr.Code),
			Description: taskErr.Msg,
		}}}
	}

	return &jobrunnerpb.StatusResponse{Result: &jobrunnerpb.StatusResponse_GeneralError{GeneralError: generalError(err)}}
}

func statusErrorCode(code runner.TaskErrorCode) jobrunnerpb.StatusErrorCode {
	switch code {
	case runner.CodeInvalidID:
		return jobrunnerpb.StatusErrorCode_STATUS_ERROR_CODE_INVALID_ID
	case runner.CodeProcessNotFound:
		return jobrunnerpb.StatusErrorCode_STATUS_ERROR_CODE_PROCESS_NOT_FOUND
	default:
		return jobrunnerpb.StatusErrorCode_STATUS_ERROR_CODE_UNSPECIFIED
	}
}

func processStatus(s runner.Status) jobrunnerpb.ProcessStatus {
	if s == runner.StatusStopped {
		return jobrunnerpb.ProcessStatus_PROCESS_STATUS_STOPPED
	}
	return jobrunnerpb.ProcessStatus_PROCESS_STATUS_RUNNING
}

func exitToPB(e runner.Exit) *jobrunnerpb.Exit {
	switch {
	case e.Code != nil:
		return &jobrunnerpb.Exit{Cause: &jobrunnerpb.Exit_ExitCode{ExitCode: *e.Code}}
	case e.Signal != nil:
		return &jobrunnerpb.Exit{Cause: &jobrunnerpb.Exit_Signal{Signal: *e.Signal}}
	default:
		return &jobrunnerpb.Exit{}
	}
}

// LogDescriptorFromPB adapts the wire log descriptor enum to the domain
// type, returning ok=false for an unrecognized or unspecified value.
func LogDescriptorFromPB(d jobrunnerpb.LogDescriptor) (runner.LogDescriptor, bool) {
	switch d {
	case jobrunnerpb.LogDescriptor_LOG_DESCRIPTOR_STDOUT:
		return runner.LogStdout, true
	case jobrunnerpb.LogDescriptor_LOG_DESCRIPTOR_STDERR:
		return runner.LogStderr, true
	default:
		return 0, false
	}
}

// LogTaskError builds a LogChunk carrying a task-error, used both for an
// unrecognized descriptor and for errors returned by Runner.Log.
func LogTaskError(err *runner.TaskError) *jobrunnerpb.LogChunk {
	return &jobrunnerpb.LogChunk{Result: &jobrunnerpb.LogChunk_TaskError{TaskError: &jobrunnerpb.LogError{
		Code:        logErrorCode(err.Code),
		Description: err.Msg,
	}}}
}

func logErrorCode(code runner.TaskErrorCode) jobrunnerpb.LogErrorCode {
	switch code {
	case runner.CodeInvalidID:
		return jobrunnerpb.LogErrorCode_LOG_ERROR_CODE_INVALID_ID
	case runner.CodeProcessNotFound:
		return jobrunnerpb.LogErrorCode_LOG_ERROR_CODE_PROCESS_NOT_FOUND
	default:
		return jobrunnerpb.LogErrorCode_LOG_ERROR_CODE_UNSPECIFIED
	}
}

// LogGeneralError builds a LogChunk carrying a general (unexpected) error.
func LogGeneralError(err error) *jobrunnerpb.LogChunk {
	return &jobrunnerpb.LogChunk{Result: &jobrunnerpb.LogChunk_GeneralError{GeneralError: generalError(err)}}
}

// LogData builds a LogChunk carrying a slice of raw log bytes.
func LogData(p []byte) *jobrunnerpb.LogChunk {
	return &jobrunnerpb.LogChunk{Result: &jobrunnerpb.LogChunk_Data{Data: p}}
}

// Runner exposes the wrapped Runner so the Log RPC, which needs to stream
// rather than return a single message, can drive it directly.
func (a *Adapter) Runner() *runner.Runner { return a.runner }

func generalError(err error) *jobrunnerpb.GeneralError {
	return &jobrunnerpb.GeneralError{Description: err.Error()}
}
