// Package jobrunnerpb contains the message types for
// api/proto/jobrunner/v1/jobrunner.proto.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative -I ../proto/jobrunner/v1 jobrunner.proto
package jobrunnerpb

import "fmt"

// RunRequest is the request for JobRunnerService.Run.
type RunRequest struct {
	Command string   `protobuf:"bytes,1,opt,name=command,proto3" json:"command,omitempty"`
	Args    []string `protobuf:"bytes,2,rep,name=args,proto3" json:"args,omitempty"`
	Memory  *uint64  `protobuf:"varint,3,opt,name=memory,proto3,oneof" json:"memory,omitempty"`
	CPU     *uint64  `protobuf:"varint,4,opt,name=cpu,proto3,oneof" json:"cpu,omitempty"`
	Disk    *uint64  `protobuf:"varint,5,opt,name=disk,proto3,oneof" json:"disk,omitempty"`
}

func (m *RunRequest) Reset()         { *m = RunRequest{} }
func (m *RunRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunRequest) ProtoMessage()    {}

func (m *RunRequest) GetCommand() string {
	if m != nil {
		return m.Command
	}
	return ""
}

func (m *RunRequest) GetArgs() []string {
	if m != nil {
		return m.Args
	}
	return nil
}

// RunErrorCode enumerates RunResponse's task-error variants.
type RunErrorCode int32

const (
	RunErrorCode_RUN_ERROR_CODE_UNSPECIFIED      RunErrorCode = 0
	RunErrorCode_RUN_ERROR_CODE_NAME_EMPTY       RunErrorCode = 1
	RunErrorCode_RUN_ERROR_CODE_ARG_EMPTY        RunErrorCode = 2
	RunErrorCode_RUN_ERROR_CODE_INVALID_MAX_DISK RunErrorCode = 3
)

// RunError is RunResponse's task-error payload.
type RunError struct {
	Code        RunErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=jobrunner.v1.RunErrorCode" json:"code,omitempty"`
	Description string       `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *RunError) Reset()         { *m = RunError{} }
func (m *RunError) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunError) ProtoMessage()    {}

// GeneralError carries an unexpected, wrapped internal failure description,
// distinct from every operation's own task-error enum.
type GeneralError struct {
	Description string `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *GeneralError) Reset()         { *m = GeneralError{} }
func (m *GeneralError) String() string { return fmt.Sprintf("%+v", *m) }
func (*GeneralError) ProtoMessage()    {}

// RunResponse is the response for JobRunnerService.Run.
type RunResponse struct {
	// Types that are valid to be assigned to Result:
	//
	//	*RunResponse_JobId
	//	*RunResponse_TaskError
	//	*RunResponse_GeneralError
	Result isRunResponse_Result `protobuf_oneof:"result"`
}

func (m *RunResponse) Reset()         { *m = RunResponse{} }
func (m *RunResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunResponse) ProtoMessage()    {}

type isRunResponse_Result interface {
	isRunResponse_Result()
}

type RunResponse_JobId struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3,oneof"`
}

type RunResponse_TaskError struct {
	TaskError *RunError `protobuf:"bytes,2,opt,name=task_error,json=taskError,proto3,oneof"`
}

type RunResponse_GeneralError struct {
	GeneralError *GeneralError `protobuf:"bytes,3,opt,name=general_error,json=generalError,proto3,oneof"`
}

func (*RunResponse_JobId) isRunResponse_Result()       {}
func (*RunResponse_TaskError) isRunResponse_Result()   {}
func (*RunResponse_GeneralError) isRunResponse_Result() {}

func (m *RunResponse) GetResult() isRunResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *RunResponse) GetJobId() string {
	if x, ok := m.GetResult().(*RunResponse_JobId); ok {
		return x.JobId
	}
	return ""
}

func (m *RunResponse) GetTaskError() *RunError {
	if x, ok := m.GetResult().(*RunResponse_TaskError); ok {
		return x.TaskError
	}
	return nil
}

func (m *RunResponse) GetGeneralError() *GeneralError {
	if x, ok := m.GetResult().(*RunResponse_GeneralError); ok {
		return x.GeneralError
	}
	return nil
}

// XXX_OneofWrappers lets the legacy message-descriptor loader enumerate
// Result's concrete variants; reflection alone cannot discover them from
// the isRunResponse_Result interface.
func (*RunResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*RunResponse_JobId)(nil),
		(*RunResponse_TaskError)(nil),
		(*RunResponse_GeneralError)(nil),
	}
}

// StopRequest is the request for JobRunnerService.Stop.
type StopRequest struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *StopRequest) Reset()         { *m = StopRequest{} }
func (m *StopRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StopRequest) ProtoMessage()    {}

func (m *StopRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type StopErrorCode int32

const (
	StopErrorCode_STOP_ERROR_CODE_UNSPECIFIED             StopErrorCode = 0
	StopErrorCode_STOP_ERROR_CODE_INVALID_ID              StopErrorCode = 1
	StopErrorCode_STOP_ERROR_CODE_PROCESS_NOT_FOUND       StopErrorCode = 2
	StopErrorCode_STOP_ERROR_CODE_PROCESS_ALREADY_STOPPED StopErrorCode = 3
	StopErrorCode_STOP_ERROR_CODE_COULDNT_STOP            StopErrorCode = 4
)

type StopError struct {
	Code        StopErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=jobrunner.v1.StopErrorCode" json:"code,omitempty"`
	Description string        `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *StopError) Reset()         { *m = StopError{} }
func (m *StopError) String() string { return fmt.Sprintf("%+v", *m) }
func (*StopError) ProtoMessage()    {}

type StopResponse struct {
	// Types that are valid to be assigned to Result:
	//
	//	*StopResponse_Ok
	//	*StopResponse_TaskError
	//	*StopResponse_GeneralError
	Result isStopResponse_Result `protobuf_oneof:"result"`
}

func (m *StopResponse) Reset()         { *m = StopResponse{} }
func (m *StopResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StopResponse) ProtoMessage()    {}

type isStopResponse_Result interface {
	isStopResponse_Result()
}

type StopResponse_Ok struct {
	Ok bool `protobuf:"varint,1,opt,name=ok,proto3,oneof"`
}

type StopResponse_TaskError struct {
	TaskError *StopError `protobuf:"bytes,2,opt,name=task_error,json=taskError,proto3,oneof"`
}

type StopResponse_GeneralError struct {
	GeneralError *GeneralError `protobuf:"bytes,3,opt,name=general_error,json=generalError,proto3,oneof"`
}

func (*StopResponse_Ok) isStopResponse_Result()          {}
func (*StopResponse_TaskError) isStopResponse_Result()   {}
func (*StopResponse_GeneralError) isStopResponse_Result() {}

func (m *StopResponse) GetResult() isStopResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *StopResponse) GetTaskError() *StopError {
	if x, ok := m.GetResult().(*StopResponse_TaskError); ok {
		return x.TaskError
	}
	return nil
}

func (m *StopResponse) GetGeneralError() *GeneralError {
	if x, ok := m.GetResult().(*StopResponse_GeneralError); ok {
		return x.GeneralError
	}
	return nil
}

// XXX_OneofWrappers lets the legacy message-descriptor loader enumerate
// Result's concrete variants; reflection alone cannot discover them from
// the isStopResponse_Result interface.
func (*StopResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*StopResponse_Ok)(nil),
		(*StopResponse_TaskError)(nil),
		(*StopResponse_GeneralError)(nil),
	}
}

// StatusRequest is the request for JobRunnerService.Status.
type StatusRequest struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *StatusRequest) Reset()         { *m = StatusRequest{} }
func (m *StatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusRequest) ProtoMessage()    {}

func (m *StatusRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type ProcessStatus int32

const (
	ProcessStatus_PROCESS_STATUS_UNSPECIFIED ProcessStatus = 0
	ProcessStatus_PROCESS_STATUS_RUNNING     ProcessStatus = 1
	ProcessStatus_PROCESS_STATUS_STOPPED     ProcessStatus = 2
)

// Exit carries the reaped child's termination cause: exactly one of
// ExitCode or Signal is set, or neither for the "unknown" sub-case.
type Exit struct {
	// Types that are valid to be assigned to Cause:
	//
	//	*Exit_ExitCode
	//	*Exit_Signal
	Cause isExit_Cause `protobuf_oneof:"cause"`
}

func (m *Exit) Reset()         { *m = Exit{} }
func (m *Exit) String() string { return fmt.Sprintf("%+v", *m) }
func (*Exit) ProtoMessage()    {}

type isExit_Cause interface {
	isExit_Cause()
}

type Exit_ExitCode struct {
	ExitCode int32 `protobuf:"varint,1,opt,name=exit_code,json=exitCode,proto3,oneof"`
}

type Exit_Signal struct {
	Signal int32 `protobuf:"varint,2,opt,name=signal,proto3,oneof"`
}

func (*Exit_ExitCode) isExit_Cause() {}
func (*Exit_Signal) isExit_Cause()   {}

func (m *Exit) GetCause() isExit_Cause {
	if m != nil {
		return m.Cause
	}
	return nil
}

func (m *Exit) GetExitCode() (int32, bool) {
	if x, ok := m.GetCause().(*Exit_ExitCode); ok {
		return x.ExitCode, true
	}
	return 0, false
}

func (m *Exit) GetSignal() (int32, bool) {
	if x, ok := m.GetCause().(*Exit_Signal); ok {
		return x.Signal, true
	}
	return 0, false
}

// XXX_OneofWrappers lets the legacy message-descriptor loader enumerate
// Cause's concrete variants; reflection alone cannot discover them from
// the isExit_Cause interface.
func (*Exit) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Exit_ExitCode)(nil),
		(*Exit_Signal)(nil),
	}
}

type StatusOK struct {
	Status ProcessStatus `protobuf:"varint,1,opt,name=status,proto3,enum=jobrunner.v1.ProcessStatus" json:"status,omitempty"`
	Exit   *Exit         `protobuf:"bytes,2,opt,name=exit,proto3" json:"exit,omitempty"`
}

func (m *StatusOK) Reset()         { *m = StatusOK{} }
func (m *StatusOK) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusOK) ProtoMessage()    {}

type StatusErrorCode int32

const (
	StatusErrorCode_STATUS_ERROR_CODE_UNSPECIFIED       StatusErrorCode = 0
	StatusErrorCode_STATUS_ERROR_CODE_INVALID_ID        StatusErrorCode = 1
	StatusErrorCode_STATUS_ERROR_CODE_PROCESS_NOT_FOUND StatusErrorCode = 2
)

type StatusError struct {
	Code        StatusErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=jobrunner.v1.StatusErrorCode" json:"code,omitempty"`
	Description string          `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *StatusError) Reset()         { *m = StatusError{} }
func (m *StatusError) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusError) ProtoMessage()    {}

type StatusResponse struct {
	// Types that are valid to be assigned to Result:
	//
	//	*StatusResponse_Ok
	//	*StatusResponse_TaskError
	//	*StatusResponse_GeneralError
	Result isStatusResponse_Result `protobuf_oneof:"result"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusResponse) ProtoMessage()    {}

type isStatusResponse_Result interface {
	isStatusResponse_Result()
}

type StatusResponse_Ok struct {
	Ok *StatusOK `protobuf:"bytes,1,opt,name=ok,proto3,oneof"`
}

type StatusResponse_TaskError struct {
	TaskError *StatusError `protobuf:"bytes,2,opt,name=task_error,json=taskError,proto3,oneof"`
}

type StatusResponse_GeneralError struct {
	GeneralError *GeneralError `protobuf:"bytes,3,opt,name=general_error,json=generalError,proto3,oneof"`
}

func (*StatusResponse_Ok) isStatusResponse_Result()          {}
func (*StatusResponse_TaskError) isStatusResponse_Result()   {}
func (*StatusResponse_GeneralError) isStatusResponse_Result() {}

func (m *StatusResponse) GetResult() isStatusResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *StatusResponse) GetOk() *StatusOK {
	if x, ok := m.GetResult().(*StatusResponse_Ok); ok {
		return x.Ok
	}
	return nil
}

func (m *StatusResponse) GetTaskError() *StatusError {
	if x, ok := m.GetResult().(*StatusResponse_TaskError); ok {
		return x.TaskError
	}
	return nil
}

func (m *StatusResponse) GetGeneralError() *GeneralError {
	if x, ok := m.GetResult().(*StatusResponse_GeneralError); ok {
		return x.GeneralError
	}
	return nil
}

// XXX_OneofWrappers lets the legacy message-descriptor loader enumerate
// Result's concrete variants; reflection alone cannot discover them from
// the isStatusResponse_Result interface.
func (*StatusResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*StatusResponse_Ok)(nil),
		(*StatusResponse_TaskError)(nil),
		(*StatusResponse_GeneralError)(nil),
	}
}

// LogDescriptor selects which of a job's two log files to stream.
type LogDescriptor int32

const (
	LogDescriptor_LOG_DESCRIPTOR_UNSPECIFIED LogDescriptor = 0
	LogDescriptor_LOG_DESCRIPTOR_STDOUT      LogDescriptor = 1
	LogDescriptor_LOG_DESCRIPTOR_STDERR      LogDescriptor = 2
)

// LogRequest is the request for JobRunnerService.Log.
type LogRequest struct {
	JobId      string        `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Descriptor LogDescriptor `protobuf:"varint,2,opt,name=descriptor,proto3,enum=jobrunner.v1.LogDescriptor" json:"descriptor,omitempty"`
	// BufferSize is the read-chunk size in bytes; unset or zero falls back
	// to the server's default of logstream.DefaultBufSize.
	BufferSize *uint32 `protobuf:"varint,3,opt,name=buffer_size,json=bufferSize,proto3,oneof" json:"buffer_size,omitempty"`
}

func (m *LogRequest) Reset()         { *m = LogRequest{} }
func (m *LogRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogRequest) ProtoMessage()    {}

func (m *LogRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *LogRequest) GetDescriptor_() LogDescriptor {
	if m != nil {
		return m.Descriptor
	}
	return LogDescriptor_LOG_DESCRIPTOR_UNSPECIFIED
}

func (m *LogRequest) GetBufferSize() uint32 {
	if m != nil && m.BufferSize != nil {
		return *m.BufferSize
	}
	return 0
}

type LogErrorCode int32

const (
	LogErrorCode_LOG_ERROR_CODE_UNSPECIFIED       LogErrorCode = 0
	LogErrorCode_LOG_ERROR_CODE_INVALID_ID        LogErrorCode = 1
	LogErrorCode_LOG_ERROR_CODE_PROCESS_NOT_FOUND LogErrorCode = 2
)

type LogError struct {
	Code        LogErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=jobrunner.v1.LogErrorCode" json:"code,omitempty"`
	Description string       `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *LogError) Reset()         { *m = LogError{} }
func (m *LogError) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogError) ProtoMessage()    {}

// LogChunk is one item of JobRunnerService.Log's server-streaming response.
type LogChunk struct {
	// Types that are valid to be assigned to Result:
	//
	//	*LogChunk_Data
	//	*LogChunk_TaskError
	//	*LogChunk_GeneralError
	Result isLogChunk_Result `protobuf_oneof:"result"`
}

func (m *LogChunk) Reset()         { *m = LogChunk{} }
func (m *LogChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogChunk) ProtoMessage()    {}

type isLogChunk_Result interface {
	isLogChunk_Result()
}

type LogChunk_Data struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3,oneof"`
}

type LogChunk_TaskError struct {
	TaskError *LogError `protobuf:"bytes,2,opt,name=task_error,json=taskError,proto3,oneof"`
}

type LogChunk_GeneralError struct {
	GeneralError *GeneralError `protobuf:"bytes,3,opt,name=general_error,json=generalError,proto3,oneof"`
}

func (*LogChunk_Data) isLogChunk_Result()         {}
func (*LogChunk_TaskError) isLogChunk_Result()    {}
func (*LogChunk_GeneralError) isLogChunk_Result() {}

func (m *LogChunk) GetResult() isLogChunk_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *LogChunk) GetData() []byte {
	if x, ok := m.GetResult().(*LogChunk_Data); ok {
		return x.Data
	}
	return nil
}

func (m *LogChunk) GetTaskError() *LogError {
	if x, ok := m.GetResult().(*LogChunk_TaskError); ok {
		return x.TaskError
	}
	return nil
}

func (m *LogChunk) GetGeneralError() *GeneralError {
	if x, ok := m.GetResult().(*LogChunk_GeneralError); ok {
		return x.GeneralError
	}
	return nil
}

// XXX_OneofWrappers lets the legacy message-descriptor loader enumerate
// Result's concrete variants; reflection alone cannot discover them from
// the isLogChunk_Result interface.
func (*LogChunk) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*LogChunk_Data)(nil),
		(*LogChunk_TaskError)(nil),
		(*LogChunk_GeneralError)(nil),
	}
}
