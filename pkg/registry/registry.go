// Package registry implements the server-wide concurrent mapping from
// job-id to (pid, status) that is the single source of truth for job
// liveness. See pkg/runner for the component that mutates and reads it.
package registry

import (
	"errors"
	"sync"

	"github.com/mrhwick/jobrunner/pkg/jobid"
)

// ErrUnknownID is returned by Get when no entry exists for the given id.
var ErrUnknownID = errors.New("unknown id")

type entry struct {
	pid    uint32
	status Status
	exit   Exit
}

// Registry is a readers-writer-lock-guarded map from job-id to (pid,
// status). The lock is never held across I/O, syscalls, or signalling; a
// single lock protects the whole mapping. Writers are only the spawn path
// (Insert), the reaper and the runner's periodic sweep (MarkStopped);
// readers are Stop, Status, and the log stream on every poll.
type Registry struct {
	mu      sync.RWMutex
	entries map[jobid.ID]*entry
}

// New creates an empty Registry. Entries are never removed during normal
// operation; the Registry lives for the server process lifetime.
func New() *Registry {
	return &Registry{entries: map[jobid.ID]*entry{}}
}

// Insert transitions nothing-existing to Running. It must be called before
// the caller of Run learns the job's id, so that insert(id, Running)
// happens-before any client-visible Stop/Status/Log for that id.
func (r *Registry) Insert(id jobid.ID, pid uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[id] = &entry{pid: pid, status: StatusRunning}
}

// MarkStopped transitions Running to Stopped(exit). Only the first call for
// an id takes effect: once the entry is Stopped, later calls (for example
// the periodic sweep racing the reaper) leave its status and exit unchanged.
func (r *Registry) MarkStopped(id jobid.ID, exit Exit) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.status != StatusRunning {
		return
	}

	e.status = StatusStopped
	e.exit = exit
}

// Entry is the snapshot returned by Get.
type Entry struct {
	PID    uint32
	Status Status
	Exit   Exit
}

// Get returns the tuple for id, or ErrUnknownID if no such entry exists.
func (r *Registry) Get(id jobid.ID) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return Entry{}, ErrUnknownID
	}

	return Entry{PID: e.pid, Status: e.status, Exit: e.exit}, nil
}

// Running returns whether the registry still shows id as Running. It
// treats an unknown id as not-running so that stale pollers terminate
// instead of looping forever on a deleted entry (entries are never
// actually removed in normal operation, but this keeps the helper safe).
func (r *Registry) Running(id jobid.ID) bool {
	e, err := r.Get(id)
	return err == nil && e.Status == StatusRunning
}

// Sweep calls fn for every entry still Running, passing the job id and its
// pid. It is used by the runner's periodic reaper-failure sweep (see
// DESIGN.md) and takes the read lock only for the duration of building the
// snapshot slice, never across fn.
func (r *Registry) Sweep(fn func(id jobid.ID, pid uint32)) {
	r.mu.RLock()
	type running struct {
		id  jobid.ID
		pid uint32
	}
	var snapshot []running
	for id, e := range r.entries {
		if e.status == StatusRunning {
			snapshot = append(snapshot, running{id: id, pid: e.pid})
		}
	}
	r.mu.RUnlock()

	for _, s := range snapshot {
		fn(s.id, s.pid)
	}
}
