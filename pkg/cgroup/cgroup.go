// Package cgroup materializes a named cgroup v1 hierarchy with memory, cpu
// and blkio knobs for a single job, and produces the attach step that a
// re-executed child runs on itself before its final exec. The whole
// subsystem is Linux-only; see cgroup_linux.go and cgroup_other.go.
package cgroup

// Request carries the optional resource knobs for one job's cgroup. A nil
// field means "unconstrained" and leaves the corresponding controller
// untouched.
type Request struct {
	// Memory is memory.limit_in_bytes, in bytes.
	Memory *uint64
	// CPU is cpu.shares, a relative weight.
	CPU *uint64
	// Disk is the uniform bytes-per-second throttle applied to every
	// discovered "disk" type block device's blkio.throttle.*_bps_device,
	// since blkio.weight requires CFQ, which modern kernels have dropped.
	Disk *uint64
}

// Active reports whether any knob in the request is set, i.e. whether a
// cgroup actually needs to be created at all.
func (r Request) Active() bool {
	return r.Memory != nil || r.CPU != nil || r.Disk != nil
}

// Handle represents a materialized (or deliberately absent, when the
// request had no active knobs) cgroup for one job.
type Handle interface {
	// Path is the cgroup's identifying path, passed to the re-executed
	// child so it can attach itself before its final exec.
	Path() string
	// Delete removes the cgroup. Called after the child has been reaped.
	// A failure is the caller's to log and swallow, per the spec's
	// failure semantics.
	Delete() error
}
