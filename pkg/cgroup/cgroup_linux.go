package cgroup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/containerd/cgroups"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// blockDevice is a MAJOR:MINOR pair for a non-loopback block device,
// discovered once at Builder construction time.
type blockDevice struct {
	major, minor int64
}

// Builder materializes per-job cgroup v1 hierarchies rooted at a fixed
// path. One Builder is shared by the whole server.
type Builder struct {
	root         string
	blockDevices []blockDevice
}

// NewBuilder discovers the host's block devices and returns a Builder
// rooted at root (e.g. "/sys/fs/cgroup/<subsystem>/jobrunner", handled by
// containerd/cgroups per-subsystem internally; root here is just the
// static path prefix under each controller).
func NewBuilder(root string) (*Builder, error) {
	devices, err := discoverBlockDevices()
	if err != nil {
		return nil, fmt.Errorf("discover block devices: %w", err)
	}

	return &Builder{root: root, blockDevices: devices}, nil
}

// discoverBlockDevices enumerates the kernel's block subsystem for devices
// of type "disk" (filtering out loop devices) and resolves each to its
// MAJOR:MINOR pair via /proc/partitions.
func discoverBlockDevices() ([]blockDevice, error) {
	dir, err := os.ReadDir("/sys/block")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, f := range dir {
		if strings.HasPrefix(f.Name(), "loop") {
			continue
		}
		names = append(names, f.Name())
	}

	f, err := os.Open("/proc/partitions")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var devices []blockDevice
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		for _, name := range names {
			if !strings.HasSuffix(line, name) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				break
			}
			major, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				break
			}
			minor, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				break
			}
			devices = append(devices, blockDevice{major: major, minor: minor})
			break
		}
	}

	return devices, nil
}

type handle struct {
	path string
	cg   cgroups.Cgroup
}

func (h *handle) Path() string { return h.path }

func (h *handle) Delete() error {
	if h.cg == nil {
		return nil
	}
	return h.cg.Delete()
}

// Build creates the cgroup for a job if req has any active knob. If req is
// entirely unconstrained, no cgroup is created and Path still returns a
// stable, unused identifier so callers have a consistent value to log.
func (b *Builder) Build(jobID string, req Request) (Handle, error) {
	path := filepath.Join(b.root, jobID)

	if !req.Active() {
		return &handle{path: path}, nil
	}

	resources := &specs.LinuxResources{}

	if req.Memory != nil {
		limit := int64(*req.Memory)
		resources.Memory = &specs.LinuxMemory{Limit: &limit}
	}

	if req.CPU != nil {
		resources.CPU = &specs.LinuxCPU{Shares: req.CPU}
	}

	if req.Disk != nil && len(b.blockDevices) > 0 {
		reads := make([]specs.LinuxThrottleDevice, 0, len(b.blockDevices))
		writes := make([]specs.LinuxThrottleDevice, 0, len(b.blockDevices))
		for _, dev := range b.blockDevices {
			d := specs.LinuxBlockIODevice{Major: dev.major, Minor: dev.minor}
			reads = append(reads, specs.LinuxThrottleDevice{LinuxBlockIODevice: d, Rate: *req.Disk})
			writes = append(writes, specs.LinuxThrottleDevice{LinuxBlockIODevice: d, Rate: *req.Disk})
		}
		resources.BlockIO = &specs.LinuxBlockIO{
			ThrottleReadBpsDevice:  reads,
			ThrottleWriteBpsDevice: writes,
		}
	}

	cg, err := cgroups.New(cgroups.V1, cgroups.StaticPath(path), resources)
	if err != nil {
		return nil, fmt.Errorf("create cgroup %q: %w", path, err)
	}

	return &handle{path: path, cg: cg}, nil
}

// Attach loads the cgroup at path and adds the calling process's own pid to
// it. It is called by the re-executed child, after fork and before its
// final exec into the target command, so that the target's first
// instruction is already accounted for. Attaching post-exec would race with
// the target's early allocations.
func Attach(path string, pid int) error {
	cg, err := cgroups.Load(cgroups.V1, cgroups.StaticPath(path))
	if err != nil {
		return fmt.Errorf("load cgroup %q: %w", path, err)
	}

	if err := cg.Add(cgroups.Process{Pid: pid}); err != nil {
		return fmt.Errorf("attach pid %d to cgroup %q: %w", pid, path, err)
	}

	return nil
}
