//go:build !linux

package cgroup

import "errors"

// ErrUnsupported is returned by NewBuilder on non-Linux hosts. The whole
// cgroup subsystem is Linux-only; callers must gate cgroup-constrained
// spawning behind this capability check.
var ErrUnsupported = errors.New("cgroup: unsupported on this platform")

type Builder struct{}

func NewBuilder(string) (*Builder, error) {
	return nil, ErrUnsupported
}

func (b *Builder) Build(string, Request) (Handle, error) {
	return nil, ErrUnsupported
}

func Attach(string, int) error {
	return ErrUnsupported
}
