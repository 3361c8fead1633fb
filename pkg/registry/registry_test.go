package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhwick/jobrunner/pkg/jobid"
	"github.com/mrhwick/jobrunner/pkg/registry"
)

func TestGetUnknownID(t *testing.T) {
	reg := registry.New()

	_, err := reg.Get(jobid.New())
	assert.ErrorIs(t, err, registry.ErrUnknownID)
}

func TestInsertThenGet(t *testing.T) {
	reg := registry.New()
	id := jobid.New()

	reg.Insert(id, 4242)

	e, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, uint32(4242), e.PID)
	assert.Equal(t, registry.StatusRunning, e.Status)
	assert.True(t, reg.Running(id))
}

func TestMarkStoppedTransitionsOnce(t *testing.T) {
	reg := registry.New()
	id := jobid.New()
	reg.Insert(id, 99)

	exit := registry.ExitFromCode(7)
	reg.MarkStopped(id, exit)

	e, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, registry.StatusStopped, e.Status)
	assert.Equal(t, exit, e.Exit)
	assert.False(t, reg.Running(id))
}

func TestMarkStoppedOnUnknownIDIsNoop(t *testing.T) {
	reg := registry.New()
	id := jobid.New()

	assert.NotPanics(t, func() {
		reg.MarkStopped(id, registry.ExitFromCode(1))
	})
	_, err := reg.Get(id)
	assert.ErrorIs(t, err, registry.ErrUnknownID)
}

func TestSweepOnlyVisitsRunningEntries(t *testing.T) {
	reg := registry.New()

	running := jobid.New()
	stopped := jobid.New()
	reg.Insert(running, 1)
	reg.Insert(stopped, 2)
	reg.MarkStopped(stopped, registry.ExitFromCode(0))

	var visited []jobid.ID
	reg.Sweep(func(id jobid.ID, pid uint32) {
		visited = append(visited, id)
	})

	assert.Equal(t, []jobid.ID{running}, visited)
}

func TestRunningOnUnknownIDIsFalse(t *testing.T) {
	reg := registry.New()
	assert.False(t, reg.Running(jobid.New()))
}
