package jobid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhwick/jobrunner/pkg/jobid"
)

func TestNewIsUnique(t *testing.T) {
	a := jobid.New()
	b := jobid.New()

	assert.NotEqual(t, a, b)
	assert.False(t, a.IsZero())
}

func TestParseRoundTrip(t *testing.T) {
	id := jobid.New()

	parsed, err := jobid.Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-uuid",
		"job_01h9x8z6z0e9v8y7w6u5t4s3r2",
	}

	for _, s := range cases {
		_, err := jobid.Parse(s)
		assert.ErrorIs(t, err, jobid.ErrInvalid, "input %q", s)
	}
}

func TestZeroValueIsZero(t *testing.T) {
	var id jobid.ID
	assert.True(t, id.IsZero())
}
