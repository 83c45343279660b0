package pyenv

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentInvocationFresh(t *testing.T) {
	t.Setenv(MarkerEnv, "")
	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("PYTHONPATH", "")

	ictx, err := CurrentInvocation("/srv/app/grader.py", []string{"--round", "2"})
	require.NoError(t, err)

	assert.Equal(t, "/srv/app/grader.py", ictx.ScriptPath)
	assert.Equal(t, "/srv/app", ictx.Root)
	assert.Equal(t, []string{"--round", "2"}, ictx.ScriptArgs)
	assert.False(t, ictx.Relaunched)
	assert.Empty(t, ictx.VirtualEnv)
	assert.Empty(t, ictx.PythonPath)
}

func TestCurrentInvocationMarker(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		relaunched bool
	}{
		{"sentinel value counts as set", "1", true},
		{"absence counts as unset", "", false},
		{"other truthy strings count as unset", "true", false},
		{"arbitrary values count as unset", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(MarkerEnv, tt.value)

			ictx, err := CurrentInvocation("/srv/app/grader.py", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.relaunched, ictx.Relaunched)
		})
	}
}

func TestCurrentInvocationPythonPath(t *testing.T) {
	entries := []string{"/srv/libs", "/opt/shared"}
	t.Setenv("PYTHONPATH", strings.Join(entries, string(filepath.ListSeparator)))

	ictx, err := CurrentInvocation("/srv/app/grader.py", nil)
	require.NoError(t, err)
	assert.Equal(t, entries, ictx.PythonPath)
}

func TestArgvPreservesOrder(t *testing.T) {
	ictx := InvocationContext{
		ScriptPath: "/srv/app/grader.py",
		ScriptArgs: []string{"a", "-b", "c"},
	}
	assert.Equal(t, []string{"/srv/app/grader.py", "a", "-b", "c"}, ictx.Argv())
}
