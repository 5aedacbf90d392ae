package runner

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/uvw/pkg/errors"
)

func TestUV(t *testing.T) {
	cmd := UV("", "/envs/proj/.venv", "python", "-V")

	assert.Equal(t, "uv", cmd.Name)
	assert.Equal(t, []string{"run", "-p", "/envs/proj/.venv", "--no-project", "python", "-V"}, cmd.Args)
	assert.Equal(t, "/envs/proj/.venv", cmd.Env[EnvVirtualEnv])
	assert.Equal(t, "/envs/proj/.venv", cmd.Env[EnvUVProjectEnvironment])
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "plain",
			cmd:  Command{Name: "jupyter", Args: []string{"kernelspec", "list"}},
			want: "jupyter kernelspec list",
		},
		{
			name: "quotes spaces",
			cmd:  Command{Name: "python", Args: []string{"-m", "ipykernel", "a b"}},
			want: `python -m ipykernel 'a b'`,
		},
		{
			name: "env sorted first",
			cmd:  Command{Name: "uv", Args: []string{"run"}, Env: map[string]string{"B": "2", "A": "1"}},
			want: "A=1 B=2 uv run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func newTestRunner() (*ExecRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := NewExecRunner()
	r.Stdin = nil
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r, &stdout, &stderr
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	ctx := context.Background()

	t.Run("run streams output with env", func(t *testing.T) {
		r, stdout, _ := newTestRunner()
		cmd := Command{Name: "sh", Args: []string{"-c", "echo $VIRTUAL_ENV"}, Env: map[string]string{EnvVirtualEnv: "/x/venv"}}

		require.NoError(t, r.Run(ctx, cmd))
		assert.Equal(t, "/x/venv\n", stdout.String())
	})

	t.Run("output captures stdout", func(t *testing.T) {
		r, stdout, _ := newTestRunner()
		out, err := r.Output(ctx, Command{Name: "sh", Args: []string{"-c", "echo hi"}})

		require.NoError(t, err)
		assert.Equal(t, "hi\n", string(out))
		assert.Empty(t, stdout.String())
	})

	t.Run("exit failure", func(t *testing.T) {
		r, _, _ := newTestRunner()
		_, err := r.Output(ctx, Command{Name: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, 3, details["exitCode"])
		assert.Equal(t, "boom", details["stderr"])
	})

	t.Run("missing executable", func(t *testing.T) {
		r, _, _ := newTestRunner()
		err := r.Run(ctx, Command{Name: "uvw-definitely-not-installed"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	})
}
