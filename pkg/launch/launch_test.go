package launch

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLauncher_Argv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        Options
		interpreter string
		root        string
		args        []string
		want        []string
	}{
		{
			name:        "should contain only the interpreter and the target when the caller passed nothing",
			interpreter: "python3",
			root:        "/app",
			args:        nil,
			want:        []string{"python3", filepath.Join("/app", "main.py")},
		},
		{
			name:        "should forward the caller arguments untouched and in order",
			interpreter: "/app/.venv/bin/python",
			root:        "/app",
			args:        []string{"--verbose", "serve", "--port", "8080"},
			want:        []string{"/app/.venv/bin/python", filepath.Join("/app", "main.py"), "--verbose", "serve", "--port", "8080"},
		},
		{
			name:        "should not interpret flag-looking or empty arguments",
			interpreter: "python",
			root:        "/app",
			args:        []string{"--help", "", "-x", "--"},
			want:        []string{"python", filepath.Join("/app", "main.py"), "--help", "", "-x", "--"},
		},
		{
			name:        "should use the configured target name",
			opts:        Options{TargetName: "cli.py"},
			interpreter: "python3",
			root:        "/srv/tool",
			args:        []string{"sync"},
			want:        []string{"python3", filepath.Join("/srv/tool", "cli.py"), "sync"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(afero.NewMemMapFs(), zap.NewNop().Sugar(), tt.opts)

			assert.Equal(t, tt.want, l.Argv(tt.interpreter, tt.root, tt.args))
		})
	}
}

func TestLauncher_Run(t *testing.T) {
	t.Parallel()

	t.Run("should execute the resolved interpreter with the built argv and the caller's environment", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		venvInterpreter := filepath.Join("/app", DefaultVenvDir, VirtualEnvBinaryFolder, VirtualEnvPythonBinary)
		require.NoError(t, afero.WriteFile(fs, venvInterpreter, []byte("#!fake"), 0o755))

		env := []string{"HOME=/home/someone", "PATH=/usr/bin"}

		var gotCommand string
		var gotArgv, gotEnv []string

		l := &Launcher{
			resolver: &Resolver{
				fs: fs,
				lookPath: func(file string) (string, error) {
					return "", errors.New("executable file not found in $PATH")
				},
				logger: zap.NewNop().Sugar(),
				opts:   Options{}.withDefaults(),
			},
			logger:  zap.NewNop().Sugar(),
			opts:    Options{}.withDefaults(),
			environ: func() []string { return env },
			execute: func(command string, argv, env []string) (int, error) {
				gotCommand = command
				gotArgv = argv
				gotEnv = env
				return 0, nil
			},
		}

		code, err := l.Run("/app", []string{"--flag", "value"})

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, venvInterpreter, gotCommand)
		assert.Equal(t, []string{venvInterpreter, filepath.Join("/app", "main.py"), "--flag", "value"}, gotArgv)
		assert.Equal(t, env, gotEnv)
	})

	t.Run("should report the execution failure as-is", func(t *testing.T) {
		t.Parallel()

		l := &Launcher{
			resolver: &Resolver{
				fs: afero.NewMemMapFs(),
				lookPath: func(file string) (string, error) {
					return "", errors.New("executable file not found in $PATH")
				},
				logger: zap.NewNop().Sugar(),
				opts:   Options{}.withDefaults(),
			},
			logger:  zap.NewNop().Sugar(),
			opts:    Options{}.withDefaults(),
			environ: func() []string { return nil },
			execute: func(command string, argv, env []string) (int, error) {
				return ExitNotFound, errors.Errorf("failed to locate '%s'", command)
			},
		}

		code, err := l.Run("/app", nil)

		require.Error(t, err)
		assert.Equal(t, ExitNotFound, code)
		assert.Contains(t, err.Error(), "failed to locate 'python'")
	})
}
