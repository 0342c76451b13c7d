package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/cmd/rebuild/commands"
	"go.trai.ch/rebuild/internal/build"
	"go.trai.ch/rebuild/internal/core/domain"
)

type call struct {
	method     string
	configPath string
	opts       domain.BuildOptions
}

type mockApp struct {
	calls []call
	err   error
	cfg   *domain.Config
}

func (m *mockApp) Build(_ context.Context, configPath string, opts domain.BuildOptions) error {
	m.calls = append(m.calls, call{"build", configPath, opts})
	return m.err
}

func (m *mockApp) Watch(_ context.Context, configPath string, opts domain.BuildOptions) error {
	m.calls = append(m.calls, call{"watch", configPath, opts})
	return m.err
}

func (m *mockApp) Plan(_ context.Context, configPath string) error {
	m.calls = append(m.calls, call{method: "plan", configPath: configPath})
	return m.err
}

func (m *mockApp) Clean(_ context.Context, configPath string) error {
	m.calls = append(m.calls, call{method: "clean", configPath: configPath})
	return m.err
}

func (m *mockApp) Config(configPath string) (*domain.Config, error) {
	m.calls = append(m.calls, call{method: "config", configPath: configPath})
	return m.cfg, m.err
}

type jsonLogger struct{ enabled bool }

func (l *jsonLogger) SetJSON(enable bool) { l.enabled = enable }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Build(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{
			name: "defaults",
			args: []string{"build"},
			want: call{method: "build"},
		},
		{
			name: "flags",
			args: []string{"build", "-j", "8", "-B", "--config", "sub/rebuild.yaml"},
			want: call{"build", "sub/rebuild.yaml", domain.BuildOptions{Jobs: 8, Force: true}},
		},
		{
			name: "long flags",
			args: []string{"--config=rebuild.yaml", "build", "--jobs=2", "--force"},
			want: call{"build", "rebuild.yaml", domain.BuildOptions{Jobs: 2, Force: true}},
		},
		{
			name: "watch",
			args: []string{"build", "-w", "-c", "rebuild.yaml"},
			want: call{method: "watch", configPath: "rebuild.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &mockApp{}
			_, err := execute(t, a, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, []call{tt.want}, a.calls)
		})
	}
}

func TestCommands_Build_NegativeJobs(t *testing.T) {
	a := &mockApp{}
	_, err := execute(t, a, "build", "--jobs=-1")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidJobs.Error())
	assert.Empty(t, a.calls)
}

func TestCommands_Build_ReturnsError(t *testing.T) {
	a := &mockApp{err: domain.ErrBuildFailed}
	_, err := execute(t, a, "build")
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestCommands_PlanAndClean(t *testing.T) {
	a := &mockApp{}

	_, err := execute(t, a, "plan", "-c", "a.yaml")
	require.NoError(t, err)
	_, err = execute(t, a, "clean")
	require.NoError(t, err)

	assert.Equal(t, []call{
		{method: "plan", configPath: "a.yaml"},
		{method: "clean"},
	}, a.calls)
}

func TestCommands_Clean_RejectsArguments(t *testing.T) {
	a := &mockApp{}
	_, err := execute(t, a, "clean", "build")
	require.Error(t, err)
	assert.Empty(t, a.calls)
}

func TestCommands_Config(t *testing.T) {
	a := &mockApp{cfg: &domain.Config{
		Root:       "/project",
		Compiler:   "g++",
		SourceDir:  "/project/src",
		SourceExt:  "cpp",
		SourceMain: "main.cpp",
		Jobs:       2,
	}}

	out, err := execute(t, a, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "compiler: g++\n")
	assert.Contains(t, out, "sourceDir: src\n")
	assert.Contains(t, out, "jobs: 2\n")
}

func TestCommands_Config_Error(t *testing.T) {
	a := &mockApp{err: errors.New("no config")}
	out, err := execute(t, a, "config")
	require.EqualError(t, err, "no config")
	assert.Empty(t, out)
}

func TestCommands_LogJSON(t *testing.T) {
	logger := &jsonLogger{}
	cli := commands.New(&mockApp{}).WithLogger(logger)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--log-json", "plan"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logger.enabled)
}

func TestCommands_Version(t *testing.T) {
	oldVersion, oldCommit, oldDate := build.Version, build.Commit, build.Date
	t.Cleanup(func() {
		build.Version, build.Commit, build.Date = oldVersion, oldCommit, oldDate
	})
	build.Version, build.Commit, build.Date = "v1.0.0", "abc123", "2026-01-01"

	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "rebuild version v1.0.0 (commit: abc123, date: 2026-01-01)\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "rebuild version v1.0.0 (commit: abc123, date: 2026-01-01)\n", out)
}
