package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	argv []string
	dir  string
	err  error
}

func (m *mockRunner) Run(ctx context.Context, argv []string, dir string) error {
	m.argv = argv
	m.dir = dir
	return m.err
}

type mockReporter struct {
	progress []string
}

func (m *mockReporter) Progress(message string) { m.progress = append(m.progress, message) }

func TestInstall_RunsManagerCommandInDest(t *testing.T) {
	tests := []struct {
		manager  catalog.PackageManager
		wantArgv []string
	}{
		{catalog.ManagerNPM, []string{"npm", "install"}},
		{catalog.ManagerPNPM, []string{"pnpm", "install"}},
		{catalog.ManagerYarn, []string{"yarn", "install"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.manager), func(t *testing.T) {
			runner := &mockRunner{}
			installer := New(runner, &mockReporter{})
			mgr, ok := catalog.ManagerByID(tt.manager)
			require.True(t, ok)

			err := installer.Install(context.Background(), "/tmp/demo", mgr)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantArgv, runner.argv)
			assert.Equal(t, "/tmp/demo", runner.dir)
		})
	}
}

func TestInstall_FailureWrapsErrInstallFailed(t *testing.T) {
	runner := &mockRunner{err: errors.New("exit status 1")}
	installer := New(runner, &mockReporter{})
	mgr, _ := catalog.ManagerByID(catalog.ManagerNPM)

	err := installer.Install(context.Background(), "/tmp/demo", mgr)

	assert.ErrorIs(t, err, errutil.ErrInstallFailed)
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestInstall_ReportsProgressWithManagerName(t *testing.T) {
	runner := &mockRunner{}
	reporter := &mockReporter{}
	installer := New(runner, reporter)
	mgr, _ := catalog.ManagerByID(catalog.ManagerPNPM)

	require.NoError(t, installer.Install(context.Background(), "/tmp/demo", mgr))

	require.Len(t, reporter.progress, 1)
	assert.Contains(t, reporter.progress[0], "pnpm")
}

func TestNew_PanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { New(nil, &mockReporter{}) })
	assert.Panics(t, func() { New(&mockRunner{}, nil) })
}
